package task

import (
	"net/http"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/sprint"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/DhavalSuthar-24/internhub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TaskController struct {
	repo    TaskRepository
	sprints sprint.SprintRepository
	teams   team.TeamRepository
	log     *zap.Logger
}

func NewTaskController(repo TaskRepository, sprints sprint.SprintRepository, teams team.TeamRepository, log *zap.Logger) *TaskController {
	return &TaskController{repo: repo, sprints: sprints, teams: teams, log: log}
}

// GetTasks godoc
// @Summary List the tasks on a team board
// @Tags Tasks
// @Produce json
// @Param teamId query string true "Team ID"
// @Param sprintId query string false "Sprint ID"
// @Param assigneeId query string false "Assignee profile ID"
// @Param column query string false "Column" Enums(todo, in_progress, review, done)
// @Success 200 {array} Task
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Security ApiKeyAuth
// @Router /tasks [get]
func (tc *TaskController) GetTasks(c *gin.Context) {
	teamID, err := uuid.Parse(c.Query("teamId"))
	if err != nil {
		responses.BadRequest(c, "teamId is required and must be a valid UUID")
		return
	}
	sprintID, ok := common.OptionalUUIDQuery(c, "sprintId")
	if !ok {
		return
	}
	assigneeID, ok := common.OptionalUUIDQuery(c, "assigneeId")
	if !ok {
		return
	}
	column := c.Query("column")
	if column != "" && !ValidColumn(column) {
		responses.BadRequest(c, "column must be one of todo, in_progress, review, done")
		return
	}

	tasks, err := tc.repo.GetTasks(c.Request.Context(), ListFilter{
		TeamID:     teamID,
		SprintID:   sprintID,
		AssigneeID: assigneeID,
		Column:     column,
	})
	if err != nil {
		tc.log.Error("failed to list tasks", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if tasks == nil {
		tasks = []Task{}
	}
	responses.SendSuccess(c, http.StatusOK, tasks)
}

// GetTaskByID godoc
// @Summary Get a task
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} Task
// @Failure 404 {object} responses.ErrorResponse "Task not found"
// @Security ApiKeyAuth
// @Router /tasks/{id} [get]
func (tc *TaskController) GetTaskByID(c *gin.Context) {
	id, ok := common.UUIDParam(c, "id", "task")
	if !ok {
		return
	}
	t, ok := tc.loadTask(c, id)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, t)
}

// CreateTask godoc
// @Summary Create a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task body CreateTaskRequest true "Task"
// @Success 201 {object} Task
// @Failure 400 {object} responses.ErrorResponse "Invalid input, or sprint/assignee outside the team"
// @Failure 403 {object} responses.ErrorResponse "Not a team member"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /tasks [post]
func (tc *TaskController) CreateTask(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	ctx := c.Request.Context()
	teamID := uuid.MustParse(req.TeamID)

	exists, err := tc.teams.TeamExists(ctx, teamID)
	if err != nil {
		tc.log.Error("failed to check team", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if !exists {
		responses.NotFound(c, "Team")
		return
	}
	if !tc.authorize(c, caller, teamID) {
		return
	}

	t := Task{
		TeamID:      teamID,
		SprintID:    parseOptional(req.SprintID),
		Title:       req.Title,
		Description: req.Description,
		Column:      req.Column,
		AssigneeID:  parseOptional(req.AssigneeID),
		Position:    req.Position,
	}
	if !tc.checkReferences(c, teamID, t.SprintID, t.AssigneeID) {
		return
	}
	if t.Column == "" {
		t.Column = ColumnTodo
	}
	if err := tc.repo.CreateTask(ctx, &t); err != nil {
		tc.log.Error("failed to create task", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, t)
}

// UpdateTask godoc
// @Summary Edit a task
// @Description Column and position are changed through the move endpoint.
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param task body UpdateTaskRequest true "Fields to change"
// @Success 200 {object} Task
// @Failure 400 {object} responses.ErrorResponse "Invalid input, or sprint/assignee outside the team"
// @Failure 403 {object} responses.ErrorResponse "Not a team member"
// @Failure 404 {object} responses.ErrorResponse "Task not found"
// @Security ApiKeyAuth
// @Router /tasks/{id} [put]
func (tc *TaskController) UpdateTask(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "task")
	if !ok {
		return
	}
	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	t, ok := tc.loadTask(c, id)
	if !ok {
		return
	}
	if !tc.authorize(c, caller, t.TeamID) {
		return
	}
	if !tc.checkReferences(c, t.TeamID, parseOptional(req.SprintID), parseOptional(req.AssigneeID)) {
		return
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.SprintID != nil {
		t.SprintID = parseOptional(req.SprintID)
	}
	if req.AssigneeID != nil {
		t.AssigneeID = parseOptional(req.AssigneeID)
	}

	if err := tc.repo.UpdateTask(c.Request.Context(), t); err != nil {
		tc.log.Error("failed to update task", zap.String("task_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, t)
}

// MoveTask godoc
// @Summary Move a task to a column
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param move body MoveTaskRequest true "Target column and position"
// @Success 200 {object} Task
// @Failure 400 {object} responses.ErrorResponse "Invalid column"
// @Failure 403 {object} responses.ErrorResponse "Not a team member"
// @Failure 404 {object} responses.ErrorResponse "Task not found"
// @Security ApiKeyAuth
// @Router /tasks/{id}/move [patch]
func (tc *TaskController) MoveTask(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "task")
	if !ok {
		return
	}
	var req MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	t, ok := tc.loadTask(c, id)
	if !ok {
		return
	}
	if !tc.authorize(c, caller, t.TeamID) {
		return
	}

	if err := tc.repo.MoveTask(c.Request.Context(), id, req.Column, *req.Position); err != nil {
		tc.log.Error("failed to move task", zap.String("task_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	t.Column = req.Column
	t.Position = *req.Position
	responses.SendSuccess(c, http.StatusOK, t)
}

// DeleteTask godoc
// @Summary Delete a task
// @Tags Tasks
// @Param id path string true "Task ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse "Not a team member"
// @Failure 404 {object} responses.ErrorResponse "Task not found"
// @Security ApiKeyAuth
// @Router /tasks/{id} [delete]
func (tc *TaskController) DeleteTask(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "task")
	if !ok {
		return
	}
	t, ok := tc.loadTask(c, id)
	if !ok {
		return
	}
	if !tc.authorize(c, caller, t.TeamID) {
		return
	}
	if err := tc.repo.DeleteTask(c.Request.Context(), id); err != nil {
		tc.log.Error("failed to delete task", zap.String("task_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (tc *TaskController) loadTask(c *gin.Context, id uuid.UUID) (*Task, bool) {
	t, err := tc.repo.GetTaskByID(c.Request.Context(), id)
	if err != nil {
		tc.log.Error("failed to get task", zap.String("task_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return nil, false
	}
	if t == nil {
		responses.NotFound(c, "Task")
		return nil, false
	}
	return t, true
}

// authorize lets admins and members of the team change its board. On false
// the response has already been written.
func (tc *TaskController) authorize(c *gin.Context, caller common.Identity, teamID uuid.UUID) bool {
	if caller.HasRole(common.RoleAdmin) {
		return true
	}
	member, err := tc.teams.IsTeamMember(c.Request.Context(), teamID, caller.UserID)
	if err != nil {
		tc.log.Error("failed to check membership", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return false
	}
	if !member {
		responses.Forbidden(c, "You are not a member of this team")
		return false
	}
	return true
}

// checkReferences verifies that a sprint belongs to the team and that an
// assignee is one of its members. Nil references are not checked.
func (tc *TaskController) checkReferences(c *gin.Context, teamID uuid.UUID, sprintID, assigneeID *uuid.UUID) bool {
	ctx := c.Request.Context()
	if sprintID != nil {
		sp, err := tc.sprints.GetSprintByID(ctx, *sprintID)
		if err != nil {
			tc.log.Error("failed to get sprint", zap.String("sprint_id", sprintID.String()), zap.Error(err))
			responses.InternalServerError(c)
			return false
		}
		if sp == nil || sp.TeamID != teamID {
			responses.SendValidationError(c, "Invalid request payload", map[string]string{"sprintId": "does not belong to the task's team"})
			return false
		}
	}
	if assigneeID != nil {
		member, err := tc.teams.IsTeamMember(ctx, teamID, *assigneeID)
		if err != nil {
			tc.log.Error("failed to check membership", zap.String("team_id", teamID.String()), zap.Error(err))
			responses.InternalServerError(c)
			return false
		}
		if !member {
			responses.SendValidationError(c, "Invalid request payload", map[string]string{"assigneeId": "is not a member of the task's team"})
			return false
		}
	}
	return true
}

// ValidColumn reports whether column names a kanban column.
func ValidColumn(column string) bool {
	switch column {
	case ColumnTodo, ColumnInProgress, ColumnReview, ColumnDone:
		return true
	}
	return false
}

// parseOptional converts an optional id already checked by the uuid binding tag.
func parseOptional(raw *string) *uuid.UUID {
	if raw == nil {
		return nil
	}
	id := uuid.MustParse(*raw)
	return &id
}
