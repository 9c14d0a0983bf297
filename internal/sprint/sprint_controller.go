package sprint

import (
	"net/http"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/DhavalSuthar-24/internhub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SprintController struct {
	repo  SprintRepository
	teams team.TeamRepository
	log   *zap.Logger
}

func NewSprintController(repo SprintRepository, teams team.TeamRepository, log *zap.Logger) *SprintController {
	return &SprintController{repo: repo, teams: teams, log: log}
}

// GetSprints godoc
// @Summary List the sprints of a team
// @Tags Sprints
// @Produce json
// @Param teamId query string true "Team ID"
// @Success 200 {array} Sprint
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid teamId"
// @Security ApiKeyAuth
// @Router /sprints [get]
func (sc *SprintController) GetSprints(c *gin.Context) {
	teamID, err := uuid.Parse(c.Query("teamId"))
	if err != nil {
		responses.BadRequest(c, "teamId is required and must be a valid UUID")
		return
	}

	sprints, err := sc.repo.GetSprintsByTeamID(c.Request.Context(), teamID)
	if err != nil {
		sc.log.Error("failed to list sprints", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if sprints == nil {
		sprints = []Sprint{}
	}
	responses.SendSuccess(c, http.StatusOK, sprints)
}

// GetSprintByID godoc
// @Summary Get a sprint
// @Tags Sprints
// @Produce json
// @Param id path string true "Sprint ID"
// @Success 200 {object} Sprint
// @Failure 404 {object} responses.ErrorResponse "Sprint not found"
// @Security ApiKeyAuth
// @Router /sprints/{id} [get]
func (sc *SprintController) GetSprintByID(c *gin.Context) {
	id, ok := common.UUIDParam(c, "id", "sprint")
	if !ok {
		return
	}
	s, err := sc.repo.GetSprintByID(c.Request.Context(), id)
	if err != nil {
		sc.log.Error("failed to get sprint", zap.String("sprint_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if s == nil {
		responses.NotFound(c, "Sprint")
		return
	}
	responses.SendSuccess(c, http.StatusOK, s)
}

// CreateSprint godoc
// @Summary Create a sprint
// @Description Mentors and admins only.
// @Tags Sprints
// @Accept json
// @Produce json
// @Param sprint body CreateSprintRequest true "Sprint"
// @Success 201 {object} Sprint
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /sprints [post]
func (sc *SprintController) CreateSprint(c *gin.Context) {
	var req CreateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	ctx := c.Request.Context()
	teamID := uuid.MustParse(req.TeamID) // validated by the uuid binding tag

	exists, err := sc.teams.TeamExists(ctx, teamID)
	if err != nil {
		sc.log.Error("failed to check team", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if !exists {
		responses.NotFound(c, "Team")
		return
	}

	s := Sprint{
		TeamID:    teamID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if err := sc.repo.CreateSprint(ctx, &s); err != nil {
		sc.log.Error("failed to create sprint", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, s)
}

// UpdateSprint godoc
// @Summary Update a sprint
// @Tags Sprints
// @Accept json
// @Produce json
// @Param id path string true "Sprint ID"
// @Param sprint body UpdateSprintRequest true "Fields to change"
// @Success 200 {object} Sprint
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 404 {object} responses.ErrorResponse "Sprint not found"
// @Security ApiKeyAuth
// @Router /sprints/{id} [put]
func (sc *SprintController) UpdateSprint(c *gin.Context) {
	id, ok := common.UUIDParam(c, "id", "sprint")
	if !ok {
		return
	}
	var req UpdateSprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	ctx := c.Request.Context()

	s, err := sc.repo.GetSprintByID(ctx, id)
	if err != nil {
		sc.log.Error("failed to get sprint", zap.String("sprint_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if s == nil {
		responses.NotFound(c, "Sprint")
		return
	}

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Goal != nil {
		s.Goal = *req.Goal
	}
	if req.StartDate != nil {
		s.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		s.EndDate = *req.EndDate
	}
	if s.EndDate.Before(s.StartDate) {
		responses.SendValidationError(c, "Invalid request payload", map[string]string{"endDate": "must not be before startDate"})
		return
	}

	if err := sc.repo.UpdateSprint(ctx, s); err != nil {
		sc.log.Error("failed to update sprint", zap.String("sprint_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, s)
}

// DeleteSprint godoc
// @Summary Delete a sprint
// @Tags Sprints
// @Param id path string true "Sprint ID"
// @Success 204
// @Failure 404 {object} responses.ErrorResponse "Sprint not found"
// @Security ApiKeyAuth
// @Router /sprints/{id} [delete]
func (sc *SprintController) DeleteSprint(c *gin.Context) {
	id, ok := common.UUIDParam(c, "id", "sprint")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	s, err := sc.repo.GetSprintByID(ctx, id)
	if err != nil {
		sc.log.Error("failed to get sprint", zap.String("sprint_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if s == nil {
		responses.NotFound(c, "Sprint")
		return
	}
	if err := sc.repo.DeleteSprint(ctx, id); err != nil {
		sc.log.Error("failed to delete sprint", zap.String("sprint_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
