package submission

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

type SubmissionController struct {
	repo    SubmissionRepository
	sprints sprint.SprintRepository
	teams   team.TeamRepository
	log     *zap.Logger
}

func NewSubmissionController(repo SubmissionRepository, sprints sprint.SprintRepository, teams team.TeamRepository, log *zap.Logger) *SubmissionController {
	return &SubmissionController{repo: repo, sprints: sprints, teams: teams, log: log}
}

// GetSubmissions godoc
// @Summary List check-in submissions
// @Description Paginated, newest first.
// @Tags Submissions
// @Produce json
// @Param teamId query string true "Team ID"
// @Param sprintId query string false "Sprint ID"
// @Param profileId query string false "Author profile ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} responses.PaginatedResponse
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid filter"
// @Security ApiKeyAuth
// @Router /submissions [get]
func (sc *SubmissionController) GetSubmissions(c *gin.Context) {
	teamID, err := uuid.Parse(c.Query("teamId"))
	if err != nil {
		responses.BadRequest(c, "teamId is required and must be a valid UUID")
		return
	}
	sprintID, ok := common.OptionalUUIDQuery(c, "sprintId")
	if !ok {
		return
	}
	profileID, ok := common.OptionalUUIDQuery(c, "profileId")
	if !ok {
		return
	}
	page, limit := responses.PageParams(c)

	filter := ListFilter{TeamID: teamID, SprintID: sprintID, ProfileID: profileID}
	submissions, total, err := sc.repo.GetSubmissions(c.Request.Context(), filter, page, limit)
	if err != nil {
		sc.log.Error("failed to list submissions", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if submissions == nil {
		submissions = []Submission{}
	}
	responses.SendPaginated(c, http.StatusOK, submissions, total, page, limit)
}

// GetSubmissionByID godoc
// @Summary Get a submission
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} Submission
// @Failure 404 {object} responses.ErrorResponse "Submission not found"
// @Security ApiKeyAuth
// @Router /submissions/{id} [get]
func (sc *SubmissionController) GetSubmissionByID(c *gin.Context) {
	id, ok := common.UUIDParam(c, "id", "submission")
	if !ok {
		return
	}
	s, err := sc.repo.GetSubmissionByID(c.Request.Context(), id)
	if err != nil {
		sc.log.Error("failed to get submission", zap.String("submission_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if s == nil {
		responses.NotFound(c, "Submission")
		return
	}
	responses.SendSuccess(c, http.StatusOK, s)
}

// CreateSubmission godoc
// @Summary Submit a check-in
// @Description The author is always the caller, who must belong to the team.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param submission body CreateSubmissionRequest true "Check-in"
// @Success 201 {object} Submission
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Not a team member"
// @Failure 404 {object} responses.ErrorResponse "Sprint not found"
// @Security ApiKeyAuth
// @Router /submissions [post]
func (sc *SubmissionController) CreateSubmission(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	var req CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	ctx := c.Request.Context()
	teamID := uuid.MustParse(req.TeamID)
	sprintID := uuid.MustParse(req.SprintID)

	sp, err := sc.sprints.GetSprintByID(ctx, sprintID)
	if err != nil {
		sc.log.Error("failed to get sprint", zap.String("sprint_id", sprintID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if sp == nil {
		responses.NotFound(c, "Sprint")
		return
	}
	if sp.TeamID != teamID {
		responses.SendValidationError(c, "Invalid request payload", map[string]string{"sprintId": "does not belong to teamId"})
		return
	}

	member, err := sc.teams.IsTeamMember(ctx, teamID, caller.UserID)
	if err != nil {
		sc.log.Error("failed to check membership", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if !member {
		responses.Forbidden(c, "You are not a member of this team")
		return
	}

	s := Submission{
		TeamID:          teamID,
		SprintID:        sprintID,
		ProfileID:       caller.UserID,
		Accomplishments: req.Accomplishments,
		Blockers:        req.Blockers,
		NextSteps:       req.NextSteps,
		Mood:            req.Mood,
	}
	if err := sc.repo.CreateSubmission(ctx, &s); err != nil {
		sc.log.Error("failed to create submission", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, s)
}

// UpdateSubmission godoc
// @Summary Edit a submission
// @Description Only the author may edit.
// @Tags Submissions
// @Accept json
// @Produce json
// @Param id path string true "Submission ID"
// @Param submission body UpdateSubmissionRequest true "Fields to change"
// @Success 200 {object} Submission
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Not the author"
// @Failure 404 {object} responses.ErrorResponse "Submission not found"
// @Security ApiKeyAuth
// @Router /submissions/{id} [put]
func (sc *SubmissionController) UpdateSubmission(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "submission")
	if !ok {
		return
	}
	var req UpdateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	s, ok := sc.ownedSubmission(c, caller, id)
	if !ok {
		return
	}
	if req.Accomplishments != nil {
		s.Accomplishments = *req.Accomplishments
	}
	if req.Blockers != nil {
		s.Blockers = *req.Blockers
	}
	if req.NextSteps != nil {
		s.NextSteps = *req.NextSteps
	}
	if req.Mood != nil {
		s.Mood = req.Mood
	}

	if err := sc.repo.UpdateSubmission(c.Request.Context(), s); err != nil {
		sc.log.Error("failed to update submission", zap.String("submission_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, s)
}

// DeleteSubmission godoc
// @Summary Delete a submission
// @Description Only the author may delete.
// @Tags Submissions
// @Param id path string true "Submission ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse "Not the author"
// @Failure 404 {object} responses.ErrorResponse "Submission not found"
// @Security ApiKeyAuth
// @Router /submissions/{id} [delete]
func (sc *SubmissionController) DeleteSubmission(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "submission")
	if !ok {
		return
	}
	if _, ok := sc.ownedSubmission(c, caller, id); !ok {
		return
	}
	if err := sc.repo.DeleteSubmission(c.Request.Context(), id); err != nil {
		sc.log.Error("failed to delete submission", zap.String("submission_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// ownedSubmission loads a submission and checks the caller wrote it. On false
// the response has already been written.
func (sc *SubmissionController) ownedSubmission(c *gin.Context, caller common.Identity, id uuid.UUID) (*Submission, bool) {
	s, err := sc.repo.GetSubmissionByID(c.Request.Context(), id)
	if err != nil {
		sc.log.Error("failed to get submission", zap.String("submission_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return nil, false
	}
	if s == nil {
		responses.NotFound(c, "Submission")
		return nil, false
	}
	if s.ProfileID != caller.UserID {
		responses.Forbidden(c, "Only the author can modify this submission")
		return nil, false
	}
	return s, true
}
