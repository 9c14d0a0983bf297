package highfive

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

type HighFiveController struct {
	repo    HighFiveRepository
	sprints sprint.SprintRepository
	teams   team.TeamRepository
	log     *zap.Logger
}

func NewHighFiveController(repo HighFiveRepository, sprints sprint.SprintRepository, teams team.TeamRepository, log *zap.Logger) *HighFiveController {
	return &HighFiveController{repo: repo, sprints: sprints, teams: teams, log: log}
}

// GetHighFives godoc
// @Summary List high-fives for a team
// @Tags HighFives
// @Produce json
// @Param teamId query string true "Team ID"
// @Param sprintId query string false "Sprint ID"
// @Param toId query string false "Recipient profile ID"
// @Success 200 {array} HighFive
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Security ApiKeyAuth
// @Router /high-fives [get]
func (hc *HighFiveController) GetHighFives(c *gin.Context) {
	teamID, err := uuid.Parse(c.Query("teamId"))
	if err != nil {
		responses.BadRequest(c, "teamId is required and must be a valid UUID")
		return
	}
	sprintID, ok := common.OptionalUUIDQuery(c, "sprintId")
	if !ok {
		return
	}
	toID, ok := common.OptionalUUIDQuery(c, "toId")
	if !ok {
		return
	}

	highFives, err := hc.repo.GetHighFives(c.Request.Context(), ListFilter{TeamID: teamID, SprintID: sprintID, ToID: toID})
	if err != nil {
		hc.log.Error("failed to list high-fives", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if highFives == nil {
		highFives = []HighFive{}
	}
	responses.SendSuccess(c, http.StatusOK, highFives)
}

// CreateHighFive godoc
// @Summary Give a high-five
// @Description The giver is the caller. Both giver and recipient must belong to the team.
// @Tags HighFives
// @Accept json
// @Produce json
// @Param highFive body CreateHighFiveRequest true "High-five"
// @Success 201 {object} HighFive
// @Failure 400 {object} responses.ErrorResponse "Invalid input, self high-five or sprint outside the team"
// @Failure 403 {object} responses.ErrorResponse "Not a team member"
// @Security ApiKeyAuth
// @Router /high-fives [post]
func (hc *HighFiveController) CreateHighFive(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	var req CreateHighFiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	teamID := uuid.MustParse(req.TeamID)
	toID := uuid.MustParse(req.ToID)
	if toID == caller.UserID {
		responses.BadRequest(c, "You cannot give yourself a high-five")
		return
	}

	ctx := c.Request.Context()
	for _, profileID := range []uuid.UUID{caller.UserID, toID} {
		member, err := hc.teams.IsTeamMember(ctx, teamID, profileID)
		if err != nil {
			hc.log.Error("failed to check membership", zap.String("team_id", teamID.String()), zap.Error(err))
			responses.InternalServerError(c)
			return
		}
		if !member {
			responses.Forbidden(c, "Both members must belong to this team")
			return
		}
	}

	h := HighFive{
		TeamID:  teamID,
		FromID:  caller.UserID,
		ToID:    toID,
		Message: req.Message,
	}
	if req.SprintID != nil {
		sprintID := uuid.MustParse(*req.SprintID)
		sp, err := hc.sprints.GetSprintByID(ctx, sprintID)
		if err != nil {
			hc.log.Error("failed to get sprint", zap.String("sprint_id", sprintID.String()), zap.Error(err))
			responses.InternalServerError(c)
			return
		}
		if sp == nil || sp.TeamID != teamID {
			responses.SendValidationError(c, "Invalid request payload", map[string]string{"sprintId": "does not belong to teamId"})
			return
		}
		h.SprintID = &sprintID
	}
	if err := hc.repo.CreateHighFive(ctx, &h); err != nil {
		hc.log.Error("failed to create high-five", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, h)
}

// DeleteHighFive godoc
// @Summary Take back a high-five
// @Description Only the giver may delete.
// @Tags HighFives
// @Param id path string true "High-five ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse "Not the giver"
// @Failure 404 {object} responses.ErrorResponse "High-five not found"
// @Security ApiKeyAuth
// @Router /high-fives/{id} [delete]
func (hc *HighFiveController) DeleteHighFive(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "high-five")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	h, err := hc.repo.GetHighFiveByID(ctx, id)
	if err != nil {
		hc.log.Error("failed to get high-five", zap.String("high_five_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if h == nil {
		responses.NotFound(c, "High-five")
		return
	}
	if h.FromID != caller.UserID {
		responses.Forbidden(c, "Only the giver can delete this high-five")
		return
	}
	if err := hc.repo.DeleteHighFive(ctx, id); err != nil {
		hc.log.Error("failed to delete high-five", zap.String("high_five_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	c.Status(http.StatusNoContent)
}
