package dashboard

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DashboardController struct {
	service *Service
	log     *zap.Logger
}

func NewDashboardController(service *Service, log *zap.Logger) *DashboardController {
	return &DashboardController{service: service, log: log}
}

// GetStats godoc
// @Summary Team dashboard statistics
// @Description Submission, high-five, task and mood figures for a team, optionally limited to one sprint.
// @Tags Dashboard
// @Produce json
// @Param teamId query string true "Team ID"
// @Param sprintId query string false "Sprint ID"
// @Success 200 {object} DashboardStats
// @Failure 400 {object} responses.ErrorResponse "Missing or invalid teamId, or invalid sprintId"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /dashboard/stats [get]
func (dc *DashboardController) GetStats(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	teamID, err := uuid.Parse(c.Query("teamId"))
	if err != nil {
		responses.BadRequest(c, "teamId is required and must be a valid UUID")
		return
	}
	sprintID, ok := common.OptionalUUIDQuery(c, "sprintId")
	if !ok {
		return
	}

	stats, err := dc.service.ComputeStats(c.Request.Context(), caller, teamID, sprintID)
	if err != nil {
		if errors.Is(err, team.ErrTeamNotFound) {
			responses.NotFound(c, "Team")
			return
		}
		dc.log.Error("failed to compute dashboard stats", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, stats)
}
