package team

import (
	"net/http"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TeamController handles team-related HTTP requests
type TeamController struct {
	repo TeamRepository
	log  *zap.Logger
}

// NewTeamController creates a new team controller
func NewTeamController(repo TeamRepository, log *zap.Logger) *TeamController {
	return &TeamController{repo: repo, log: log}
}

// GetTeamByID godoc
// @Summary Get a team by its ID
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {object} Team
// @Failure 400 {object} responses.ErrorResponse "Invalid team ID"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /teams/{team_id} [get]
func (tc *TeamController) GetTeamByID(c *gin.Context) {
	teamID, ok := common.UUIDParam(c, "team_id", "team")
	if !ok {
		return
	}

	team, err := tc.repo.GetTeamByID(c.Request.Context(), teamID)
	if err != nil {
		tc.log.Error("failed to retrieve team", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if team == nil {
		responses.NotFound(c, "Team")
		return
	}
	responses.SendSuccess(c, http.StatusOK, team)
}

// GetTeamMembers godoc
// @Summary List the members of a team
// @Tags Teams
// @Produce json
// @Param team_id path string true "Team ID"
// @Success 200 {array} TeamMember
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Security ApiKeyAuth
// @Router /teams/{team_id}/members [get]
func (tc *TeamController) GetTeamMembers(c *gin.Context) {
	teamID, ok := common.UUIDParam(c, "team_id", "team")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	exists, err := tc.repo.TeamExists(ctx, teamID)
	if err != nil {
		tc.log.Error("failed to check team", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if !exists {
		responses.NotFound(c, "Team")
		return
	}

	members, err := tc.repo.GetTeamMembers(ctx, teamID)
	if err != nil {
		tc.log.Error("failed to list team members", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, members)
}

// GetMyTeams godoc
// @Summary List the teams the caller belongs to
// @Tags Teams
// @Produce json
// @Success 200 {array} Team
// @Security ApiKeyAuth
// @Router /users/me/teams [get]
func (tc *TeamController) GetMyTeams(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	teams, err := tc.repo.GetTeamsByProfileID(c.Request.Context(), caller.UserID)
	if err != nil {
		tc.log.Error("failed to list caller teams", zap.String("user_id", caller.UserID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, teams)
}
