package auth

import (
	"net/http"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/internal/user"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	users user.UserRepository
	teams team.TeamRepository
	log   *zap.Logger
}

func NewAuthController(users user.UserRepository, teams team.TeamRepository, log *zap.Logger) *AuthController {
	return &AuthController{users: users, teams: teams, log: log}
}

// GetProfile godoc
// @Summary Current session
// @Description Returns the caller resolved from the Supabase session, their profile and teams.
// @Tags Auth
// @Produce json
// @Success 200 {object} MeResponse
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /auth/me [get]
func (ac *AuthController) GetProfile(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	profile, err := ac.users.GetProfileByID(ctx, caller.UserID)
	if err != nil {
		ac.log.Error("failed to load profile", zap.String("user_id", caller.UserID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}

	teams, err := ac.teams.GetTeamsByProfileID(ctx, caller.UserID)
	if err != nil {
		ac.log.Error("failed to load teams", zap.String("user_id", caller.UserID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if teams == nil {
		teams = []team.Team{}
	}

	responses.SendSuccess(c, http.StatusOK, MeResponse{Identity: caller, Profile: profile, Teams: teams})
}
