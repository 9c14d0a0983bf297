package coffeechat

import (
	"errors"
	"net/http"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/DhavalSuthar-24/internhub/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CoffeeChatController struct {
	service *Service
	log     *zap.Logger
}

func NewCoffeeChatController(service *Service, log *zap.Logger) *CoffeeChatController {
	return &CoffeeChatController{service: service, log: log}
}

// GeneratePairings godoc
// @Summary Generate a round of coffee-chat pairings
// @Description Shuffles the team roster and pairs members two at a time. With an odd roster one member sits out.
// @Tags CoffeeChats
// @Accept json
// @Produce json
// @Param request body GenerateRequest true "Team and action"
// @Success 200 {array} CoffeeChatPairing
// @Failure 400 {object} responses.ErrorResponse "Missing teamId or unknown action"
// @Failure 401 {object} responses.ErrorResponse "Unauthorized"
// @Failure 403 {object} responses.ErrorResponse "Not a team member"
// @Failure 404 {object} responses.ErrorResponse "Team not found"
// @Failure 500 {object} responses.ErrorResponse "Internal server error"
// @Security ApiKeyAuth
// @Router /coffee-chats [post]
func (cc *CoffeeChatController) GeneratePairings(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	teamID := uuid.MustParse(req.TeamID)

	pairings, err := cc.service.GeneratePairings(c.Request.Context(), caller, teamID)
	if err != nil {
		switch {
		case errors.Is(err, team.ErrTeamNotFound):
			responses.NotFound(c, "Team")
		case errors.Is(err, ErrNotTeamMember):
			responses.Forbidden(c, "You are not a member of this team")
		default:
			responses.InternalServerError(c)
		}
		return
	}
	responses.SendSuccess(c, http.StatusOK, pairings)
}

// GetPairings godoc
// @Summary List a team's coffee-chat pairings
// @Tags CoffeeChats
// @Produce json
// @Param teamId query string true "Team ID"
// @Param status query string false "Status" Enums(pending, scheduled, completed, skipped)
// @Success 200 {array} CoffeeChatPairing
// @Failure 400 {object} responses.ErrorResponse "Invalid teamId or status"
// @Security ApiKeyAuth
// @Router /coffee-chats [get]
func (cc *CoffeeChatController) GetPairings(c *gin.Context) {
	teamID, err := uuid.Parse(c.Query("teamId"))
	if err != nil {
		responses.BadRequest(c, "teamId is required and must be a valid UUID")
		return
	}

	pairings, err := cc.service.ListPairings(c.Request.Context(), teamID, c.Query("status"))
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			responses.BadRequest(c, "status must be one of pending, scheduled, completed, skipped")
			return
		}
		cc.log.Error("failed to list pairings", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, pairings)
}

// UpdatePairing godoc
// @Summary Update a pairing's status
// @Tags CoffeeChats
// @Accept json
// @Produce json
// @Param id path string true "Pairing ID"
// @Param request body UpdatePairingRequest true "New status and optional notes"
// @Success 200 {object} CoffeeChatPairing
// @Failure 400 {object} responses.ErrorResponse "Invalid status"
// @Failure 403 {object} responses.ErrorResponse "Not a team member"
// @Failure 404 {object} responses.ErrorResponse "Pairing not found"
// @Security ApiKeyAuth
// @Router /coffee-chats/{id} [patch]
func (cc *CoffeeChatController) UpdatePairing(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "pairing")
	if !ok {
		return
	}
	var req UpdatePairingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}

	p, err := cc.service.UpdateStatus(c.Request.Context(), caller, id, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			responses.SendValidationError(c, "Invalid request payload",
				map[string]string{"status": "must be one of [pending scheduled completed skipped]"})
		case errors.Is(err, ErrPairingNotFound):
			responses.NotFound(c, "Pairing")
		case errors.Is(err, ErrNotTeamMember):
			responses.Forbidden(c, "You are not a member of this team")
		default:
			cc.log.Error("failed to update pairing", zap.String("pairing_id", id.String()), zap.Error(err))
			responses.InternalServerError(c)
		}
		return
	}
	responses.SendSuccess(c, http.StatusOK, p)
}
