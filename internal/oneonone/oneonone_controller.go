package oneonone

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

type NoteController struct {
	repo  NoteRepository
	teams team.TeamRepository
	log   *zap.Logger
}

func NewNoteController(repo NoteRepository, teams team.TeamRepository, log *zap.Logger) *NoteController {
	return &NoteController{repo: repo, teams: teams, log: log}
}

// GetNotes godoc
// @Summary List one-on-one notes
// @Description Mentors see the notes they wrote; admins see every note.
// @Tags OneOnOnes
// @Produce json
// @Param teamId query string false "Team ID"
// @Param internId query string false "Intern profile ID"
// @Success 200 {array} OneOnOneNote
// @Failure 400 {object} responses.ErrorResponse "Invalid filter"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /one-on-ones [get]
func (nc *NoteController) GetNotes(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	teamID, ok := common.OptionalUUIDQuery(c, "teamId")
	if !ok {
		return
	}
	internID, ok := common.OptionalUUIDQuery(c, "internId")
	if !ok {
		return
	}

	filter := ListFilter{TeamID: teamID, InternID: internID}
	if !caller.HasRole(common.RoleAdmin) {
		filter.MentorID = &caller.UserID
	}

	notes, err := nc.repo.GetNotes(c.Request.Context(), filter)
	if err != nil {
		nc.log.Error("failed to list one-on-one notes", zap.String("user_id", caller.UserID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if notes == nil {
		notes = []OneOnOneNote{}
	}
	responses.SendSuccess(c, http.StatusOK, notes)
}

// GetNoteByID godoc
// @Summary Get a one-on-one note
// @Tags OneOnOnes
// @Produce json
// @Param id path string true "Note ID"
// @Success 200 {object} OneOnOneNote
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Note not found"
// @Security ApiKeyAuth
// @Router /one-on-ones/{id} [get]
func (nc *NoteController) GetNoteByID(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "note")
	if !ok {
		return
	}
	n, ok := nc.accessibleNote(c, caller, id)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, n)
}

// CreateNote godoc
// @Summary Record a one-on-one
// @Description The mentor is the caller. The intern must belong to the team.
// @Tags OneOnOnes
// @Accept json
// @Produce json
// @Param note body CreateNoteRequest true "Note"
// @Success 201 {object} OneOnOneNote
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Security ApiKeyAuth
// @Router /one-on-ones [post]
func (nc *NoteController) CreateNote(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	ctx := c.Request.Context()
	teamID := uuid.MustParse(req.TeamID)
	internID := uuid.MustParse(req.InternID)

	member, err := nc.teams.IsTeamMember(ctx, teamID, internID)
	if err != nil {
		nc.log.Error("failed to check membership", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	if !member {
		responses.SendValidationError(c, "Invalid request payload", map[string]string{"internId": "is not a member of teamId"})
		return
	}

	n := OneOnOneNote{
		TeamID:      teamID,
		MentorID:    caller.UserID,
		InternID:    internID,
		MeetingDate: req.MeetingDate,
		Notes:       req.Notes,
		ActionItems: req.ActionItems,
	}
	if err := nc.repo.CreateNote(ctx, &n); err != nil {
		nc.log.Error("failed to create one-on-one note", zap.String("team_id", teamID.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, n)
}

// UpdateNote godoc
// @Summary Edit a one-on-one note
// @Tags OneOnOnes
// @Accept json
// @Produce json
// @Param id path string true "Note ID"
// @Param note body UpdateNoteRequest true "Fields to change"
// @Success 200 {object} OneOnOneNote
// @Failure 400 {object} responses.ErrorResponse "Invalid input"
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Note not found"
// @Security ApiKeyAuth
// @Router /one-on-ones/{id} [put]
func (nc *NoteController) UpdateNote(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "note")
	if !ok {
		return
	}
	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendValidationError(c, "Invalid request payload", validator.ParseError(err))
		return
	}
	n, ok := nc.accessibleNote(c, caller, id)
	if !ok {
		return
	}

	if req.MeetingDate != nil {
		n.MeetingDate = *req.MeetingDate
	}
	if req.Notes != nil {
		n.Notes = *req.Notes
	}
	if req.ActionItems != nil {
		n.ActionItems = *req.ActionItems
	}
	if err := nc.repo.UpdateNote(c.Request.Context(), n); err != nil {
		nc.log.Error("failed to update one-on-one note", zap.String("note_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	responses.SendSuccess(c, http.StatusOK, n)
}

// DeleteNote godoc
// @Summary Delete a one-on-one note
// @Tags OneOnOnes
// @Param id path string true "Note ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse "Forbidden"
// @Failure 404 {object} responses.ErrorResponse "Note not found"
// @Security ApiKeyAuth
// @Router /one-on-ones/{id} [delete]
func (nc *NoteController) DeleteNote(c *gin.Context) {
	caller, ok := common.MustIdentity(c)
	if !ok {
		return
	}
	id, ok := common.UUIDParam(c, "id", "note")
	if !ok {
		return
	}
	if _, ok := nc.accessibleNote(c, caller, id); !ok {
		return
	}
	if err := nc.repo.DeleteNote(c.Request.Context(), id); err != nil {
		nc.log.Error("failed to delete one-on-one note", zap.String("note_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return
	}
	c.Status(http.StatusNoContent)
}

// accessibleNote loads a note the caller wrote, or any note for an admin.
func (nc *NoteController) accessibleNote(c *gin.Context, caller common.Identity, id uuid.UUID) (*OneOnOneNote, bool) {
	n, err := nc.repo.GetNoteByID(c.Request.Context(), id)
	if err != nil {
		nc.log.Error("failed to get one-on-one note", zap.String("note_id", id.String()), zap.Error(err))
		responses.InternalServerError(c)
		return nil, false
	}
	if n == nil {
		responses.NotFound(c, "Note")
		return nil, false
	}
	if n.MentorID != caller.UserID && !caller.HasRole(common.RoleAdmin) {
		responses.Forbidden(c, "You can only access notes you wrote")
		return nil, false
	}
	return n, true
}
