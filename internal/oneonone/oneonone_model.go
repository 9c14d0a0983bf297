// oneonone/model.go
package oneonone

import (
	"time"

	"github.com/DhavalSuthar-24/internhub/internal/models"
	"github.com/google/uuid"
)

// OneOnOneNote records a mentor's notes from a meeting with an intern.
type OneOnOneNote struct {
	models.BaseModel
	TeamID      uuid.UUID `json:"teamId" gorm:"type:uuid;not null;index"`
	MentorID    uuid.UUID `json:"mentorId" gorm:"type:uuid;not null;index"`
	InternID    uuid.UUID `json:"internId" gorm:"type:uuid;not null;index"`
	MeetingDate time.Time `json:"meetingDate" gorm:"not null"`
	Notes       string    `json:"notes"`
	ActionItems string    `json:"actionItems"`
}

type ListFilter struct {
	TeamID   *uuid.UUID
	InternID *uuid.UUID
	MentorID *uuid.UUID
}

type CreateNoteRequest struct {
	TeamID      string    `json:"teamId" binding:"required,uuid"`
	InternID    string    `json:"internId" binding:"required,uuid"`
	MeetingDate time.Time `json:"meetingDate" binding:"required"`
	Notes       string    `json:"notes" binding:"max=10000"`
	ActionItems string    `json:"actionItems" binding:"max=5000"`
}

type UpdateNoteRequest struct {
	MeetingDate *time.Time `json:"meetingDate"`
	Notes       *string    `json:"notes" binding:"omitempty,max=10000"`
	ActionItems *string    `json:"actionItems" binding:"omitempty,max=5000"`
}
