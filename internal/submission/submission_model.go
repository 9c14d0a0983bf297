// submission/model.go
package submission

import (
	"github.com/DhavalSuthar-24/internhub/internal/models"
	"github.com/google/uuid"
)

// Submission is an intern's check-in for a sprint.
type Submission struct {
	models.BaseModel
	TeamID          uuid.UUID `json:"teamId" gorm:"type:uuid;not null;index:idx_submission_scope"`
	SprintID        uuid.UUID `json:"sprintId" gorm:"type:uuid;not null;index:idx_submission_scope"`
	ProfileID       uuid.UUID `json:"profileId" gorm:"type:uuid;not null;index"`
	Accomplishments string    `json:"accomplishments"`
	Blockers        string    `json:"blockers"`
	NextSteps       string    `json:"nextSteps"`
	Mood            *int      `json:"mood"` // 1..5, optional
}

// ListFilter narrows a submission listing. Nil fields are not applied.
type ListFilter struct {
	TeamID    uuid.UUID
	SprintID  *uuid.UUID
	ProfileID *uuid.UUID
}

type CreateSubmissionRequest struct {
	TeamID          string `json:"teamId" binding:"required,uuid"`
	SprintID        string `json:"sprintId" binding:"required,uuid"`
	Accomplishments string `json:"accomplishments" binding:"required,max=5000"`
	Blockers        string `json:"blockers" binding:"max=5000"`
	NextSteps       string `json:"nextSteps" binding:"max=5000"`
	Mood            *int   `json:"mood" binding:"omitempty,min=1,max=5"`
}

type UpdateSubmissionRequest struct {
	Accomplishments *string `json:"accomplishments" binding:"omitempty,max=5000"`
	Blockers        *string `json:"blockers" binding:"omitempty,max=5000"`
	NextSteps       *string `json:"nextSteps" binding:"omitempty,max=5000"`
	Mood            *int    `json:"mood" binding:"omitempty,min=1,max=5"`
}
