// highfive/model.go
package highfive

import (
	"github.com/DhavalSuthar-24/internhub/internal/models"
	"github.com/google/uuid"
)

// HighFive is peer recognition from one team member to another.
type HighFive struct {
	models.BaseModel
	TeamID   uuid.UUID  `json:"teamId" gorm:"type:uuid;not null;index"`
	SprintID *uuid.UUID `json:"sprintId" gorm:"type:uuid;index"`
	FromID   uuid.UUID  `json:"fromId" gorm:"type:uuid;not null"`
	ToID     uuid.UUID  `json:"toId" gorm:"type:uuid;not null;index"`
	Message  string     `json:"message"`
}

type ListFilter struct {
	TeamID   uuid.UUID
	SprintID *uuid.UUID
	ToID     *uuid.UUID
}

type CreateHighFiveRequest struct {
	TeamID   string  `json:"teamId" binding:"required,uuid"`
	SprintID *string `json:"sprintId" binding:"omitempty,uuid"`
	ToID     string  `json:"toId" binding:"required,uuid"`
	Message  string  `json:"message" binding:"required,min=1,max=500"`
}
