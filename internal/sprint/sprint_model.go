// sprint/model.go
package sprint

import (
	"time"

	"github.com/DhavalSuthar-24/internhub/internal/models"
	"github.com/google/uuid"
)

// Sprint is a bounded period submissions and statistics are scoped to.
type Sprint struct {
	models.BaseModel
	TeamID    uuid.UUID `json:"teamId" gorm:"type:uuid;not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	Goal      string    `json:"goal"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type CreateSprintRequest struct {
	TeamID    string    `json:"teamId" binding:"required,uuid"`
	Name      string    `json:"name" binding:"required,min=1,max=100"`
	Goal      string    `json:"goal" binding:"max=1000"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
}

type UpdateSprintRequest struct {
	Name      *string    `json:"name" binding:"omitempty,min=1,max=100"`
	Goal      *string    `json:"goal" binding:"omitempty,max=1000"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}
