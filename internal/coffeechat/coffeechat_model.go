// coffeechat/model.go
package coffeechat

import (
	"errors"

	"github.com/DhavalSuthar-24/internhub/internal/models"
	"github.com/google/uuid"
)

// Pairing lifecycle states.
const (
	StatusPending   = "pending"
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusSkipped   = "skipped"
)

// ActionGenerate is the only action POST /coffee-chats understands.
const ActionGenerate = "generate"

var (
	ErrPairingNotFound = errors.New("coffee chat pairing not found")
	ErrInvalidStatus   = errors.New("invalid coffee chat status")
	ErrNotTeamMember   = errors.New("caller is not a member of the team")
)

// CoffeeChatPairing proposes a social chat between two members of a team.
type CoffeeChatPairing struct {
	models.BaseModel
	TeamID    uuid.UUID `json:"teamId" gorm:"type:uuid;not null;index"`
	MemberAID uuid.UUID `json:"memberAId" gorm:"column:member_a_id;type:uuid;not null"`
	MemberBID uuid.UUID `json:"memberBId" gorm:"column:member_b_id;type:uuid;not null"`
	Status    string    `json:"status" gorm:"not null;default:'pending'"`
	Notes     *string   `json:"notes"`
	CreatedBy uuid.UUID `json:"createdBy" gorm:"type:uuid;not null"`
}

// ValidStatus reports whether status is one of the pairing lifecycle states.
func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusScheduled, StatusCompleted, StatusSkipped:
		return true
	}
	return false
}

type GenerateRequest struct {
	TeamID string `json:"teamId" binding:"required,uuid"`
	Action string `json:"action" binding:"required,oneof=generate"`
}

type UpdatePairingRequest struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes" binding:"omitempty,max=2000"`
}
