// team/model.go
package team

import (
	"github.com/DhavalSuthar-24/internhub/internal/models"
	"github.com/DhavalSuthar-24/internhub/internal/user"
	"github.com/google/uuid"
)

// Team is one internship cohort group working through the same sprints.
type Team struct {
	models.BaseModel
	Name   string `json:"name" gorm:"not null"`
	Cohort string `json:"cohort" gorm:"index"`
}

// TeamMember represents a profile's membership in a team. Memberships are
// managed outside this service.
type TeamMember struct {
	models.BaseModel
	TeamID    uuid.UUID     `json:"teamId" gorm:"type:uuid;not null;uniqueIndex:idx_team_member"`
	ProfileID uuid.UUID     `json:"profileId" gorm:"type:uuid;not null;uniqueIndex:idx_team_member"`
	Role      string        `json:"role" gorm:"default:'intern'"`
	Profile   *user.Profile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
}
