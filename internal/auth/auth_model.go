package auth

import (
	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/internal/user"
)

// MeResponse describes the signed-in caller.
type MeResponse struct {
	Identity common.Identity `json:"identity"`
	Profile  *user.Profile   `json:"profile"` // Nil until the auth provider has created the row
	Teams    []team.Team     `json:"teams"`
}
