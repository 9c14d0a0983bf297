package common

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// Context keys
	ContextIdentityKey = "identity" // Key to store the caller Identity in context
)

// Program roles carried in the Supabase app_metadata.
const (
	RoleIntern = "intern"
	RoleMentor = "mentor"
	RoleAdmin  = "admin"
)

// ErrNoIdentity is returned when a handler runs without the auth middleware.
var ErrNoIdentity = errors.New("identity not found in context")

// Identity is the authenticated caller, resolved once per request by the auth
// middleware and passed explicitly into services.
type Identity struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	SessionID string    `json:"sessionId,omitempty"`
}

// HasRole reports whether the caller holds one of the given program roles.
func (i Identity) HasRole(roles ...string) bool {
	for _, r := range roles {
		if strings.EqualFold(i.Role, r) {
			return true
		}
	}
	return false
}

// SetIdentity stores the caller in the Gin context.
func SetIdentity(c *gin.Context, id Identity) {
	c.Set(ContextIdentityKey, id)
}

// GetIdentity retrieves the authenticated caller from the Gin context.
func GetIdentity(c *gin.Context) (Identity, error) {
	v, exists := c.Get(ContextIdentityKey)
	if !exists {
		return Identity{}, ErrNoIdentity
	}
	id, ok := v.(Identity)
	if !ok {
		return Identity{}, errors.New("identity in context has unexpected type")
	}
	return id, nil
}
