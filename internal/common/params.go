package common

import (
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDParam parses a path parameter, answering 400 when it is not a UUID.
func UUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		responses.BadRequest(c, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// OptionalUUIDQuery parses an optional query parameter. Absent or empty yields
// nil; a malformed value answers 400.
func OptionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		responses.BadRequest(c, name+" must be a valid UUID")
		return nil, false
	}
	return &id, true
}

// MustIdentity fetches the caller or answers 401.
func MustIdentity(c *gin.Context) (Identity, bool) {
	id, err := GetIdentity(c)
	if err != nil {
		responses.Unauthorized(c)
		return Identity{}, false
	}
	return id, true
}
