package rmiddleware

import (
	"strings"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/gin-gonic/gin"
)

// RoleMiddleware lets the request through only when the caller holds one of the
// required program roles. It must run after middleware.AuthMiddleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := common.GetIdentity(c)
		if err != nil {
			responses.Unauthorized(c)
			return
		}

		hasRequiredRole := false
		for _, requiredRole := range requiredRoles {
			if strings.EqualFold(id.Role, requiredRole) {
				hasRequiredRole = true
				break
			}
		}

		if !hasRequiredRole {
			responses.Forbidden(c, "You don't have permission to access this resource")
			return
		}

		c.Next()
	}
}

// MentorOrAdminMiddleware is a convenience middleware for mentor or admin access
func MentorOrAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware(common.RoleMentor, common.RoleAdmin)
}
