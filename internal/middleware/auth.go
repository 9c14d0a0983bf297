package middleware

import (
	"strings"

	"github.com/DhavalSuthar-24/internhub/internal/common"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/DhavalSuthar-24/internhub/pkg/token"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionCookieName is the cookie the dashboard frontend stores the Supabase
// access token in.
const SessionCookieName = "sb-access-token"

// AuthMiddleware verifies the Supabase session token and stores the caller
// Identity in the context. Every rejection answers the same 401 body; the reason
// is only logged.
func AuthMiddleware(jwtSecret string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := sessionToken(c)
		if !ok {
			log.Debug("no session token", zap.String("path", c.FullPath()))
			responses.Unauthorized(c)
			return
		}

		claims, err := token.ValidateJWT(raw, jwtSecret)
		if err != nil {
			log.Debug("session token rejected", zap.Error(err))
			responses.Unauthorized(c)
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Debug("session token subject rejected", zap.Error(err))
			responses.Unauthorized(c)
			return
		}

		role := claims.AppMetadata.Role
		if role == "" {
			role = common.RoleIntern
		}

		common.SetIdentity(c, common.Identity{
			UserID:    userID,
			Email:     claims.Email,
			Role:      role,
			SessionID: claims.SessionID,
		})
		c.Next()
	}
}

// sessionToken reads "Authorization: Bearer <token>" and falls back to the
// session cookie.
func sessionToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" || bearerToken[1] == "" {
			return "", false
		}
		return bearerToken[1], true
	}
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}
