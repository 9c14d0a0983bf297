package auth

import (
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/internal/user"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterAuthRoutes mounts session routes. Sign-in, sign-up and token refresh
// happen against Supabase directly.
func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	authController := NewAuthController(user.NewUserRepository(db), team.NewTeamRepository(db), log.Named("auth"))

	router.GET("/auth/me", authController.GetProfile)
}
