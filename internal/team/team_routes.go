package team

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterTeamRoutes mounts the read-only team routes on an authenticated group.
func RegisterTeamRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	teamController := NewTeamController(NewTeamRepository(db), log.Named("team"))

	router.GET("/teams/:team_id", teamController.GetTeamByID)
	router.GET("/teams/:team_id/members", teamController.GetTeamMembers)
	router.GET("/users/me/teams", teamController.GetMyTeams)
}
