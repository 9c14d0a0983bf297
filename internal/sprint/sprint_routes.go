package sprint

import (
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterSprintRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	sprintController := NewSprintController(NewSprintRepository(db), team.NewTeamRepository(db), log.Named("sprint"))

	sprints := router.Group("/sprints")
	{
		sprints.GET("", sprintController.GetSprints)
		sprints.GET("/:id", sprintController.GetSprintByID)

		// Planning is done by mentors and admins
		sprints.POST("", rmiddleware.MentorOrAdminMiddleware(), sprintController.CreateSprint)
		sprints.PUT("/:id", rmiddleware.MentorOrAdminMiddleware(), sprintController.UpdateSprint)
		sprints.DELETE("/:id", rmiddleware.MentorOrAdminMiddleware(), sprintController.DeleteSprint)
	}
}
