package highfive

import (
	"github.com/DhavalSuthar-24/internhub/internal/sprint"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterHighFiveRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	highFiveController := NewHighFiveController(
		NewHighFiveRepository(db),
		sprint.NewSprintRepository(db),
		team.NewTeamRepository(db),
		log.Named("highfive"),
	)

	highFives := router.Group("/high-fives")
	{
		highFives.GET("", highFiveController.GetHighFives)
		highFives.POST("", highFiveController.CreateHighFive)
		highFives.DELETE("/:id", highFiveController.DeleteHighFive)
	}
}
