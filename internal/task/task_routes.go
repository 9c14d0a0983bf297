package task

import (
	"github.com/DhavalSuthar-24/internhub/internal/sprint"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterTaskRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	taskController := NewTaskController(
		NewTaskRepository(db),
		sprint.NewSprintRepository(db),
		team.NewTeamRepository(db),
		log.Named("task"),
	)

	tasks := router.Group("/tasks")
	{
		tasks.GET("", taskController.GetTasks)
		tasks.GET("/:id", taskController.GetTaskByID)
		tasks.POST("", taskController.CreateTask)
		tasks.PUT("/:id", taskController.UpdateTask)
		tasks.PATCH("/:id/move", taskController.MoveTask)
		tasks.DELETE("/:id", taskController.DeleteTask)
	}
}
