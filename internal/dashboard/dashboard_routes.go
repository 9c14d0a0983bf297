package dashboard

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterDashboardRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	log = log.Named("dashboard")
	dashboardController := NewDashboardController(NewService(NewStatsRepository(db), log), log)

	dashboard := router.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardController.GetStats)
	}
}
