package submission

import (
	"github.com/DhavalSuthar-24/internhub/internal/sprint"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterSubmissionRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	submissionController := NewSubmissionController(
		NewSubmissionRepository(db),
		sprint.NewSprintRepository(db),
		team.NewTeamRepository(db),
		log.Named("submission"),
	)

	submissions := router.Group("/submissions")
	{
		submissions.GET("", submissionController.GetSubmissions)
		submissions.GET("/:id", submissionController.GetSubmissionByID)
		submissions.POST("", submissionController.CreateSubmission)
		submissions.PUT("/:id", submissionController.UpdateSubmission)
		submissions.DELETE("/:id", submissionController.DeleteSubmission)
	}
}
