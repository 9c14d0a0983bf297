package oneonone

import (
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterOneOnOneRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	noteController := NewNoteController(NewNoteRepository(db), team.NewTeamRepository(db), log.Named("oneonone"))

	// Notes are private to mentors and admins
	notes := router.Group("/one-on-ones", rmiddleware.MentorOrAdminMiddleware())
	{
		notes.GET("", noteController.GetNotes)
		notes.GET("/:id", noteController.GetNoteByID)
		notes.POST("", noteController.CreateNote)
		notes.PUT("/:id", noteController.UpdateNote)
		notes.DELETE("/:id", noteController.DeleteNote)
	}
}
