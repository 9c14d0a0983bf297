package coffeechat

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func RegisterCoffeeChatRoutes(router *gin.RouterGroup, db *gorm.DB, log *zap.Logger) {
	log = log.Named("coffeechat")
	coffeeChatController := NewCoffeeChatController(NewService(NewPairingRepository(db), log), log)

	coffeeChats := router.Group("/coffee-chats")
	{
		coffeeChats.GET("", coffeeChatController.GetPairings)
		coffeeChats.POST("", coffeeChatController.GeneratePairings)
		coffeeChats.PATCH("/:id", coffeeChatController.UpdatePairing)
	}
}
