package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/internhub/config"
	"github.com/DhavalSuthar-24/internhub/internal/auth"
	"github.com/DhavalSuthar-24/internhub/internal/coffeechat"
	"github.com/DhavalSuthar-24/internhub/internal/dashboard"
	"github.com/DhavalSuthar-24/internhub/internal/highfive"
	"github.com/DhavalSuthar-24/internhub/internal/middleware"
	"github.com/DhavalSuthar-24/internhub/internal/oneonone"
	"github.com/DhavalSuthar-24/internhub/internal/sprint"
	"github.com/DhavalSuthar-24/internhub/internal/submission"
	"github.com/DhavalSuthar-24/internhub/internal/task"
	"github.com/DhavalSuthar-24/internhub/internal/team"
	"github.com/DhavalSuthar-24/internhub/pkg/responses"
	"github.com/DhavalSuthar-24/internhub/pkg/validator"
)

func SetupRoutes(cfg *config.Config, db *gorm.DB, log *zap.Logger) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	validator.UseJSONNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log.Named("http")))

	// The dashboard frontend sends the Supabase session cookie along
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.App.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Welcome page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(`
			<html>
				<head><title>InternHub API</title></head>
				<body style="text-align:center; margin-top: 40px;">
					<h1>InternHub API</h1>
					<div><a href="/swagger/index.html">API docs</a></div>
				</body>
			</html>
		`))
	})

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			log.Warn("health check failed", zap.Error(err))
			responses.SendError(c, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes, all behind a Supabase session
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg.Supabase.JWTSecret, log.Named("auth")))

	auth.RegisterAuthRoutes(api, db, log)
	team.RegisterTeamRoutes(api, db, log)
	sprint.RegisterSprintRoutes(api, db, log)
	submission.RegisterSubmissionRoutes(api, db, log)
	task.RegisterTaskRoutes(api, db, log)
	highfive.RegisterHighFiveRoutes(api, db, log)
	oneonone.RegisterOneOnOneRoutes(api, db, log)
	coffeechat.RegisterCoffeeChatRoutes(api, db, log)
	dashboard.RegisterDashboardRoutes(api, db, log)

	return r
}
