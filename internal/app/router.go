package app

import (
	"lexigrain_schedule/docs"
	"lexigrain_schedule/internal/config"
	"lexigrain_schedule/internal/middleware"
	"lexigrain_schedule/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/api/health", c.health.HealthCheck)

	// 业务路由，配置了 server.api_token 时统一要求共享令牌
	api := router.Group("/api")
	api.Use(middleware.APITokenMiddleware(cfg))
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", c.auth.Login)
			auth.POST("/logout", c.auth.Logout)
			auth.GET("/status", c.auth.Status)
		}

		api.GET("/lessons", c.lesson.ListLessons)

		onboarding := api.Group("/onboarding")
		{
			onboarding.GET("/me", c.onboarding.GetPreferences)
			onboarding.PUT("/me", c.onboarding.SavePreferences)
		}

		schedule := api.Group("/schedule")
		{
			schedule.GET("/current", c.schedule.GetCurrentWeek)
			schedule.POST("/current/shift", c.schedule.ShiftWeek)

			weeks := schedule.Group("/weeks/:weekId")
			{
				weeks.GET("", c.schedule.GetWeek)
				weeks.PUT("", c.schedule.ReplaceWeek)
				weeks.GET("/stats", c.schedule.GetWeekStats)
				weeks.POST("/sessions", c.schedule.AddSession)
				weeks.PATCH("/sessions/:id", c.schedule.UpdateSession)
				weeks.DELETE("/sessions/:id", c.schedule.DeleteSession)
				weeks.POST("/split", c.schedule.SplitSessions)
				weeks.POST("/regenerate", c.schedule.RegenerateWeek)
			}
		}
	}
}
