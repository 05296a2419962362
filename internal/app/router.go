package app

import (
	"fittrack_backend/docs"
	"fittrack_backend/internal/config"
	"fittrack_backend/internal/middleware"
	"fittrack_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/signup", c.auth.Signup)
			auth.POST("/login", c.auth.Login)
			auth.POST("/refresh-token", c.auth.RefreshToken)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/auth/logout", c.auth.Logout)

			protected.GET("/profile", c.user.GetProfile)
			protected.PUT("/user/profile", c.user.UpdateProfile)
			protected.POST("/user/avatar/upload", c.user.UploadAvatar)
			protected.DELETE("/user", c.user.DeleteAccount)

			goals := protected.Group("/goals")
			{
				goals.POST("", c.goal.CreateGoal)
				goals.GET("", c.goal.GetGoals)
				goals.GET("/:id", c.goal.GetGoal)
				goals.PUT("/:id", c.goal.UpdateGoal)
				goals.DELETE("/:id", c.goal.DeleteGoal)
			}

			progress := protected.Group("/progress")
			{
				progress.POST("", c.progress.CreateProgress)
				progress.GET("/:goalId", c.progress.GetProgressByGoal)
				progress.PUT("/:id", c.progress.UpdateProgress)
				progress.DELETE("/:id", c.progress.DeleteProgress)
			}

			protected.GET("/dashboard", c.dashboard.GetDashboard)
		}
	}
}
