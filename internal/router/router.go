// Package router provides HTTP routing configuration for the application.
package router

import (
	"time"

	"shift-track/internal/handler"
	"shift-track/internal/middleware"
	"shift-track/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func NewRouter(serverHandler *handler.Server, configManager types.ConfigManager) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler, configManager)

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
}

// registerAPIRoutes registers API routes behind AUTH_KEY authentication
func registerAPIRoutes(router *gin.Engine, serverHandler *handler.Server, configManager types.ConfigManager) {
	api := router.Group("/api")
	api.Use(middleware.Auth(configManager.GetAuthConfig()))

	shifts := api.Group("/shifts")
	{
		shifts.GET("", serverHandler.ListShifts)
		shifts.POST("", serverHandler.CreateShift)
		shifts.GET("/active", serverHandler.GetActiveShift)
		shifts.PUT("/:id", serverHandler.UpdateShift)
		shifts.DELETE("/:id", serverHandler.DeleteShift)
		shifts.POST("/:id/apply", serverHandler.ApplyShift)
	}

	work := api.Group("/work")
	{
		work.POST("/actions", serverHandler.PerformAction)
		work.GET("/status", serverHandler.GetWorkStatus)
		work.GET("/log", serverHandler.GetWorkLog)
		work.POST("/reset", serverHandler.ResetToday)
	}

	days := api.Group("/days")
	{
		days.GET("", serverHandler.GetWeek)
		days.GET("/:date", serverHandler.GetDay)
		days.PUT("/:date/status", serverHandler.SetDayStatus)
	}

	api.GET("/stats/:month", serverHandler.GetMonthStats)

	// Reports carry a full month of day records; compress them.
	reports := api.Group("/reports")
	reports.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		reports.GET("/:month", serverHandler.GetMonthlyReport)
	}

	api.GET("/settings", serverHandler.GetSettings)
	api.PUT("/settings", serverHandler.UpdateSettings)

	api.GET("/reminders/next", serverHandler.GetNextReminders)
}
