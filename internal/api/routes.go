package api

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the API routes
func SetupRoutes(handler *Handler) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(Recovery())
	router.Use(CORS())
	router.Use(RequestID())
	router.Use(Logger())

	// Health check
	router.GET("/health", handler.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/wrapped", handler.GetWrapped)
		api.GET("/wrapped/summary", handler.GetSummary)
		api.GET("/journey/stream", handler.StreamJourney)
	}

	return router
}
