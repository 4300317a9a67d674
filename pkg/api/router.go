package api

import (
	"context"

	"web-scraping-tool/pkg/api/handlers"
	"web-scraping-tool/pkg/api/middleware"
	"web-scraping-tool/pkg/config"
	"web-scraping-tool/pkg/services"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the HTTP API around one widget session. Scrapes started
// through the API run under ctx, not the request context.
func NewRouter(ctx context.Context, tracker *services.ScrapeTracker, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())

	// Health check
	router.GET("/health", handlers.HealthCheck)

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	{
		// URLs
		urls := v1.Group("/urls")
		{
			urls.GET("", handlers.ListURLs(tracker))
			urls.POST("", handlers.AddURL(tracker))
			urls.GET("/:id", handlers.GetURL(tracker))
			urls.POST("/:id/scrape", handlers.StartScrape(ctx, tracker))
		}

		// Detail view
		v1.PUT("/selection", handlers.Select(tracker))
		v1.GET("/view", handlers.GetView(tracker))
	}

	return router
}
