package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/villedemo/crisismap-backend/internal/config"
	"github.com/villedemo/crisismap-backend/internal/handler"
	"github.com/villedemo/crisismap-backend/internal/middleware"
)

// SetupRouter wires the HTTP routes
func SetupRouter(cfg *config.Config, mapHandler *handler.MapHandler, siteHandler *handler.SiteHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Crisis Map API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		// Declarative drawing list (loaded on mount, replaced on extraction)
		api.GET("/drawings", mapHandler.GetDrawings)
		api.PUT("/drawings", mapHandler.PutDrawings)

		// Headless dry-render of the stored map state
		api.GET("/map/preview", mapHandler.GetPreview)

		// Crisis descriptor and geofence evaluation
		crisis := api.Group("/crisis")
		{
			crisis.GET("", mapHandler.GetCrisis)
			crisis.PUT("", mapHandler.PutCrisis)
			crisis.GET("/impacted", siteHandler.GetImpacted)
		}

		// Located entities
		sites := api.Group("/sites")
		{
			sites.GET("", siteHandler.GetSites)
			sites.POST("", siteHandler.CreateSite)
		}

		// Offline geocoding fallback
		api.POST("/geocode/fallback", siteHandler.FallbackGeocode)
	}

	return r
}
