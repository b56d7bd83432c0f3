package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"safarsathi/internal/api/controllers"
	"safarsathi/pkg/middleware"
	"safarsathi/web"
)

// RouterConfig carries the settings the router needs from the app config.
type RouterConfig struct {
	SessionCookie string
	SessionTTL    time.Duration
}

func NewRouter(cfg RouterConfig, logger *zap.Logger, itineraryController *controllers.ItineraryController) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.ZapLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, cfg, itineraryController)

	return r, nil
}

func RegisterRoutes(r *gin.Engine, cfg RouterConfig, itineraryController *controllers.ItineraryController) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	planner := r.Group("/", middleware.SessionMiddleware(cfg.SessionCookie, cfg.SessionTTL))
	planner.GET("/", itineraryController.ShowPlanner)
	planner.POST("/itinerary", itineraryController.GenerateItineraryHandler)
	planner.GET("/itinerary/download", itineraryController.DownloadItineraryHandler)

	apiGroup := r.Group("/api")
	apiGroup.POST("/itinerary", itineraryController.CreateItineraryAPIHandler)
	apiGroup.GET("/itinerary", middleware.SessionMiddleware(cfg.SessionCookie, cfg.SessionTTL), itineraryController.GetSessionItineraryHandler)
}
