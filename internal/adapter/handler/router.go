package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-tracker/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	meetingHandler     *Meeting
	spreadsheetHandler *Spreadsheet
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting, spreadsheetHandler *Spreadsheet) *Router {
	return &Router{
		cfg:                cfg,
		meetingHandler:     meetingHandler,
		spreadsheetHandler: spreadsheetHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupMeetingRoutes(v1)
}

// setupMeetingRoutes configures meeting and spreadsheet routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetings := g.Group("/meetings")

	// Fixed paths before :id so "stats" is never read as an ID
	meetings.GET("/stats", rt.meetingHandler.Stats)
	meetings.GET("/export", rt.spreadsheetHandler.Export)
	meetings.GET("/template", rt.spreadsheetHandler.Template)
	meetings.POST("/import", rt.spreadsheetHandler.ImportFile)
	meetings.POST("/import/url", rt.spreadsheetHandler.ImportURL)

	meetings.GET("", rt.meetingHandler.List)
	meetings.POST("", rt.meetingHandler.Create)
	meetings.GET("/:id", rt.meetingHandler.Get)
	meetings.PUT("/:id", rt.meetingHandler.Update)
	meetings.DELETE("/:id", rt.meetingHandler.Delete)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
