// Package api provides the HTTP handlers for the workshop API.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workshopapi/auth"
	"workshopapi/policy"
	"workshopapi/service"
)

// Handler handles HTTP requests.
type Handler struct {
	service      *service.Service
	authConfig   auth.Config
	demoPassword string
	policyEngine *policy.Engine
}

// NewHandler creates a new handler.
func NewHandler(svc *service.Service, authConfig auth.Config, demoPassword string, policyEngine *policy.Engine) *Handler {
	return &Handler{
		service:      svc,
		authConfig:   authConfig,
		demoPassword: demoPassword,
		policyEngine: policyEngine,
	}
}

// RegisterRoutes registers all routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/auth/token", h.CreateToken)

	// Workshop and session routes share the authorization guard: reads are
	// open, writes require an Admin token.
	g := e.Group("/api/workshops", h.authorize)
	g.GET("", h.ListWorkshops)
	g.GET("/:workshop_id", h.GetWorkshop)
	g.POST("", h.CreateWorkshop)
	g.PUT("/:workshop_id", h.UpdateWorkshop)
	g.DELETE("/:workshop_id", h.DeleteWorkshop)

	g.GET("/:workshop_id/sessions", h.ListSessions)
	g.GET("/:workshop_id/sessions/:session_id", h.GetSession)
	g.POST("/:workshop_id/sessions", h.CreateSession)
	g.PUT("/:workshop_id/sessions/:session_id", h.UpdateSession)
	g.DELETE("/:workshop_id/sessions/:session_id", h.DeleteSession)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}
