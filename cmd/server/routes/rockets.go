package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/stellarlog/launchdeck/cmd/server/container"
	"github.com/stellarlog/launchdeck/cmd/server/handlers"
)

// RegisterRocketRoutes registers rocket mirror routes
func RegisterRocketRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewRocketHandler(c.RocketService, c.Components.Logger)

	rockets := e.Group("/api/v1/rockets")
	{
		rockets.GET("", h.ListRockets) // GET /api/v1/rockets
	}
}
