package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/stellarlog/launchdeck/cmd/server/container"
	"github.com/stellarlog/launchdeck/cmd/server/handlers"
)

// RegisterCrewRoutes registers crew starring routes
func RegisterCrewRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewCrewHandler(c.CrewService, c.Components.Logger)

	crew := e.Group("/api/v1/crew")
	{
		crew.POST("/stars", h.StarCrewMember) // POST /api/v1/crew/stars
		crew.GET("/stars", h.ListStarredCrew) // GET /api/v1/crew/stars
	}
}
