package routes

import (
	"github.com/labstack/echo/v4"
	"github.com/stellarlog/launchdeck/cmd/server/container"
	"github.com/stellarlog/launchdeck/cmd/server/handlers"
)

// RegisterLaunchRoutes registers all launch browsing routes
func RegisterLaunchRoutes(e *echo.Echo, c *container.Container) {
	h := handlers.NewLaunchHandler(c.LaunchService, c.Components.Logger)

	launches := e.Group("/api/v1/launches")
	{
		launches.GET("", h.ListLaunches)  // GET /api/v1/launches?page=2
		launches.GET("/:id", h.GetLaunch) // GET /api/v1/launches/5eb87d4
	}
}
