package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/stellarlog/launchdeck/cmd/server/service"
	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stellarlog/launchdeck/common/models"
)

// LaunchHandler handles launch browsing requests
type LaunchHandler struct {
	launches *service.LaunchService
	log      *logger.Logger
}

// NewLaunchHandler creates a new launch handler
func NewLaunchHandler(launches *service.LaunchService, log *logger.Logger) *LaunchHandler {
	return &LaunchHandler{
		launches: launches,
		log:      log,
	}
}

// ListLaunches returns one page of the launch collection
// GET /api/v1/launches?page=1&per_page=5
func (h *LaunchHandler) ListLaunches(c echo.Context) error {
	page := intQueryParam(c, "page", 1)
	perPage := intQueryParam(c, "per_page", service.DefaultPerPage)

	result, err := h.launches.Browse(c.Request().Context(), page, perPage)
	if err != nil {
		// Listing degrades to the zero-value page; the failure stays in
		// the logs and the client sees an empty collection.
		h.log.Error("failed to fetch launches", "error", err)
		result = models.EmptyPage(perPage)
	}

	return c.JSON(http.StatusOK, result)
}

// GetLaunch returns a single launch with its resolved crew members.
// The launch payload is passed through from the upstream API unmodified.
// GET /api/v1/launches/:id
func (h *LaunchHandler) GetLaunch(c echo.Context) error {
	id := c.Param("id")

	launch, crew, err := h.launches.Detail(c.Request().Context(), id)
	if err != nil {
		h.log.Warn("launch detail unavailable", "launch_id", id, "error", err)
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "launch not found",
		})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"launch": json.RawMessage(launch.Raw),
		"crew":   crew,
	})
}

func intQueryParam(c echo.Context, name string, defaultValue int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
