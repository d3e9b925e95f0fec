package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stellarlog/launchdeck/cmd/server/service"
	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stellarlog/launchdeck/common/models"
)

// RocketHandler handles rocket mirror requests
type RocketHandler struct {
	rockets *service.RocketService
	log     *logger.Logger
}

// NewRocketHandler creates a new rocket handler
func NewRocketHandler(rockets *service.RocketService, log *logger.Logger) *RocketHandler {
	return &RocketHandler{
		rockets: rockets,
		log:     log,
	}
}

// ListRockets lists all mirrored rockets ordered by name
// GET /api/v1/rockets
func (h *RocketHandler) ListRockets(c echo.Context) error {
	rockets, err := h.rockets.List(c.Request().Context())
	if err != nil {
		// Same degrade-to-empty policy as the other listings
		h.log.Error("failed to list rockets", "error", err)
		rockets = []models.Rocket{}
	}
	if rockets == nil {
		rockets = []models.Rocket{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"rockets": rockets,
	})
}
