package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/stellarlog/launchdeck/cmd/server/service"
	"github.com/stellarlog/launchdeck/common/logger"
	"github.com/stellarlog/launchdeck/common/models"
)

// CrewHandler handles crew starring requests
type CrewHandler struct {
	crew *service.CrewService
	log  *logger.Logger
}

// NewCrewHandler creates a new crew handler
func NewCrewHandler(crew *service.CrewService, log *logger.Logger) *CrewHandler {
	return &CrewHandler{
		crew: crew,
		log:  log,
	}
}

// StarCrewRequest is the star-a-crew-member request body
type StarCrewRequest struct {
	CrewID       string  `json:"crew_id" form:"crew_id"`
	CrewName     string  `json:"crew_name" form:"crew_name"`
	Nickname     string  `json:"nickname" form:"nickname"`
	ImageURL     *string `json:"image_url" form:"image_url"`
	WikipediaURL *string `json:"wikipedia_url" form:"wikipedia_url"`
}

// StarCrewMember stars a crew member under a nickname
// POST /api/v1/crew/stars
func (h *CrewHandler) StarCrewMember(c echo.Context) error {
	var req StarCrewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	err := h.crew.Star(c.Request().Context(),
		req.CrewID, req.CrewName, req.Nickname, req.ImageURL, req.WikipediaURL)

	if errors.Is(err, service.ErrValidation) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}
	if err != nil {
		// Write failures propagate so the client can show a targeted warning
		h.log.Error("failed to star crew member", "crew_id", req.CrewID, "error", err)
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "failed to star crew member",
		})
	}

	return c.JSON(http.StatusCreated, map[string]string{
		"status":   "starred",
		"crew_id":  req.CrewID,
		"nickname": req.Nickname,
	})
}

// ListStarredCrew lists all starred crew members, most recent first
// GET /api/v1/crew/stars
func (h *CrewHandler) ListStarredCrew(c echo.Context) error {
	stars, err := h.crew.Starred(c.Request().Context())
	if err != nil {
		// Listing never fails outward; storage errors degrade to an
		// empty list with a logged message.
		h.log.Error("failed to list starred crew", "error", err)
		stars = []models.CrewStar{}
	}
	if stars == nil {
		stars = []models.CrewStar{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"starred_crew": stars,
	})
}
