package handler

import (
	"net/http"
	"strings"

	"blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/response"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler records WhatsApp contacts and serves click statistics.
type AnalyticsHandler struct {
	analyticsUC usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler
func NewAnalyticsHandler(analyticsUC usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// TrackClickRequest identifies the contacted studio and optionally the listing.
type TrackClickRequest struct {
	UserID uuid.UUID  `json:"user_id"`
	GameID *uuid.UUID `json:"game_id"`
}

// Track serves POST /api/analytics. It is public so the storefront can record clicks.
func (h *AnalyticsHandler) Track(c echo.Context) error {
	var req TrackClickRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.analyticsUC.TrackClick(c.Request().Context(), &usecase.TrackClickInput{
		UserID: req.UserID,
		GameID: req.GameID,
	}); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, nil)
}

// Stats serves GET /api/analytics?user_id=, or the global rollup without user_id.
func (h *AnalyticsHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()
	viewer := middleware.GetViewer(c)

	if strings.TrimSpace(c.QueryParam("user_id")) == "" {
		stats, err := h.analyticsUC.GlobalStats(ctx, viewer)
		if err != nil {
			return err
		}

		return response.JSON(c, http.StatusOK, response.Body{"stats": stats})
	}

	userID, err := requiredQueryUUID(c, "user_id")
	if err != nil {
		return err
	}

	stats, err := h.analyticsUC.UserStats(ctx, viewer, userID)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Body{"stats": stats})
}
