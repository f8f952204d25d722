package handler

import (
	"context"
	"net/http"

	"blvgames/config"
	"blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/response"
	"blvgames/internal/domain/entity"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ModerationUC usecase.ModerationUsecase
	Config       *config.Config
}

// AdminHandler serves the moderation queue and decisions.
type AdminHandler struct {
	moderationUC usecase.ModerationUsecase
	placeholder  string
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	placeholder := ""
	if params.Config != nil && params.Config.Games != nil {
		placeholder = params.Config.Games.PlaceholderImage
	}

	return &AdminHandler{
		moderationUC: params.ModerationUC,
		placeholder:  placeholder,
	}
}

// DecisionRequest optionally explains a moderation decision.
type DecisionRequest struct {
	Reason string `json:"reason" validate:"max=1000"`
}

// FeatureRequest sets the featured flag.
type FeatureRequest struct {
	Featured bool `json:"featured"`
}

type decisionFunc func(ctx context.Context, actor *entity.Viewer, gameID uuid.UUID, reason string) (*entity.Game, error)

// Pending lists the listings waiting for review, oldest first.
func (h *AdminHandler) Pending(c echo.Context) error {
	games, err := h.moderationUC.Queue(c.Request().Context())
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Body{"games": newGameViews(games, h.placeholder)})
}

func (h *AdminHandler) Approve(c echo.Context) error {
	return h.decide(c, h.moderationUC.Approve)
}

func (h *AdminHandler) Reject(c echo.Context) error {
	return h.decide(c, h.moderationUC.Reject)
}

func (h *AdminHandler) Reopen(c echo.Context) error {
	return h.decide(c, h.moderationUC.Reopen)
}

func (h *AdminHandler) decide(c echo.Context, decide decisionFunc) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req DecisionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	game, err := decide(c.Request().Context(), middleware.GetViewer(c), id, req.Reason)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Body{"game": newGameView(game, h.placeholder)})
}

// History returns the audit trail of a listing.
func (h *AdminHandler) History(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	events, err := h.moderationUC.History(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Body{"events": newModerationEventViews(events)})
}

// Feature toggles whether the listing sorts first.
func (h *AdminHandler) Feature(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req FeatureRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	game, err := h.moderationUC.SetFeatured(c.Request().Context(), middleware.GetViewer(c), id, req.Featured)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Body{"game": newGameView(game, h.placeholder)})
}
