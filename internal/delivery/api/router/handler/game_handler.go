package handler

import (
	"net/http"
	"strings"

	"blvgames/config"
	"blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/response"
	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GameHandlerParams holds dependencies for GameHandler, injected by Fx.
type GameHandlerParams struct {
	fx.In

	GameUC usecase.GameUsecase
	Config *config.Config
}

// GameHandler serves the listing endpoints.
type GameHandler struct {
	gameUC      usecase.GameUsecase
	placeholder string
}

// NewGameHandler is the constructor for GameHandler
func NewGameHandler(params GameHandlerParams) *GameHandler {
	placeholder := ""
	if params.Config != nil && params.Config.Games != nil {
		placeholder = params.Config.Games.PlaceholderImage
	}

	return &GameHandler{
		gameUC:      params.GameUC,
		placeholder: placeholder,
	}
}

// CreateGameRequest is the new listing body. A status sent by the client is ignored.
type CreateGameRequest struct {
	UserID      *uuid.UUID `json:"user_id"`
	Name        string     `json:"name" validate:"max=200"`
	Description string     `json:"description"`
	Price       *float64   `json:"price"`
	Category    string     `json:"category" validate:"max=50"`
	Images      []string   `json:"images" validate:"omitempty,dive,max=2048"`
}

// UpdateGameRequest is a partial listing update.
type UpdateGameRequest struct {
	Name        *string   `json:"name" validate:"omitempty,max=200"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category" validate:"omitempty,max=50"`
	Images      *[]string `json:"images" validate:"omitempty,dive,max=2048"`
}

// Get serves GET /api/games?id= for one listing, otherwise the filtered list.
func (h *GameHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	viewer := middleware.GetViewer(c)

	if strings.TrimSpace(c.QueryParam("id")) != "" {
		id, err := requiredQueryUUID(c, "id")
		if err != nil {
			return err
		}

		game, err := h.gameUC.GetGame(ctx, viewer, id)
		if err != nil {
			return err
		}

		return response.JSON(c, http.StatusOK, response.Body{"game": newGameView(game, h.placeholder)})
	}

	input := &usecase.ListGamesInput{
		Category: c.QueryParam("category"),
		Query:    c.QueryParam("q"),
	}
	var err error
	if input.UserID, err = optionalQueryUUID(c, "user_id"); err != nil {
		return err
	}
	if input.Featured, err = optionalQueryBool(c, "featured"); err != nil {
		return err
	}
	if status := strings.TrimSpace(c.QueryParam("status")); status != "" {
		s := entity.GameStatus(strings.ToLower(status))
		input.Status = &s
	}

	games, err := h.gameUC.ListGames(ctx, viewer, input)
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Body{"games": newGameViews(games, h.placeholder)})
}

// Create serves POST /api/games. The owner defaults to the caller.
func (h *GameHandler) Create(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	var req CreateGameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ownerID := viewer.UserID
	if req.UserID != nil {
		ownerID = *req.UserID
	}

	game, err := h.gameUC.CreateGame(c.Request().Context(), viewer, &usecase.CreateGameInput{
		UserID:      ownerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, response.Body{
		"game_id": game.ID,
		"game":    newGameView(game, h.placeholder),
	})
}

// Update serves PUT /api/games?id=.
func (h *GameHandler) Update(c echo.Context) error {
	id, err := requiredQueryUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateGameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patch := entity.GamePatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
	}
	if err := h.gameUC.UpdateGame(c.Request().Context(), middleware.GetViewer(c), id, patch); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil)
}

// Delete serves DELETE /api/games?id=. Deleting a missing listing succeeds.
func (h *GameHandler) Delete(c echo.Context) error {
	id, err := requiredQueryUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.gameUC.DeleteGame(c.Request().Context(), middleware.GetViewer(c), id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil)
}
