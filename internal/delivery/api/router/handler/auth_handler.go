package handler

import (
	"log/slog"
	"net/http"

	"blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/response"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	UserUC    usecase.UserUsecase
	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	userUC    usecase.UserUsecase
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		userUC:    params.UserUC,
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// RegisterRequest is the studio sign-up body.
type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email" validate:"omitempty,email"`
	Password     string `json:"password"`
	BusinessName string `json:"businessName"`
}

// LoginRequest is the credentials body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionRequest carries the refresh token of a session.
type SessionRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// Dispatch serves POST /api/auth?action=login|register.
func (h *AuthHandler) Dispatch(c echo.Context) error {
	switch c.QueryParam("action") {
	case "login":
		return h.Login(c)
	case "register":
		return h.Register(c)
	default:
		return domainerrors.ErrValidationFailed.WithArgs("Datos de entrada inválidos: action", "action").WithDetails("action")
	}
}

// Register handles studio registration. The role is always creator.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		BusinessName: req.BusinessName,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, response.Body{"user": newUserView(output.User)})
}

// Login exchanges credentials for an access and a refresh token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Body{
		"user":          newUserView(output.User),
		"access_token":  output.AccessToken,
		"refresh_token": output.RefreshToken,
	})
}

// Refresh issues a new access token for a stored session.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req SessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: req.RefreshToken})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Body{"access_token": output.AccessToken})
}

// Logout ends the session of the given refresh token.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req SessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.userUC.Logout(c.Request().Context(), &usecase.LogoutInput{RefreshToken: req.RefreshToken}); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil)
}

// LogoutAll ends every session of the caller.
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	if err := h.userUC.LogoutAllDevices(c.Request().Context(), viewer.UserID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil)
}

// Me returns the caller's account, with the roles taken from the token.
func (h *AuthHandler) Me(c echo.Context) error {
	viewer := middleware.GetViewer(c)
	if viewer == nil {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), viewer.UserID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.Body{
		"user":  newUserView(user),
		"roles": viewer.Roles.ToStrings(),
	})
}
