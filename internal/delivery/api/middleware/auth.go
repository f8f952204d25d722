package middleware

import (
	"strings"

	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	keyViewer    = "viewer"
	bearerPrefix = "Bearer "
)

// AuthMiddleware resolves the caller from the signed access token.
// Roles come from the token claims only, never from request input.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate rejects requests without a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewer, err := m.resolve(c)
		if err != nil {
			return err
		}
		if viewer == nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, "authorization header is missing")
		}
		c.Set(keyViewer, viewer)

		return next(c)
	}
}

// OptionalAuthenticate lets anonymous requests through, but still rejects a bad token.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		viewer, err := m.resolve(c)
		if err != nil {
			return err
		}
		if viewer != nil {
			c.Set(keyViewer, viewer)
		}

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			viewer := GetViewer(c)
			if viewer == nil {
				return domainerrors.ErrUnauthorized
			}
			// Admins pass every role check.
			if !viewer.Roles.Contains(role) && !viewer.IsAdmin() {
				return errors.Wrapf(domainerrors.ErrForbidden, "role %s required", role)
			}

			return next(c)
		}
	}
}

// resolve returns a nil viewer when no Authorization header is present.
func (m *AuthMiddleware) resolve(c echo.Context) (*entity.Viewer, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, nil
	}

	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || strings.TrimSpace(tokenString) == "" {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token must be a Bearer token")
	}

	claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
	}
	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "refresh token used as access token")
	}

	return &entity.Viewer{
		UserID: claims.UserID,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}, nil
}

// GetViewer returns the authenticated caller, or nil for anonymous requests.
func GetViewer(c echo.Context) *entity.Viewer {
	viewer, _ := c.Get(keyViewer).(*entity.Viewer)

	return viewer
}
