package handler

import (
	"net/http"
	"strings"

	"blvgames/internal/delivery/api/middleware"
	"blvgames/internal/delivery/api/response"
	"blvgames/internal/domain/entity"
	"blvgames/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler serves studio profiles.
type UserHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(profileUC usecase.ProfileUsecase) *UserHandler {
	return &UserHandler{profileUC: profileUC}
}

// UpdateProfileRequest lists the fields a profile update may carry. Anything else,
// role included, is ignored.
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	BusinessName *string `json:"business_name"`
	Logo         *string `json:"logo" validate:"omitempty,max=2048"`
	CoverPhoto   *string `json:"cover_photo" validate:"omitempty,max=2048"`
	Description  *string `json:"description"`
	Phone        *string `json:"phone" validate:"omitempty,max=32"`
	Address      *string `json:"address"`
	Facebook     *string `json:"facebook"`
	Instagram    *string `json:"instagram"`
	Twitter      *string `json:"twitter"`
}

func (r *UpdateProfileRequest) patch() entity.ProfilePatch {
	return entity.ProfilePatch{
		Name:         r.Name,
		BusinessName: r.BusinessName,
		Logo:         r.Logo,
		CoverPhoto:   r.CoverPhoto,
		Description:  r.Description,
		Phone:        r.Phone,
		Address:      r.Address,
		Facebook:     r.Facebook,
		Instagram:    r.Instagram,
		Twitter:      r.Twitter,
	}
}

// Get serves GET /api/users?id= for one profile, otherwise the list filtered by role and q.
func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	if strings.TrimSpace(c.QueryParam("id")) != "" {
		id, err := requiredQueryUUID(c, "id")
		if err != nil {
			return err
		}

		user, err := h.profileUC.GetProfile(ctx, id)
		if err != nil {
			return err
		}

		return response.JSON(c, http.StatusOK, response.Body{"user": newUserView(user)})
	}

	users, err := h.profileUC.ListProfiles(ctx, entity.UserFilter{
		Role:  entity.Role(strings.TrimSpace(c.QueryParam("role"))),
		Query: c.QueryParam("q"),
	})
	if err != nil {
		return err
	}

	return response.JSON(c, http.StatusOK, response.Body{"users": newUserViews(users)})
}

// Update serves PUT /api/users?id=.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := requiredQueryUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.profileUC.UpdateProfile(c.Request().Context(), middleware.GetViewer(c), id, req.patch()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil)
}

// WhatsAppQR serves the studio's contact QR code as a PNG.
func (h *UserHandler) WhatsAppQR(c echo.Context) error {
	id, err := requiredQueryUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.profileUC.WhatsAppQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}
