package handler

import (
	"strconv"
	"strings"

	"blvgames/internal/delivery/api/validator"
	domainerrors "blvgames/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// bindAndValidate decodes the request and runs its struct tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("invalid request body"), err.Error())
	}
	if err := c.Validate(req); err != nil {
		field, tag := validator.FirstInvalidField(err)
		if tag == "required" {
			return domainerrors.NewMissingFieldError(field)
		}

		return errors.Wrap(domainerrors.ErrValidationFailed.WithArgs("Datos de entrada inválidos: "+field, field).WithDetails(field), err.Error())
	}

	return nil
}

// requiredQueryUUID parses a mandatory id query parameter.
func requiredQueryUUID(c echo.Context, name string) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(name)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidID.WithDetails(name), err.Error())
	}

	return id, nil
}

// optionalQueryUUID returns nil when the parameter is absent.
func optionalQueryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	if strings.TrimSpace(c.QueryParam(name)) == "" {
		return nil, nil
	}

	id, err := requiredQueryUUID(c, name)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrInvalidID.WithDetails(name), err.Error())
	}

	return id, nil
}

func optionalQueryBool(c echo.Context, name string) (*bool, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(name), err.Error())
	}

	return &v, nil
}
