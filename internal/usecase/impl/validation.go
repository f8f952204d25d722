package impl

import (
	"strings"

	"blvgames/internal/domain/entity"
	domainerrors "blvgames/internal/domain/errors"
	"blvgames/internal/infra/textfold"

	"github.com/google/uuid"
)

type field struct {
	name  string
	value string
}

// requireFields returns a MISSING_FIELD error naming the first blank field.
func requireFields(fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return domainerrors.NewMissingFieldError(f.name)
		}
	}

	return nil
}

// canManage reports whether the viewer owns the resource or is an admin.
func canManage(viewer *entity.Viewer, ownerID uuid.UUID) bool {
	if viewer == nil {
		return false
	}

	return viewer.IsAdmin() || viewer.UserID == ownerID
}

// categoryMatcher resolves free-form category input to the configured spelling.
type categoryMatcher map[string]string

func newCategoryMatcher(categories []string) categoryMatcher {
	m := make(categoryMatcher, len(categories))
	for _, c := range categories {
		m[textfold.Fold(c)] = c
	}

	return m
}

// resolve returns the canonical category. With no configured list any non-blank value is accepted.
func (m categoryMatcher) resolve(category string) (string, error) {
	category = strings.TrimSpace(category)
	if len(m) == 0 {
		return category, nil
	}
	canonical, ok := m[textfold.Fold(category)]
	if !ok {
		return "", domainerrors.ErrInvalidCategory.WithDetails(category)
	}

	return canonical, nil
}
