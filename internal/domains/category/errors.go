package category

import (
	"errors"
	"net/http"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/lifecycle"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrDuplicateSlug    = errors.New("category slug already exists")
	ErrDuplicateName    = errors.New("category name already exists")
	ErrInvalidID        = errors.New("invalid category id")
)

// GetHTTPStatusCode maps domain errors onto HTTP statuses. Authorization
// failures stay distinguishable from not-found and validation failures.
func GetHTTPStatusCode(err error) int {
	var verr *lifecycle.ValidationError
	switch {
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
