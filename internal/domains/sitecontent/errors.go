package sitecontent

import (
	"errors"
	"net/http"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/lifecycle"
)

var (
	ErrSectionNotFound  = errors.New("company info section not found")
	ErrDuplicateSlug    = errors.New("section slug already exists")
	ErrHomepageNotFound = errors.New("homepage content not configured")
	ErrInvalidID        = errors.New("invalid section id")
)

func GetHTTPStatusCode(err error) int {
	var verr *lifecycle.ValidationError
	switch {
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrSectionNotFound), errors.Is(err, ErrHomepageNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
