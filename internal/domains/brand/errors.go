package brand

import (
	"errors"
	"net/http"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/lifecycle"
)

var (
	ErrBrandNotFound = errors.New("brand not found")
	ErrDuplicateSlug = errors.New("brand slug already exists")
	ErrDuplicateName = errors.New("brand name already exists")
	ErrInvalidID     = errors.New("invalid brand id")
)

func GetHTTPStatusCode(err error) int {
	var verr *lifecycle.ValidationError
	switch {
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrBrandNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrDuplicateName):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
