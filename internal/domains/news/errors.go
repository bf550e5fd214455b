package news

import (
	"errors"
	"net/http"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/lifecycle"
)

var (
	ErrNewsNotFound  = errors.New("news post not found")
	ErrDuplicateSlug = errors.New("news slug already exists")
	ErrInvalidID     = errors.New("invalid news post id")
)

func GetHTTPStatusCode(err error) int {
	var verr *lifecycle.ValidationError
	switch {
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNewsNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidID), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
