package media

import (
	"errors"
	"net/http"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/lifecycle"
)

var (
	ErrMediaNotFound = errors.New("media not found")
	ErrInvalidID     = errors.New("invalid media id")
	ErrInvalidImage  = errors.New("invalid image upload")
)

func GetHTTPStatusCode(err error) int {
	var verr *lifecycle.ValidationError
	switch {
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrMediaNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidImage), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
