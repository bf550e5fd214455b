package product

import (
	"errors"
	"net/http"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/lifecycle"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrDuplicateSlug    = errors.New("product slug already exists")
	ErrDuplicateSKU     = errors.New("product SKU already exists")
	ErrCategoryNotFound = errors.New("referenced category not found")
	ErrBrandNotFound    = errors.New("referenced brand not found")
	ErrInvalidID        = errors.New("invalid product id")
)

func GetHTTPStatusCode(err error) int {
	var verr *lifecycle.ValidationError
	switch {
	case errors.Is(err, access.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateSlug), errors.Is(err, ErrDuplicateSKU):
		return http.StatusConflict
	case errors.Is(err, ErrCategoryNotFound), errors.Is(err, ErrBrandNotFound),
		errors.Is(err, ErrInvalidID), errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
