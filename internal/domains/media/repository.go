package media

import (
	"context"

	"github.com/google/uuid"
)

type MediaRepository interface {
	Create(ctx context.Context, entity *Media) (*Media, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Media, error)
	GetAll(ctx context.Context, filter *MediaFilter) ([]Media, int64, error)
	Update(ctx context.Context, entity *Media) (*Media, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
