package news

import (
	"context"

	"github.com/google/uuid"
)

type NewsRepository interface {
	Create(ctx context.Context, entity *News) (*News, error)
	GetByID(ctx context.Context, id uuid.UUID) (*News, error)
	GetBySlug(ctx context.Context, slug string) (*News, error)
	GetAll(ctx context.Context, filter *NewsFilter) ([]News, int64, error)
	Update(ctx context.Context, entity *News) (*News, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
}
