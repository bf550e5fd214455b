package brand

import (
	"context"

	"github.com/google/uuid"
)

type BrandRepository interface {
	Create(ctx context.Context, entity *Brand) (*Brand, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Brand, error)
	GetBySlug(ctx context.Context, slug string) (*Brand, error)
	GetAll(ctx context.Context, filter *BrandFilter) ([]Brand, int64, error)
	Update(ctx context.Context, entity *Brand) (*Brand, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)
	ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error)
}
