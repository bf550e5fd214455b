package brand

import (
	"context"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
)

type BrandService interface {
	Create(ctx context.Context, actor access.Actor, req *CreateBrandReq) (*Brand, error)
	GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*Brand, error)
	GetBySlug(ctx context.Context, actor access.Actor, slug string) (*Brand, error)
	GetAll(ctx context.Context, actor access.Actor, filter *BrandFilter) (*BrandListResp, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateBrandReq) (*Brand, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}
