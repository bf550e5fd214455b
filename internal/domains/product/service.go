package product

import (
	"context"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
)

type ProductService interface {
	Create(ctx context.Context, actor access.Actor, req *CreateProductReq) (*Product, error)
	GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*Product, error)
	GetBySlug(ctx context.Context, actor access.Actor, slug string) (*Product, error)
	GetAll(ctx context.Context, actor access.Actor, filter *ProductFilter) (*ProductListResp, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateProductReq) (*Product, error)
	UpdateStock(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateStockReq) (*Product, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
	ExportXLSX(ctx context.Context, actor access.Actor) ([]byte, error)
}
