package category

import (
	"context"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
)

type CategoryService interface {
	Create(ctx context.Context, actor access.Actor, req *CreateCategoryReq) (*Category, error)
	GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*Category, error)
	GetBySlug(ctx context.Context, actor access.Actor, slug string) (*Category, error)
	GetAll(ctx context.Context, actor access.Actor, filter *CategoryFilter) (*CategoryListResp, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateCategoryReq) (*Category, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}
