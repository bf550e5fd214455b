package news

import (
	"context"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
)

type NewsService interface {
	Create(ctx context.Context, actor access.Actor, req *CreateNewsReq) (*News, error)
	GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*News, error)
	GetBySlug(ctx context.Context, actor access.Actor, slug string) (*News, error)
	GetAll(ctx context.Context, actor access.Actor, filter *NewsFilter) (*NewsListResp, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateNewsReq) (*News, error)
	Publish(ctx context.Context, actor access.Actor, id uuid.UUID) (*News, error)
	Archive(ctx context.Context, actor access.Actor, id uuid.UUID) (*News, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}
