package media

import (
	"context"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
)

type MediaService interface {
	Upload(ctx context.Context, actor access.Actor, req *UploadMediaReq) (*Media, error)
	GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*Media, error)
	GetAll(ctx context.Context, actor access.Actor, filter *MediaFilter) (*MediaListResp, error)
	Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateMediaReq) (*Media, error)
	Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error
}
