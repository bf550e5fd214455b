package sitecontent

import (
	"context"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
)

type SiteContentService interface {
	CreateSection(ctx context.Context, actor access.Actor, req *CreateSectionReq) (*CompanyInfo, error)
	GetSectionByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*CompanyInfo, error)
	GetSectionBySlug(ctx context.Context, actor access.Actor, slug string) (*CompanyInfo, error)
	GetAllSections(ctx context.Context, actor access.Actor) (*SectionListResp, error)
	UpdateSection(ctx context.Context, actor access.Actor, id uuid.UUID, req *UpdateSectionReq) (*CompanyInfo, error)
	DeleteSection(ctx context.Context, actor access.Actor, id uuid.UUID) error

	GetHomepage(ctx context.Context, actor access.Actor) (*HomepageContent, error)
	SaveHomepage(ctx context.Context, actor access.Actor, req *SaveHomepageReq) (*HomepageContent, error)
}
