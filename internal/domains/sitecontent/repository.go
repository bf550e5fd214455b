package sitecontent

import (
	"context"

	"github.com/google/uuid"
)

type SiteContentRepository interface {
	CreateSection(ctx context.Context, entity *CompanyInfo) (*CompanyInfo, error)
	GetSectionByID(ctx context.Context, id uuid.UUID) (*CompanyInfo, error)
	GetSectionBySlug(ctx context.Context, slug string) (*CompanyInfo, error)
	GetAllSections(ctx context.Context) ([]CompanyInfo, int64, error)
	UpdateSection(ctx context.Context, entity *CompanyInfo) (*CompanyInfo, error)
	DeleteSection(ctx context.Context, id uuid.UUID) error
	SectionExistsBySlug(ctx context.Context, slug string, excludeID *uuid.UUID) (bool, error)

	GetHomepage(ctx context.Context) (*HomepageContent, error)
	SaveHomepage(ctx context.Context, entity *HomepageContent) (*HomepageContent, error)
}
