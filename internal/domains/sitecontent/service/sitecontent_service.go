package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/sitecontent"
	"ralhum-backend/internal/lifecycle"
	"ralhum-backend/pkg/logger"
)

type siteContentServiceImpl struct {
	repository sitecontent.SiteContentRepository
}

func NewSiteContentService(repo sitecontent.SiteContentRepository) sitecontent.SiteContentService {
	return &siteContentServiceImpl{repository: repo}
}

func (s *siteContentServiceImpl) CreateSection(ctx context.Context, actor access.Actor, req *sitecontent.CreateSectionReq) (*sitecontent.CompanyInfo, error) {
	if err := access.Authorize(access.EntityCompanyInfo, access.OpCreate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	}

	entity := &sitecontent.CompanyInfo{
		ID:             uuid.New(),
		SectionName:    req.SectionName,
		Slug:           req.Slug,
		SectionContent: req.SectionContent,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}
	if err := s.normalize(entity, true); err != nil {
		return nil, err
	}
	if exists, err := s.repository.SectionExistsBySlug(ctx, entity.Slug, nil); err != nil {
		return nil, fmt.Errorf("create section: %w", err)
	} else if exists {
		return nil, sitecontent.ErrDuplicateSlug
	}

	created, err := s.repository.CreateSection(ctx, entity)
	if err != nil {
		logger.Error("company info create failed", err)
		return nil, err
	}
	return created, nil
}

func (s *siteContentServiceImpl) GetSectionByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*sitecontent.CompanyInfo, error) {
	if err := access.Authorize(access.EntityCompanyInfo, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetSectionByID(ctx, id)
}

func (s *siteContentServiceImpl) GetSectionBySlug(ctx context.Context, actor access.Actor, slug string) (*sitecontent.CompanyInfo, error) {
	if err := access.Authorize(access.EntityCompanyInfo, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetSectionBySlug(ctx, slug)
}

func (s *siteContentServiceImpl) GetAllSections(ctx context.Context, actor access.Actor) (*sitecontent.SectionListResp, error) {
	if err := access.Authorize(access.EntityCompanyInfo, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	items, total, err := s.repository.GetAllSections(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return &sitecontent.SectionListResp{Sections: items, Total: total}, nil
}

func (s *siteContentServiceImpl) UpdateSection(ctx context.Context, actor access.Actor, id uuid.UUID, req *sitecontent.UpdateSectionReq) (*sitecontent.CompanyInfo, error) {
	if err := access.Authorize(access.EntityCompanyInfo, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}

	entity, err := s.repository.GetSectionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.SectionName != nil {
		entity.SectionName = *req.SectionName
	}
	if req.Slug != nil {
		entity.Slug = *req.Slug
	}
	if req.SectionContent != nil {
		entity.SectionContent = *req.SectionContent
	}
	if req.SEOTitle != nil {
		entity.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		entity.SEODescription = *req.SEODescription
	}

	if err := s.normalize(entity, false); err != nil {
		return nil, err
	}
	if exists, err := s.repository.SectionExistsBySlug(ctx, entity.Slug, &id); err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	} else if exists {
		return nil, sitecontent.ErrDuplicateSlug
	}
	return s.repository.UpdateSection(ctx, entity)
}

func (s *siteContentServiceImpl) DeleteSection(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if err := access.Authorize(access.EntityCompanyInfo, access.OpDelete, actor).Err(); err != nil {
		return err
	}
	return s.repository.DeleteSection(ctx, id)
}

func (s *siteContentServiceImpl) GetHomepage(ctx context.Context, actor access.Actor) (*sitecontent.HomepageContent, error) {
	if err := access.Authorize(access.EntityHomepageContent, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetHomepage(ctx)
}

// SaveHomepage replaces the whole block list. Create and update are the same
// operation on a singleton document, so either predicate granting write is
// enough; both are admin-only.
func (s *siteContentServiceImpl) SaveHomepage(ctx context.Context, actor access.Actor, req *sitecontent.SaveHomepageReq) (*sitecontent.HomepageContent, error) {
	if err := access.Authorize(access.EntityHomepageContent, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("save homepage: %w", err)
	}

	entity := &sitecontent.HomepageContent{
		Blocks:    req.Blocks,
		UpdatedAt: time.Now().UTC(),
	}
	return s.repository.SaveHomepage(ctx, entity)
}

func (s *siteContentServiceImpl) normalize(c *sitecontent.CompanyInfo, isCreate bool) error {
	rec := &lifecycle.Record{
		Name:           c.SectionName,
		Slug:           c.Slug,
		SEOTitle:       c.SEOTitle,
		SEODescription: c.SEODescription,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.LastUpdated,
	}
	if err := lifecycle.Normalize(access.EntityCompanyInfo, rec, isCreate, time.Now().UTC()); err != nil {
		return err
	}
	c.Slug = rec.Slug
	c.SEOTitle = rec.SEOTitle
	c.SEODescription = rec.SEODescription
	c.CreatedAt = rec.CreatedAt
	c.LastUpdated = rec.UpdatedAt
	return nil
}
