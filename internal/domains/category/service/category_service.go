package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/category"
	"ralhum-backend/internal/lifecycle"
	"ralhum-backend/pkg/logger"
)

type categoryServiceImpl struct {
	repository category.CategoryRepository
}

func NewCategoryService(repo category.CategoryRepository) category.CategoryService {
	return &categoryServiceImpl{repository: repo}
}

func (s *categoryServiceImpl) Create(ctx context.Context, actor access.Actor, req *category.CreateCategoryReq) (*category.Category, error) {
	if err := access.Authorize(access.EntityCategory, access.OpCreate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	entity := &category.Category{
		ID:                  uuid.New(),
		CategoryName:        req.CategoryName,
		Slug:                req.Slug,
		CategoryDescription: req.CategoryDescription,
		CategoryImage:       req.CategoryImage,
		Status:              req.Status,
		DisplayOrder:        req.DisplayOrder,
		SEOTitle:            req.SEOTitle,
		SEODescription:      req.SEODescription,
	}
	if entity.Status == "" {
		entity.Status = category.StatusActive
	}

	if err := s.normalize(access.EntityCategory, entity, true); err != nil {
		return nil, err
	}

	if exists, err := s.repository.ExistsByName(ctx, entity.CategoryName, nil); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	} else if exists {
		return nil, category.ErrDuplicateName
	}
	if exists, err := s.repository.ExistsBySlug(ctx, entity.Slug, nil); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	} else if exists {
		return nil, category.ErrDuplicateSlug
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("category create failed", err)
		return nil, err
	}
	return created, nil
}

func (s *categoryServiceImpl) GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*category.Category, error) {
	if err := access.Authorize(access.EntityCategory, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *categoryServiceImpl) GetBySlug(ctx context.Context, actor access.Actor, slug string) (*category.Category, error) {
	if err := access.Authorize(access.EntityCategory, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetBySlug(ctx, slug)
}

func (s *categoryServiceImpl) GetAll(ctx context.Context, actor access.Actor, filter *category.CategoryFilter) (*category.CategoryListResp, error) {
	if err := access.Authorize(access.EntityCategory, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &category.CategoryFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	items, total, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return &category.CategoryListResp{Categories: items, Total: total}, nil
}

func (s *categoryServiceImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *category.UpdateCategoryReq) (*category.Category, error) {
	if err := access.Authorize(access.EntityCategory, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryName != nil {
		entity.CategoryName = *req.CategoryName
	}
	if req.Slug != nil {
		entity.Slug = *req.Slug
	}
	if req.CategoryDescription != nil {
		entity.CategoryDescription = req.CategoryDescription
	}
	if req.CategoryImage != nil {
		entity.CategoryImage = req.CategoryImage
	}
	if req.Status != nil {
		entity.Status = *req.Status
	}
	if req.DisplayOrder != nil {
		entity.DisplayOrder = *req.DisplayOrder
	}
	if req.SEOTitle != nil {
		entity.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		entity.SEODescription = *req.SEODescription
	}

	if err := s.normalize(access.EntityCategory, entity, false); err != nil {
		return nil, err
	}

	if exists, err := s.repository.ExistsByName(ctx, entity.CategoryName, &id); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	} else if exists {
		return nil, category.ErrDuplicateName
	}
	if exists, err := s.repository.ExistsBySlug(ctx, entity.Slug, &id); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	} else if exists {
		return nil, category.ErrDuplicateSlug
	}

	return s.repository.Update(ctx, entity)
}

func (s *categoryServiceImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if err := access.Authorize(access.EntityCategory, access.OpDelete, actor).Err(); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id)
}

// normalize runs the shared lifecycle rules against the entity and copies the
// derived fields back.
func (s *categoryServiceImpl) normalize(entity access.EntityType, c *category.Category, isCreate bool) error {
	short := ""
	if c.CategoryDescription != nil {
		short = *c.CategoryDescription
	}
	rec := &lifecycle.Record{
		Name:             c.CategoryName,
		Slug:             c.Slug,
		SEOTitle:         c.SEOTitle,
		SEODescription:   c.SEODescription,
		ShortDescription: short,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
	if err := lifecycle.Normalize(entity, rec, isCreate, time.Now().UTC()); err != nil {
		return err
	}
	c.Slug = rec.Slug
	c.SEOTitle = rec.SEOTitle
	c.SEODescription = rec.SEODescription
	c.CreatedAt = rec.CreatedAt
	c.UpdatedAt = rec.UpdatedAt
	return nil
}
