package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/brand"
	"ralhum-backend/internal/lifecycle"
	"ralhum-backend/pkg/logger"
)

type brandServiceImpl struct {
	repository brand.BrandRepository
}

func NewBrandService(repo brand.BrandRepository) brand.BrandService {
	return &brandServiceImpl{repository: repo}
}

func (s *brandServiceImpl) Create(ctx context.Context, actor access.Actor, req *brand.CreateBrandReq) (*brand.Brand, error) {
	if err := access.Authorize(access.EntityBrand, access.OpCreate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}

	entity := &brand.Brand{
		ID:               uuid.New(),
		BrandName:        req.BrandName,
		Slug:             req.Slug,
		BrandDescription: req.BrandDescription,
		ShortDescription: req.ShortDescription,
		BrandLogo:        req.BrandLogo,
		BrandWebsite:     req.BrandWebsite,
		Heritage:         req.Heritage,
		Featured:         req.Featured,
		Status:           req.Status,
		DisplayOrder:     req.DisplayOrder,
		SEOTitle:         req.SEOTitle,
		SEODescription:   req.SEODescription,
	}
	if entity.Status == "" {
		entity.Status = brand.StatusActive
	}

	if err := s.normalize(entity, true); err != nil {
		return nil, err
	}

	if exists, err := s.repository.ExistsByName(ctx, entity.BrandName, nil); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	} else if exists {
		return nil, brand.ErrDuplicateName
	}
	if exists, err := s.repository.ExistsBySlug(ctx, entity.Slug, nil); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	} else if exists {
		return nil, brand.ErrDuplicateSlug
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("brand create failed", err)
		return nil, err
	}
	return created, nil
}

func (s *brandServiceImpl) GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*brand.Brand, error) {
	if err := access.Authorize(access.EntityBrand, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *brandServiceImpl) GetBySlug(ctx context.Context, actor access.Actor, slug string) (*brand.Brand, error) {
	if err := access.Authorize(access.EntityBrand, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetBySlug(ctx, slug)
}

func (s *brandServiceImpl) GetAll(ctx context.Context, actor access.Actor, filter *brand.BrandFilter) (*brand.BrandListResp, error) {
	if err := access.Authorize(access.EntityBrand, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &brand.BrandFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	items, total, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	return &brand.BrandListResp{Brands: items, Total: total}, nil
}

func (s *brandServiceImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *brand.UpdateBrandReq) (*brand.Brand, error) {
	if err := access.Authorize(access.EntityBrand, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BrandName != nil {
		entity.BrandName = *req.BrandName
	}
	if req.Slug != nil {
		entity.Slug = *req.Slug
	}
	if req.BrandDescription != nil {
		entity.BrandDescription = req.BrandDescription
	}
	if req.ShortDescription != nil {
		entity.ShortDescription = req.ShortDescription
	}
	if req.BrandLogo != nil {
		entity.BrandLogo = req.BrandLogo
	}
	if req.BrandWebsite != nil {
		entity.BrandWebsite = req.BrandWebsite
	}
	if req.Heritage != nil {
		entity.Heritage = req.Heritage
	}
	if req.Featured != nil {
		entity.Featured = *req.Featured
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

	if err := s.normalize(entity, false); err != nil {
		return nil, err
	}

	if exists, err := s.repository.ExistsByName(ctx, entity.BrandName, &id); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	} else if exists {
		return nil, brand.ErrDuplicateName
	}
	if exists, err := s.repository.ExistsBySlug(ctx, entity.Slug, &id); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	} else if exists {
		return nil, brand.ErrDuplicateSlug
	}

	return s.repository.Update(ctx, entity)
}

func (s *brandServiceImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if err := access.Authorize(access.EntityBrand, access.OpDelete, actor).Err(); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id)
}

func (s *brandServiceImpl) normalize(b *brand.Brand, isCreate bool) error {
	short := ""
	if b.ShortDescription != nil {
		short = *b.ShortDescription
	}
	rec := &lifecycle.Record{
		Name:             b.BrandName,
		Slug:             b.Slug,
		SEOTitle:         b.SEOTitle,
		SEODescription:   b.SEODescription,
		ShortDescription: short,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
	if err := lifecycle.Normalize(access.EntityBrand, rec, isCreate, time.Now().UTC()); err != nil {
		return err
	}
	b.Slug = rec.Slug
	b.SEOTitle = rec.SEOTitle
	b.SEODescription = rec.SEODescription
	b.CreatedAt = rec.CreatedAt
	b.UpdatedAt = rec.UpdatedAt
	return nil
}
