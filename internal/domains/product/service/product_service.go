package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/product"
	"ralhum-backend/internal/lifecycle"
	"ralhum-backend/pkg/logger"
)

// ReferenceChecker verifies that a referenced entity (category, brand)
// exists. Both catalog repositories satisfy it.
type ReferenceChecker interface {
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type productServiceImpl struct {
	repository product.ProductRepository
	categories ReferenceChecker
	brands     ReferenceChecker
}

func NewProductService(repo product.ProductRepository, categories, brands ReferenceChecker) product.ProductService {
	return &productServiceImpl{
		repository: repo,
		categories: categories,
		brands:     brands,
	}
}

func (s *productServiceImpl) Create(ctx context.Context, actor access.Actor, req *product.CreateProductReq) (*product.Product, error) {
	if err := access.Authorize(access.EntityProduct, access.OpCreate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	entity := &product.Product{
		ID:                 uuid.New(),
		ProductName:        req.ProductName,
		Slug:               req.Slug,
		CategoryID:         req.CategoryID,
		BrandID:            req.BrandID,
		ProductPrice:       req.ProductPrice,
		CompareAtPrice:     req.CompareAtPrice,
		SKUCode:            req.SKUCode,
		StockQuantity:      req.StockQuantity,
		ProductImages:      req.ProductImages,
		ProductDescription: req.ProductDescription,
		ShortDescription:   req.ShortDescription,
		ProductSizes:       req.ProductSizes,
		ProductColors:      req.ProductColors,
		Material:           req.Material,
		Weight:             req.Weight,
		Dimensions:         req.Dimensions,
		Status:             req.Status,
		Featured:           req.Featured,
		Tags:               req.Tags,
		SEOTitle:           req.SEOTitle,
		SEODescription:     req.SEODescription,
	}
	if entity.Status == "" {
		entity.Status = product.StatusActive
	}

	if err := s.normalize(entity, true); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, entity.CategoryID, entity.BrandID); err != nil {
		return nil, err
	}

	if exists, err := s.repository.ExistsBySKU(ctx, entity.SKUCode, nil); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	} else if exists {
		return nil, product.ErrDuplicateSKU
	}
	if exists, err := s.repository.ExistsBySlug(ctx, entity.Slug, nil); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	} else if exists {
		return nil, product.ErrDuplicateSlug
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("product create failed", err)
		return nil, err
	}
	return created, nil
}

func (s *productServiceImpl) GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*product.Product, error) {
	if err := access.Authorize(access.EntityProduct, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *productServiceImpl) GetBySlug(ctx context.Context, actor access.Actor, slug string) (*product.Product, error) {
	if err := access.Authorize(access.EntityProduct, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetBySlug(ctx, slug)
}

func (s *productServiceImpl) GetAll(ctx context.Context, actor access.Actor, filter *product.ProductFilter) (*product.ProductListResp, error) {
	if err := access.Authorize(access.EntityProduct, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &product.ProductFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	items, total, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return &product.ProductListResp{Products: items, Total: total}, nil
}

func (s *productServiceImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *product.UpdateProductReq) (*product.Product, error) {
	if err := access.Authorize(access.EntityProduct, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProductName != nil {
		entity.ProductName = *req.ProductName
	}
	if req.Slug != nil {
		entity.Slug = *req.Slug
	}
	if req.CategoryID != nil {
		entity.CategoryID = *req.CategoryID
	}
	if req.BrandID != nil {
		entity.BrandID = *req.BrandID
	}
	if req.ProductPrice != nil {
		entity.ProductPrice = *req.ProductPrice
	}
	if req.CompareAtPrice != nil {
		entity.CompareAtPrice = req.CompareAtPrice
	}
	if req.SKUCode != nil {
		entity.SKUCode = *req.SKUCode
	}
	if req.StockQuantity != nil {
		entity.StockQuantity = *req.StockQuantity
	}
	if req.ProductImages != nil {
		entity.ProductImages = req.ProductImages
	}
	if req.ProductDescription != nil {
		entity.ProductDescription = req.ProductDescription
	}
	if req.ShortDescription != nil {
		entity.ShortDescription = req.ShortDescription
	}
	if req.ProductSizes != nil {
		entity.ProductSizes = req.ProductSizes
	}
	if req.ProductColors != nil {
		entity.ProductColors = req.ProductColors
	}
	if req.Material != nil {
		entity.Material = req.Material
	}
	if req.Weight != nil {
		entity.Weight = req.Weight
	}
	if req.Dimensions != nil {
		entity.Dimensions = req.Dimensions
	}
	if req.Status != nil {
		entity.Status = *req.Status
	}
	if req.Featured != nil {
		entity.Featured = *req.Featured
	}
	if req.Tags != nil {
		entity.Tags = req.Tags
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
	if err := s.checkReferences(ctx, entity.CategoryID, entity.BrandID); err != nil {
		return nil, err
	}

	if exists, err := s.repository.ExistsBySKU(ctx, entity.SKUCode, &id); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	} else if exists {
		return nil, product.ErrDuplicateSKU
	}
	if exists, err := s.repository.ExistsBySlug(ctx, entity.Slug, &id); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	} else if exists {
		return nil, product.ErrDuplicateSlug
	}

	// Last write wins: no version check, the update simply overwrites.
	return s.repository.Update(ctx, entity)
}

func (s *productServiceImpl) UpdateStock(ctx context.Context, actor access.Actor, id uuid.UUID, req *product.UpdateStockReq) (*product.Product, error) {
	if err := access.Authorize(access.EntityProduct, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update stock: %w", err)
	}
	return s.repository.UpdateStock(ctx, id, req.StockQuantity)
}

func (s *productServiceImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if err := access.Authorize(access.EntityProduct, access.OpDelete, actor).Err(); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id)
}

func (s *productServiceImpl) checkReferences(ctx context.Context, categoryID, brandID uuid.UUID) error {
	if exists, err := s.categories.ExistsByID(ctx, categoryID); err != nil {
		return fmt.Errorf("check category reference: %w", err)
	} else if !exists {
		return product.ErrCategoryNotFound
	}
	if exists, err := s.brands.ExistsByID(ctx, brandID); err != nil {
		return fmt.Errorf("check brand reference: %w", err)
	} else if !exists {
		return product.ErrBrandNotFound
	}
	return nil
}

func (s *productServiceImpl) normalize(p *product.Product, isCreate bool) error {
	short := ""
	if p.ShortDescription != nil {
		short = *p.ShortDescription
	}
	rec := &lifecycle.Record{
		Name:             p.ProductName,
		Slug:             p.Slug,
		SEOTitle:         p.SEOTitle,
		SEODescription:   p.SEODescription,
		ShortDescription: short,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
	if err := lifecycle.Normalize(access.EntityProduct, rec, isCreate, time.Now().UTC()); err != nil {
		return err
	}
	p.Slug = rec.Slug
	p.SEOTitle = rec.SEOTitle
	p.SEODescription = rec.SEODescription
	p.CreatedAt = rec.CreatedAt
	p.UpdatedAt = rec.UpdatedAt
	return nil
}
