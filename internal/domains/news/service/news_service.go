package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/news"
	"ralhum-backend/internal/lifecycle"
	"ralhum-backend/pkg/logger"
)

type newsServiceImpl struct {
	repository news.NewsRepository
}

func NewNewsService(repo news.NewsRepository) news.NewsService {
	return &newsServiceImpl{repository: repo}
}

func (s *newsServiceImpl) Create(ctx context.Context, actor access.Actor, req *news.CreateNewsReq) (*news.News, error) {
	if err := access.Authorize(access.EntityNews, access.OpCreate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("create news post: %w", err)
	}

	// Every post starts as a draft regardless of what the request carries.
	entity := &news.News{
		ID:             uuid.New(),
		PostTitle:      req.PostTitle,
		Slug:           req.Slug,
		PostExcerpt:    req.PostExcerpt,
		PostContent:    req.PostContent,
		FeaturedImage:  req.FeaturedImage,
		Author:         req.Author,
		Categories:     req.Categories,
		Tags:           req.Tags,
		Featured:       req.Featured,
		Status:         lifecycle.StatusDraft,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
	}

	if err := s.normalize(entity, "", true); err != nil {
		return nil, err
	}
	if exists, err := s.repository.ExistsBySlug(ctx, entity.Slug, nil); err != nil {
		return nil, fmt.Errorf("create news post: %w", err)
	} else if exists {
		return nil, news.ErrDuplicateSlug
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		logger.Error("news create failed", err)
		return nil, err
	}
	return created, nil
}

func (s *newsServiceImpl) GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*news.News, error) {
	if err := access.Authorize(access.EntityNews, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.applyReadScope(actor, entity)
}

func (s *newsServiceImpl) GetBySlug(ctx context.Context, actor access.Actor, slug string) (*news.News, error) {
	if err := access.Authorize(access.EntityNews, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	entity, err := s.repository.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.applyReadScope(actor, entity)
}

func (s *newsServiceImpl) GetAll(ctx context.Context, actor access.Actor, filter *news.NewsFilter) (*news.NewsListResp, error) {
	if err := access.Authorize(access.EntityNews, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &news.NewsFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	// Non-staff readers only ever see published posts, whatever the filter asks.
	if scope := access.ReadScope(access.EntityNews, actor); !scope.Unrestricted() {
		published := lifecycle.NewsStatus(scope.Status)
		filter.Status = &published
	}

	items, total, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list news posts: %w", err)
	}
	return &news.NewsListResp{Posts: items, Total: total}, nil
}

func (s *newsServiceImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *news.UpdateNewsReq) (*news.News, error) {
	if err := access.Authorize(access.EntityNews, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update news post: %w", err)
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := entity.Status

	if req.PostTitle != nil {
		entity.PostTitle = *req.PostTitle
	}
	if req.Slug != nil {
		entity.Slug = *req.Slug
	}
	if req.PostExcerpt != nil {
		entity.PostExcerpt = *req.PostExcerpt
	}
	if req.PostContent != nil {
		entity.PostContent = *req.PostContent
	}
	if req.FeaturedImage != nil {
		entity.FeaturedImage = req.FeaturedImage
	}
	if req.Author != nil {
		entity.Author = *req.Author
	}
	if req.Categories != nil {
		entity.Categories = req.Categories
	}
	if req.Tags != nil {
		entity.Tags = req.Tags
	}
	if req.Featured != nil {
		entity.Featured = *req.Featured
	}
	if req.Status != nil {
		entity.Status = *req.Status
	}
	if req.SEOTitle != nil {
		entity.SEOTitle = *req.SEOTitle
	}
	if req.SEODescription != nil {
		entity.SEODescription = *req.SEODescription
	}

	return s.persistUpdate(ctx, actor, entity, previous, id)
}

// Publish moves a draft to published and stamps the publish date on the
// first transition only.
func (s *newsServiceImpl) Publish(ctx context.Context, actor access.Actor, id uuid.UUID) (*news.News, error) {
	if err := access.Authorize(access.EntityNews, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := entity.Status
	entity.Status = lifecycle.StatusPublished
	return s.persistUpdate(ctx, actor, entity, previous, id)
}

func (s *newsServiceImpl) Archive(ctx context.Context, actor access.Actor, id uuid.UUID) (*news.News, error) {
	if err := access.Authorize(access.EntityNews, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := entity.Status
	entity.Status = lifecycle.StatusArchived
	return s.persistUpdate(ctx, actor, entity, previous, id)
}

func (s *newsServiceImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if err := access.Authorize(access.EntityNews, access.OpDelete, actor).Err(); err != nil {
		return err
	}
	return s.repository.Delete(ctx, id)
}

func (s *newsServiceImpl) persistUpdate(ctx context.Context, actor access.Actor, entity *news.News, previous lifecycle.NewsStatus, id uuid.UUID) (*news.News, error) {
	if err := s.normalize(entity, previous, false); err != nil {
		return nil, err
	}
	if entity.Status == lifecycle.StatusPublished && entity.PublishDate == nil {
		now := time.Now().UTC()
		entity.PublishDate = &now
	}
	if exists, err := s.repository.ExistsBySlug(ctx, entity.Slug, &id); err != nil {
		return nil, fmt.Errorf("update news post: %w", err)
	} else if exists {
		return nil, news.ErrDuplicateSlug
	}
	return s.repository.Update(ctx, entity)
}

// applyReadScope hides non-published posts from non-staff readers. A scoped-out
// row reads as not found rather than forbidden, so drafts stay unguessable.
func (s *newsServiceImpl) applyReadScope(actor access.Actor, entity *news.News) (*news.News, error) {
	scope := access.ReadScope(access.EntityNews, actor)
	if scope.Unrestricted() {
		return entity, nil
	}
	if string(entity.Status) != scope.Status {
		return nil, news.ErrNewsNotFound
	}
	return entity, nil
}

func (s *newsServiceImpl) normalize(n *news.News, previous lifecycle.NewsStatus, isCreate bool) error {
	rec := &lifecycle.Record{
		Name:             n.PostTitle,
		Slug:             n.Slug,
		SEOTitle:         n.SEOTitle,
		SEODescription:   n.SEODescription,
		ShortDescription: n.PostExcerpt,
		Content:          n.PostContent,
		ReadingTime:      n.ReadingTime,
		Status:           string(n.Status),
		PreviousStatus:   string(previous),
		CreatedAt:        n.CreatedAt,
		UpdatedAt:        n.UpdatedAt,
	}
	if err := lifecycle.Normalize(access.EntityNews, rec, isCreate, time.Now().UTC()); err != nil {
		return err
	}
	n.Slug = rec.Slug
	n.SEOTitle = rec.SEOTitle
	n.SEODescription = rec.SEODescription
	n.ReadingTime = rec.ReadingTime
	n.CreatedAt = rec.CreatedAt
	n.UpdatedAt = rec.UpdatedAt
	return nil
}
