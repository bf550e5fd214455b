package service

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/media"
	"ralhum-backend/internal/infrastructure/storage"
	"ralhum-backend/pkg/logger"
)

// VariantRenderer turns an original upload into its resized variants.
// *storage.ImageProcessor satisfies it.
type VariantRenderer interface {
	ValidateImage(data []byte) error
	ProcessImage(data []byte) (map[string][]byte, error)
}

type mediaServiceImpl struct {
	repository media.MediaRepository
	store      storage.ObjectStorage
	renderer   VariantRenderer
}

func NewMediaService(repo media.MediaRepository, store storage.ObjectStorage, renderer VariantRenderer) media.MediaService {
	return &mediaServiceImpl{repository: repo, store: store, renderer: renderer}
}

func (s *mediaServiceImpl) Upload(ctx context.Context, actor access.Actor, req *media.UploadMediaReq) (*media.Media, error) {
	if err := access.Authorize(access.EntityMedia, access.OpCreate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}
	if err := s.renderer.ValidateImage(req.Data); err != nil {
		return nil, fmt.Errorf("%w: %s", media.ErrInvalidImage, err)
	}

	category := req.Category
	if category == "" {
		category = media.CategoryGeneral
	}

	id := uuid.New()
	key := objectKey(category, id, req.Filename)
	originalURL, err := s.store.Upload(ctx, key, req.Data, req.MimeType)
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}

	variants, err := s.renderer.ProcessImage(req.Data)
	if err != nil {
		return nil, fmt.Errorf("upload media: %w", err)
	}
	variantURLs := make(media.VariantURL, len(variants))
	var uploadedKeys []string
	for name, data := range variants {
		vkey := variantKey(key, name)
		url, err := s.store.Upload(ctx, vkey, data, "image/jpeg")
		if err != nil {
			// roll back what already landed so the bucket holds no orphans
			s.cleanup(ctx, append(uploadedKeys, key))
			return nil, fmt.Errorf("upload media variant %s: %w", name, err)
		}
		uploadedKeys = append(uploadedKeys, vkey)
		variantURLs[name] = url
	}

	now := time.Now().UTC()
	entity := &media.Media{
		ID:        id,
		Filename:  req.Filename,
		URL:       originalURL,
		Alt:       req.Alt,
		Caption:   req.Caption,
		Category:  category,
		Variants:  variantURLs,
		MimeType:  req.MimeType,
		Filesize:  int64(len(req.Data)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repository.Create(ctx, entity)
	if err != nil {
		s.cleanup(ctx, append(uploadedKeys, key))
		logger.Error("media create failed", err)
		return nil, err
	}
	return created, nil
}

func (s *mediaServiceImpl) GetByID(ctx context.Context, actor access.Actor, id uuid.UUID) (*media.Media, error) {
	if err := access.Authorize(access.EntityMedia, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	return s.repository.GetByID(ctx, id)
}

func (s *mediaServiceImpl) GetAll(ctx context.Context, actor access.Actor, filter *media.MediaFilter) (*media.MediaListResp, error) {
	if err := access.Authorize(access.EntityMedia, access.OpRead, actor).Err(); err != nil {
		return nil, err
	}
	if filter == nil {
		filter = &media.MediaFilter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	items, total, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return &media.MediaListResp{Media: items, Total: total}, nil
}

func (s *mediaServiceImpl) Update(ctx context.Context, actor access.Actor, id uuid.UUID, req *media.UpdateMediaReq) (*media.Media, error) {
	if err := access.Authorize(access.EntityMedia, access.OpUpdate, actor).Err(); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("update media: %w", err)
	}

	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Alt != nil {
		entity.Alt = *req.Alt
	}
	if req.Caption != nil {
		entity.Caption = req.Caption
	}
	if req.Category != nil {
		entity.Category = *req.Category
	}
	entity.UpdatedAt = time.Now().UTC()

	return s.repository.Update(ctx, entity)
}

func (s *mediaServiceImpl) Delete(ctx context.Context, actor access.Actor, id uuid.UUID) error {
	if err := access.Authorize(access.EntityMedia, access.OpDelete, actor).Err(); err != nil {
		return err
	}
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repository.Delete(ctx, id); err != nil {
		return err
	}

	key := objectKey(entity.Category, entity.ID, entity.Filename)
	keys := []string{key}
	for name := range entity.Variants {
		keys = append(keys, variantKey(key, name))
	}
	s.cleanup(ctx, keys)
	return nil
}

// cleanup is best-effort: a dangling object is a cost problem, not a
// correctness one.
func (s *mediaServiceImpl) cleanup(ctx context.Context, keys []string) {
	if err := s.store.Delete(ctx, keys...); err != nil {
		logger.Warn("media object cleanup failed", map[string]interface{}{"keys": keys})
	}
}

func objectKey(category media.MediaCategory, id uuid.UUID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", category, id, filename)
}

func variantKey(originalKey, variant string) string {
	ext := path.Ext(originalKey)
	base := strings.TrimSuffix(originalKey, ext)
	return fmt.Sprintf("%s-%s.jpg", base, variant)
}
