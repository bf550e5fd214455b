package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/media"
)

type fakeMediaRepo struct {
	items map[uuid.UUID]*media.Media
}

func newFakeMediaRepo() *fakeMediaRepo {
	return &fakeMediaRepo{items: map[uuid.UUID]*media.Media{}}
}

func (f *fakeMediaRepo) Create(_ context.Context, m *media.Media) (*media.Media, error) {
	cp := *m
	f.items[m.ID] = &cp
	return &cp, nil
}

func (f *fakeMediaRepo) GetByID(_ context.Context, id uuid.UUID) (*media.Media, error) {
	m, ok := f.items[id]
	if !ok {
		return nil, media.ErrMediaNotFound
	}
	cp := *m
	return &cp, nil
}

func (f *fakeMediaRepo) GetAll(_ context.Context, _ *media.MediaFilter) ([]media.Media, int64, error) {
	var out []media.Media
	for _, m := range f.items {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (f *fakeMediaRepo) Update(_ context.Context, m *media.Media) (*media.Media, error) {
	if _, ok := f.items[m.ID]; !ok {
		return nil, media.ErrMediaNotFound
	}
	cp := *m
	f.items[m.ID] = &cp
	return &cp, nil
}

func (f *fakeMediaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return media.ErrMediaNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeStore struct {
	objects map[string][]byte
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}}
}

func (f *fakeStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	f.objects[key] = data
	return "http://cdn.test/" + key, nil
}

func (f *fakeStore) Download(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.objects, key)
		f.deleted = append(f.deleted, key)
	}
	return nil
}

type fakeRenderer struct {
	invalid bool
}

func (f *fakeRenderer) ValidateImage(data []byte) error {
	if f.invalid {
		return errors.New("not an image")
	}
	return nil
}

func (f *fakeRenderer) ProcessImage(data []byte) (map[string][]byte, error) {
	return map[string][]byte{
		"thumbnail": data,
		"card":      data,
		"tablet":    data,
		"desktop":   data,
	}, nil
}

func manager() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleProductManager}
}

func admin() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleAdmin}
}

func uploadReq() *media.UploadMediaReq {
	return &media.UploadMediaReq{
		Filename: "bat.jpg",
		Alt:      "Gray-Nicolls bat on white background",
		Category: media.CategoryProducts,
		Data:     []byte{0xff, 0xd8, 0xff},
		MimeType: "image/jpeg",
	}
}

func TestMediaUpload_GeneratesAllVariants(t *testing.T) {
	store := newFakeStore()
	svc := NewMediaService(newFakeMediaRepo(), store, &fakeRenderer{})

	created, err := svc.Upload(context.Background(), manager(), uploadReq())
	require.NoError(t, err)

	assert.Len(t, created.Variants, 4)
	for _, name := range []string{"thumbnail", "card", "tablet", "desktop"} {
		assert.Contains(t, created.Variants, name)
	}
	// original plus four variants in the store
	assert.Len(t, store.objects, 5)
	assert.Equal(t, int64(3), created.Filesize)
}

func TestMediaUpload_AltRequired(t *testing.T) {
	svc := NewMediaService(newFakeMediaRepo(), newFakeStore(), &fakeRenderer{})

	req := uploadReq()
	req.Alt = ""
	_, err := svc.Upload(context.Background(), manager(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "alt")
}

func TestMediaUpload_RejectsNonImage(t *testing.T) {
	store := newFakeStore()
	svc := NewMediaService(newFakeMediaRepo(), store, &fakeRenderer{invalid: true})

	_, err := svc.Upload(context.Background(), manager(), uploadReq())
	assert.ErrorIs(t, err, media.ErrInvalidImage)
	assert.Empty(t, store.objects)
}

func TestMediaUpload_AnonymousForbidden(t *testing.T) {
	svc := NewMediaService(newFakeMediaRepo(), newFakeStore(), &fakeRenderer{})

	_, err := svc.Upload(context.Background(), access.Anonymous(), uploadReq())
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestMediaUpdate_BlankAltRejected(t *testing.T) {
	svc := NewMediaService(newFakeMediaRepo(), newFakeStore(), &fakeRenderer{})
	ctx := context.Background()

	created, err := svc.Upload(ctx, manager(), uploadReq())
	require.NoError(t, err)

	blank := ""
	_, err = svc.Update(ctx, manager(), created.ID, &media.UpdateMediaReq{Alt: &blank})
	assert.Error(t, err)

	alt := "Updated alt text"
	updated, err := svc.Update(ctx, manager(), created.ID, &media.UpdateMediaReq{Alt: &alt})
	require.NoError(t, err)
	assert.Equal(t, alt, updated.Alt)
}

func TestMediaDelete_RemovesStoredObjects(t *testing.T) {
	store := newFakeStore()
	svc := NewMediaService(newFakeMediaRepo(), store, &fakeRenderer{})
	ctx := context.Background()

	created, err := svc.Upload(ctx, manager(), uploadReq())
	require.NoError(t, err)
	require.Len(t, store.objects, 5)

	err = svc.Delete(ctx, manager(), created.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	err = svc.Delete(ctx, admin(), created.ID)
	require.NoError(t, err)
	assert.Empty(t, store.objects)
}

func TestMediaRead_AnonymousAllowed(t *testing.T) {
	svc := NewMediaService(newFakeMediaRepo(), newFakeStore(), &fakeRenderer{})
	ctx := context.Background()

	created, err := svc.Upload(ctx, manager(), uploadReq())
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, access.Anonymous(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}
