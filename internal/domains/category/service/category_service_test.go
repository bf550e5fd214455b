package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/category"
)

type fakeCategoryRepo struct {
	items map[uuid.UUID]*category.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[uuid.UUID]*category.Category{}}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *category.Category) (*category.Category, error) {
	cp := *c
	f.items[c.ID] = &cp
	return &cp, nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id uuid.UUID) (*category.Category, error) {
	c, ok := f.items[id]
	if !ok {
		return nil, category.ErrCategoryNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCategoryRepo) GetBySlug(_ context.Context, slug string) (*category.Category, error) {
	for _, c := range f.items {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, category.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) GetAll(_ context.Context, _ *category.CategoryFilter) ([]category.Category, int64, error) {
	var out []category.Category
	for _, c := range f.items {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, c *category.Category) (*category.Category, error) {
	if _, ok := f.items[c.ID]; !ok {
		return nil, category.ErrCategoryNotFound
	}
	cp := *c
	f.items[c.ID] = &cp
	return &cp, nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return category.ErrCategoryNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCategoryRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := f.items[id]
	return ok, nil
}

func (f *fakeCategoryRepo) ExistsBySlug(_ context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	for _, c := range f.items {
		if c.Slug == slug && (excludeID == nil || c.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) ExistsByName(_ context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	for _, c := range f.items {
		if c.CategoryName == name && (excludeID == nil || c.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func manager() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleProductManager}
}

func TestCategoryCreate_DerivesSlugAndSEOTemplate(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	created, err := svc.Create(context.Background(), manager(), &category.CreateCategoryReq{
		CategoryName: "Cricket & Field Hockey",
	})
	require.NoError(t, err)
	assert.Equal(t, "cricket-field-hockey", created.Slug)
	assert.Equal(t, "Cricket & Field Hockey Equipment | Ralhum Sports", created.SEOTitle)
}

func TestCategoryCreate_DuplicateNameConflict(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, manager(), &category.CreateCategoryReq{CategoryName: "Badminton"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, manager(), &category.CreateCategoryReq{CategoryName: "Badminton"})
	assert.ErrorIs(t, err, category.ErrDuplicateName)
}

func TestCategoryCreate_SymbolOnlyNameRejected(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), manager(), &category.CreateCategoryReq{CategoryName: "!!!"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug")
}

func TestCategoryWrite_AnonymousForbidden(t *testing.T) {
	svc := NewCategoryService(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), access.Anonymous(), &category.CreateCategoryReq{CategoryName: "Tennis"})
	assert.ErrorIs(t, err, access.ErrForbidden)
}
