package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/product"
)

type fakeProductRepo struct {
	items map[uuid.UUID]*product.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{items: map[uuid.UUID]*product.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *product.Product) (*product.Product, error) {
	cp := *p
	f.items[p.ID] = &cp
	return &cp, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*product.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetBySlug(_ context.Context, slug string) (*product.Product, error) {
	for _, p := range f.items {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, product.ErrProductNotFound
}

func (f *fakeProductRepo) GetAll(_ context.Context, filter *product.ProductFilter) ([]product.Product, int64, error) {
	var out []product.Product
	for _, p := range f.items {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *product.Product) (*product.Product, error) {
	if _, ok := f.items[p.ID]; !ok {
		return nil, product.ErrProductNotFound
	}
	cp := *p
	f.items[p.ID] = &cp
	return &cp, nil
}

func (f *fakeProductRepo) UpdateStock(_ context.Context, id uuid.UUID, quantity int) (*product.Product, error) {
	p, ok := f.items[id]
	if !ok {
		return nil, product.ErrProductNotFound
	}
	p.StockQuantity = quantity
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return product.ErrProductNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeProductRepo) ExistsBySlug(_ context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	for _, p := range f.items {
		if p.Slug == slug && (excludeID == nil || p.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) ExistsBySKU(_ context.Context, sku string, excludeID *uuid.UUID) (bool, error) {
	for _, p := range f.items {
		if p.SKUCode == sku && (excludeID == nil || p.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

type fakeChecker struct {
	known map[uuid.UUID]bool
}

func (f *fakeChecker) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	return f.known[id], nil
}

func newService(t *testing.T) (product.ProductService, *fakeProductRepo, uuid.UUID, uuid.UUID) {
	t.Helper()
	repo := newFakeProductRepo()
	categoryID := uuid.New()
	brandID := uuid.New()
	categories := &fakeChecker{known: map[uuid.UUID]bool{categoryID: true}}
	brands := &fakeChecker{known: map[uuid.UUID]bool{brandID: true}}
	return NewProductService(repo, categories, brands), repo, categoryID, brandID
}

func manager() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleProductManager}
}

func admin() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleAdmin}
}

func createReq(categoryID, brandID uuid.UUID) *product.CreateProductReq {
	return &product.CreateProductReq{
		ProductName:   "Gray-Nicolls Legend Bat",
		CategoryID:    categoryID,
		BrandID:       brandID,
		ProductPrice:  decimal.NewFromInt(299),
		SKUCode:       "GN-LEG-001",
		StockQuantity: 10,
	}
}

func TestProductCreate_DerivesSlugAndSEO(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)

	created, err := svc.Create(context.Background(), manager(), createReq(categoryID, brandID))
	require.NoError(t, err)

	assert.Equal(t, "gray-nicolls-legend-bat", created.Slug)
	assert.Equal(t, "Gray-Nicolls Legend Bat | Ralhum Sports", created.SEOTitle)
	assert.Equal(t, product.StatusActive, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProductCreate_AnonymousForbidden(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)

	_, err := svc.Create(context.Background(), access.Anonymous(), createReq(categoryID, brandID))
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestProductCreate_UnknownCategoryRejected(t *testing.T) {
	svc, _, _, brandID := newService(t)

	req := createReq(uuid.New(), brandID)
	_, err := svc.Create(context.Background(), manager(), req)
	assert.ErrorIs(t, err, product.ErrCategoryNotFound)
}

func TestProductCreate_UnknownBrandRejected(t *testing.T) {
	svc, _, categoryID, _ := newService(t)

	req := createReq(categoryID, uuid.New())
	_, err := svc.Create(context.Background(), manager(), req)
	assert.ErrorIs(t, err, product.ErrBrandNotFound)
}

func TestProductCreate_DuplicateSKUConflict(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, manager(), createReq(categoryID, brandID))
	require.NoError(t, err)

	second := createReq(categoryID, brandID)
	second.ProductName = "Another Bat"
	_, err = svc.Create(ctx, manager(), second)
	assert.ErrorIs(t, err, product.ErrDuplicateSKU)
}

func TestProductUpdate_SlugRederivedFromNewName(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq(categoryID, brandID))
	require.NoError(t, err)

	name := "Kookaburra Kahuna Pro"
	empty := ""
	updated, err := svc.Update(ctx, manager(), created.ID, &product.UpdateProductReq{
		ProductName: &name,
		Slug:        &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, "kookaburra-kahuna-pro", updated.Slug)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestProductUpdateStock_LastWriteWins(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq(categoryID, brandID))
	require.NoError(t, err)

	for _, qty := range []int{50, 7, 120} {
		_, err = svc.UpdateStock(ctx, manager(), created.ID, &product.UpdateStockReq{StockQuantity: qty})
		require.NoError(t, err)
	}

	final, err := svc.GetByID(ctx, manager(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 120, final.StockQuantity)
}

func TestProductUpdateStock_NegativeRejected(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq(categoryID, brandID))
	require.NoError(t, err)

	_, err = svc.UpdateStock(ctx, manager(), created.ID, &product.UpdateStockReq{StockQuantity: -1})
	assert.Error(t, err)
}

func TestProductDelete_ManagerForbiddenAdminAllowed(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq(categoryID, brandID))
	require.NoError(t, err)

	err = svc.Delete(ctx, manager(), created.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	err = svc.Delete(ctx, admin(), created.ID)
	assert.NoError(t, err)
}

func TestProductRead_AnonymousAllowed(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq(categoryID, brandID))
	require.NoError(t, err)

	got, err := svc.GetBySlug(ctx, access.Anonymous(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestProductExport_RequiresStaff(t *testing.T) {
	svc, _, _, _ := newService(t)

	_, err := svc.ExportXLSX(context.Background(), access.Anonymous())
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestProductExport_ContainsCatalogRows(t *testing.T) {
	svc, _, categoryID, brandID := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, manager(), createReq(categoryID, brandID))
	require.NoError(t, err)

	data, err := svc.ExportXLSX(ctx, admin())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
