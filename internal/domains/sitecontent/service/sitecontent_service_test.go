package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/sitecontent"
)

type fakeSiteRepo struct {
	sections map[uuid.UUID]*sitecontent.CompanyInfo
	homepage *sitecontent.HomepageContent
}

func newFakeSiteRepo() *fakeSiteRepo {
	return &fakeSiteRepo{sections: map[uuid.UUID]*sitecontent.CompanyInfo{}}
}

func (f *fakeSiteRepo) CreateSection(_ context.Context, c *sitecontent.CompanyInfo) (*sitecontent.CompanyInfo, error) {
	cp := *c
	f.sections[c.ID] = &cp
	return &cp, nil
}

func (f *fakeSiteRepo) GetSectionByID(_ context.Context, id uuid.UUID) (*sitecontent.CompanyInfo, error) {
	c, ok := f.sections[id]
	if !ok {
		return nil, sitecontent.ErrSectionNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeSiteRepo) GetSectionBySlug(_ context.Context, slug string) (*sitecontent.CompanyInfo, error) {
	for _, c := range f.sections {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, sitecontent.ErrSectionNotFound
}

func (f *fakeSiteRepo) GetAllSections(_ context.Context) ([]sitecontent.CompanyInfo, int64, error) {
	var out []sitecontent.CompanyInfo
	for _, c := range f.sections {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSiteRepo) UpdateSection(_ context.Context, c *sitecontent.CompanyInfo) (*sitecontent.CompanyInfo, error) {
	if _, ok := f.sections[c.ID]; !ok {
		return nil, sitecontent.ErrSectionNotFound
	}
	cp := *c
	f.sections[c.ID] = &cp
	return &cp, nil
}

func (f *fakeSiteRepo) DeleteSection(_ context.Context, id uuid.UUID) error {
	if _, ok := f.sections[id]; !ok {
		return sitecontent.ErrSectionNotFound
	}
	delete(f.sections, id)
	return nil
}

func (f *fakeSiteRepo) SectionExistsBySlug(_ context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	for _, c := range f.sections {
		if c.Slug == slug && (excludeID == nil || c.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSiteRepo) GetHomepage(_ context.Context) (*sitecontent.HomepageContent, error) {
	if f.homepage == nil {
		return nil, sitecontent.ErrHomepageNotFound
	}
	cp := *f.homepage
	return &cp, nil
}

func (f *fakeSiteRepo) SaveHomepage(_ context.Context, h *sitecontent.HomepageContent) (*sitecontent.HomepageContent, error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	cp := *h
	f.homepage = &cp
	return &cp, nil
}

func adminActor() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleAdmin}
}

func managerActor() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleProductManager}
}

func TestSectionCreate_AdminOnlyWithDerivedSlug(t *testing.T) {
	svc := NewSiteContentService(newFakeSiteRepo())
	ctx := context.Background()

	req := &sitecontent.CreateSectionReq{
		SectionName:    "About Ralhum Sports",
		SectionContent: "Seventy years of sporting heritage in Sri Lanka.",
	}

	_, err := svc.CreateSection(ctx, managerActor(), req)
	assert.ErrorIs(t, err, access.ErrForbidden)

	created, err := svc.CreateSection(ctx, adminActor(), req)
	require.NoError(t, err)
	assert.Equal(t, "about-ralhum-sports", created.Slug)
	assert.Equal(t, "About Ralhum Sports | Ralhum Sports", created.SEOTitle)
	assert.False(t, created.LastUpdated.IsZero())
}

func TestSectionUpdate_TouchesLastUpdated(t *testing.T) {
	svc := NewSiteContentService(newFakeSiteRepo())
	ctx := context.Background()
	admin := adminActor()

	created, err := svc.CreateSection(ctx, admin, &sitecontent.CreateSectionReq{
		SectionName:    "Contact",
		SectionContent: "Reach us at the Colombo office.",
	})
	require.NoError(t, err)

	content := "Updated office hours."
	updated, err := svc.UpdateSection(ctx, admin, created.ID, &sitecontent.UpdateSectionReq{
		SectionContent: &content,
	})
	require.NoError(t, err)
	assert.Equal(t, content, updated.SectionContent)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.LastUpdated.Before(created.LastUpdated))
}

func TestSectionRead_PublicAndWriteRestricted(t *testing.T) {
	svc := NewSiteContentService(newFakeSiteRepo())
	ctx := context.Background()

	created, err := svc.CreateSection(ctx, adminActor(), &sitecontent.CreateSectionReq{
		SectionName:    "Heritage",
		SectionContent: "Founded in 1949.",
	})
	require.NoError(t, err)

	got, err := svc.GetSectionBySlug(ctx, access.Anonymous(), created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	name := "Renamed"
	_, err = svc.UpdateSection(ctx, managerActor(), created.ID, &sitecontent.UpdateSectionReq{SectionName: &name})
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestHomepageSave_ValidatesBlockTypes(t *testing.T) {
	svc := NewSiteContentService(newFakeSiteRepo())
	ctx := context.Background()
	admin := adminActor()

	hero := json.RawMessage(`{"headline":"Play Your Best","image":"hero.jpg"}`)

	_, err := svc.SaveHomepage(ctx, admin, &sitecontent.SaveHomepageReq{
		Blocks: []sitecontent.Block{
			{ContentType: "mystery-widget", Enabled: true, Data: hero},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery-widget")

	saved, err := svc.SaveHomepage(ctx, admin, &sitecontent.SaveHomepageReq{
		Blocks: []sitecontent.Block{
			{ContentType: sitecontent.BlockHeroBanner, Enabled: true, Data: hero},
			{ContentType: sitecontent.BlockFeaturedProducts, Enabled: true, Data: json.RawMessage(`{"limit":8}`)},
		},
	})
	require.NoError(t, err)
	assert.Len(t, saved.Blocks, 2)
}

func TestHomepageSave_PreservesBlockOrderAndPayload(t *testing.T) {
	svc := NewSiteContentService(newFakeSiteRepo())
	ctx := context.Background()
	admin := adminActor()

	ordered := []sitecontent.Block{
		{ContentType: sitecontent.BlockAnnouncement, Enabled: true, Data: json.RawMessage(`{"text":"New Yonex stock"}`)},
		{ContentType: sitecontent.BlockBrandShowcase, Enabled: false, Data: json.RawMessage(`{"brands":["yonex","gray-nicolls"]}`)},
		{ContentType: sitecontent.BlockCTASection, Enabled: true, Data: json.RawMessage(`{"label":"Shop Now"}`)},
	}
	_, err := svc.SaveHomepage(ctx, admin, &sitecontent.SaveHomepageReq{Blocks: ordered})
	require.NoError(t, err)

	got, err := svc.GetHomepage(ctx, access.Anonymous())
	require.NoError(t, err)
	require.Len(t, got.Blocks, 3)
	for i, b := range ordered {
		assert.Equal(t, b.ContentType, got.Blocks[i].ContentType)
		assert.JSONEq(t, string(b.Data), string(got.Blocks[i].Data))
	}
}

func TestHomepageSave_NonAdminForbidden(t *testing.T) {
	svc := NewSiteContentService(newFakeSiteRepo())

	_, err := svc.SaveHomepage(context.Background(), managerActor(), &sitecontent.SaveHomepageReq{
		Blocks: []sitecontent.Block{
			{ContentType: sitecontent.BlockHeroBanner, Enabled: true, Data: json.RawMessage(`{}`)},
		},
	})
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestHomepageGet_EmptyReadsNotFound(t *testing.T) {
	svc := NewSiteContentService(newFakeSiteRepo())

	_, err := svc.GetHomepage(context.Background(), access.Anonymous())
	assert.ErrorIs(t, err, sitecontent.ErrHomepageNotFound)
}
