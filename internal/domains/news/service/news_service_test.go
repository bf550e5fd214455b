package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ralhum-backend/internal/access"
	"ralhum-backend/internal/domains/news"
	"ralhum-backend/internal/lifecycle"
)

type fakeNewsRepo struct {
	items map[uuid.UUID]*news.News
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{items: map[uuid.UUID]*news.News{}}
}

func (f *fakeNewsRepo) Create(_ context.Context, n *news.News) (*news.News, error) {
	cp := *n
	f.items[n.ID] = &cp
	return &cp, nil
}

func (f *fakeNewsRepo) GetByID(_ context.Context, id uuid.UUID) (*news.News, error) {
	n, ok := f.items[id]
	if !ok {
		return nil, news.ErrNewsNotFound
	}
	cp := *n
	return &cp, nil
}

func (f *fakeNewsRepo) GetBySlug(_ context.Context, slug string) (*news.News, error) {
	for _, n := range f.items {
		if n.Slug == slug {
			cp := *n
			return &cp, nil
		}
	}
	return nil, news.ErrNewsNotFound
}

func (f *fakeNewsRepo) GetAll(_ context.Context, filter *news.NewsFilter) ([]news.News, int64, error) {
	var out []news.News
	for _, n := range f.items {
		if filter.Status != nil && n.Status != *filter.Status {
			continue
		}
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (f *fakeNewsRepo) Update(_ context.Context, n *news.News) (*news.News, error) {
	if _, ok := f.items[n.ID]; !ok {
		return nil, news.ErrNewsNotFound
	}
	cp := *n
	f.items[n.ID] = &cp
	return &cp, nil
}

func (f *fakeNewsRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.items[id]; !ok {
		return news.ErrNewsNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeNewsRepo) ExistsBySlug(_ context.Context, slug string, excludeID *uuid.UUID) (bool, error) {
	for _, n := range f.items {
		if n.Slug == slug && (excludeID == nil || n.ID != *excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func manager() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleProductManager}
}

func admin() access.Actor {
	return access.Actor{ID: uuid.New(), Role: access.RoleAdmin}
}

func createReq(title string) *news.CreateNewsReq {
	return &news.CreateNewsReq{
		PostTitle:   title,
		PostExcerpt: "A short summary of the announcement.",
		PostContent: strings.Repeat("word ", 450),
		Author:      "Ralhum Editorial",
	}
}

func TestNewsCreate_StartsAsDraftWithDerivedFields(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo())

	created, err := svc.Create(context.Background(), manager(), createReq("Yonex Dealer Announcement"))
	require.NoError(t, err)

	assert.Equal(t, lifecycle.StatusDraft, created.Status)
	assert.Equal(t, "yonex-dealer-announcement", created.Slug)
	assert.Equal(t, "Yonex Dealer Announcement | Ralhum Sports News", created.SEOTitle)
	assert.Equal(t, "A short summary of the announcement.", created.SEODescription)
	assert.Equal(t, 3, created.ReadingTime) // 450 words at 200 wpm
	assert.Nil(t, created.PublishDate)
}

func TestNewsPublish_StampsPublishDateOnce(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq("Grand Opening"))
	require.NoError(t, err)

	published, err := svc.Publish(ctx, manager(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, published.PublishDate)
	firstStamp := *published.PublishDate

	// Publishing an already-published post is a no-op transition.
	again, err := svc.Publish(ctx, manager(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, firstStamp, *again.PublishDate)
}

func TestNewsUpdate_PublishedBackToDraftRejected(t *testing.T) {
	repo := newFakeNewsRepo()
	svc := NewNewsService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq("Sale Week"))
	require.NoError(t, err)
	_, err = svc.Publish(ctx, manager(), created.ID)
	require.NoError(t, err)

	draft := lifecycle.StatusDraft
	_, err = svc.Update(ctx, manager(), created.ID, &news.UpdateNewsReq{Status: &draft})

	var verr *lifecycle.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "status", verr.Field)

	// The rejected write must not have touched the stored row.
	stored, err := svc.GetByID(ctx, manager(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusPublished, stored.Status)
}

func TestNewsArchive_IsTerminal(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq("Old Promo"))
	require.NoError(t, err)
	_, err = svc.Archive(ctx, manager(), created.ID)
	require.NoError(t, err)

	_, err = svc.Publish(ctx, manager(), created.ID)
	var verr *lifecycle.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestNewsList_AnonymousSeesOnlyPublished(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo())
	ctx := context.Background()

	draft, err := svc.Create(ctx, manager(), createReq("Draft Post"))
	require.NoError(t, err)
	published, err := svc.Create(ctx, manager(), createReq("Published Post"))
	require.NoError(t, err)
	_, err = svc.Publish(ctx, manager(), published.ID)
	require.NoError(t, err)
	archived, err := svc.Create(ctx, manager(), createReq("Archived Post"))
	require.NoError(t, err)
	_, err = svc.Archive(ctx, manager(), archived.ID)
	require.NoError(t, err)

	anon, err := svc.GetAll(ctx, access.Anonymous(), nil)
	require.NoError(t, err)
	require.Len(t, anon.Posts, 1)
	assert.Equal(t, published.ID, anon.Posts[0].ID)

	staff, err := svc.GetAll(ctx, manager(), nil)
	require.NoError(t, err)
	assert.Len(t, staff.Posts, 3)

	// Status filters from anonymous callers cannot widen the scope.
	draftStatus := lifecycle.StatusDraft
	filtered, err := svc.GetAll(ctx, access.Anonymous(), &news.NewsFilter{Status: &draftStatus})
	require.NoError(t, err)
	assert.Empty(t, filtered.Posts)

	_, err = svc.GetByID(ctx, access.Anonymous(), draft.ID)
	assert.ErrorIs(t, err, news.ErrNewsNotFound)
}

func TestNewsCreate_AnonymousForbidden(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo())

	_, err := svc.Create(context.Background(), access.Anonymous(), createReq("Nope"))
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestNewsDelete_AdminOnly(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq("Short Lived"))
	require.NoError(t, err)

	err = svc.Delete(ctx, manager(), created.ID)
	assert.ErrorIs(t, err, access.ErrForbidden)

	err = svc.Delete(ctx, admin(), created.ID)
	assert.NoError(t, err)
}

func TestNewsUpdate_ContentChangeRecomputesReadingTime(t *testing.T) {
	svc := NewNewsService(newFakeNewsRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, manager(), createReq("Long Read"))
	require.NoError(t, err)
	require.Equal(t, 3, created.ReadingTime)

	short := strings.Repeat("word ", 100)
	updated, err := svc.Update(ctx, manager(), created.ID, &news.UpdateNewsReq{PostContent: &short})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ReadingTime)
}
