package lifecycle

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ralhum-backend/internal/access"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Cricket Bats", "cricket-bats"},
		{"punctuation", "Gray-Nicolls Bat!", "gray-nicolls-bat"},
		{"symbol runs collapse", "a   &&&   b", "a-b"},
		{"leading and trailing symbols", "--Hello World--", "hello-world"},
		{"digits kept", "GM Diamond 808", "gm-diamond-808"},
		{"all symbols", "!!!", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, in := range []string{"Gray-Nicolls Bat!", "Cricket Bats", "a b c", "ỹ-weird ünicode"} {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestNormalizeDerivesSlug(t *testing.T) {
	rec := &Record{Name: "Test Bat"}
	err := Normalize(access.EntityProduct, rec, true, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "test-bat", rec.Slug)
}

func TestNormalizeKeepsExplicitSlug(t *testing.T) {
	rec := &Record{Name: "Test Bat", Slug: "custom-slug"}
	require.NoError(t, Normalize(access.EntityProduct, rec, true, time.Now()))
	assert.Equal(t, "custom-slug", rec.Slug)
}

func TestNormalizeFailsWithoutUsableName(t *testing.T) {
	rec := &Record{Name: "!!!"}
	err := Normalize(access.EntityProduct, rec, true, time.Now())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "slug", verr.Field)
}

func TestNormalizeSEOTitleFallback(t *testing.T) {
	tests := []struct {
		entity access.EntityType
		name   string
		want   string
	}{
		{access.EntityProduct, "Test Bat", "Test Bat | Ralhum Sports"},
		{access.EntityCategory, "Cricket", "Cricket Equipment | Ralhum Sports"},
		{access.EntityBrand, "Gray-Nicolls", "Gray-Nicolls Sports Equipment | Ralhum Sports"},
		{access.EntityNews, "Season Opener", "Season Opener | Ralhum Sports News"},
		{access.EntityCompanyInfo, "About Us", "About Us | Ralhum Sports"},
	}
	for _, tt := range tests {
		rec := &Record{Name: tt.name}
		require.NoError(t, Normalize(tt.entity, rec, true, time.Now()))
		assert.Equal(t, tt.want, rec.SEOTitle)
	}
}

func TestNormalizeSEOTitleNotOverwritten(t *testing.T) {
	rec := &Record{Name: "Test Bat", SEOTitle: "Handwritten Title"}
	require.NoError(t, Normalize(access.EntityProduct, rec, true, time.Now()))
	assert.Equal(t, "Handwritten Title", rec.SEOTitle)
}

func TestNormalizeSEODescriptionFallback(t *testing.T) {
	rec := &Record{Name: "Test Bat", ShortDescription: "A fine bat."}
	require.NoError(t, Normalize(access.EntityProduct, rec, true, time.Now()))
	assert.Equal(t, "A fine bat.", rec.SEODescription)

	// No short description: stays empty, no further derivation.
	rec = &Record{Name: "Test Bat"}
	require.NoError(t, Normalize(access.EntityProduct, rec, true, time.Now()))
	assert.Empty(t, rec.SEODescription)
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 1, ReadingTime("word"))
	assert.Equal(t, 1, ReadingTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadingTime(strings.Repeat("word ", 400)))
	assert.Equal(t, 3, ReadingTime(strings.Repeat("word ", 401)))
	assert.Equal(t, 0, ReadingTime(""))
}

func TestNormalizeReadingTimeRecomputed(t *testing.T) {
	rec := &Record{
		Name:        "Season Opener",
		Content:     strings.Repeat("word ", 400),
		ReadingTime: 99,
		Status:      "draft",
	}
	require.NoError(t, Normalize(access.EntityNews, rec, true, time.Now()))
	assert.Equal(t, 2, rec.ReadingTime)
}

func TestNormalizeTimestamps(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(48 * time.Hour)

	rec := &Record{Name: "Test Bat"}
	require.NoError(t, Normalize(access.EntityProduct, rec, true, created))
	assert.Equal(t, created, rec.CreatedAt)
	assert.Equal(t, created, rec.UpdatedAt)

	rec.Name = "Test Bat v2"
	require.NoError(t, Normalize(access.EntityProduct, rec, false, updated))
	assert.Equal(t, created, rec.CreatedAt, "createdAt never changes after creation")
	assert.Equal(t, updated, rec.UpdatedAt)
}

func TestNormalizeIdempotent(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := &Record{Name: "Test Bat", ShortDescription: "A fine bat."}
	require.NoError(t, Normalize(access.EntityProduct, rec, true, now))
	snapshot := *rec
	require.NoError(t, Normalize(access.EntityProduct, rec, false, now))
	assert.Equal(t, snapshot, *rec)
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		from, to NewsStatus
		ok       bool
	}{
		{StatusDraft, StatusPublished, true},
		{StatusDraft, StatusArchived, true},
		{StatusPublished, StatusArchived, true},
		{StatusPublished, StatusDraft, false},
		{StatusArchived, StatusDraft, false},
		{StatusArchived, StatusPublished, false},
		{StatusDraft, StatusDraft, true},
		{StatusPublished, StatusPublished, true},
		{StatusArchived, StatusArchived, true},
	}
	for _, tt := range tests {
		err := ValidateTransition(tt.from, tt.to)
		if tt.ok {
			assert.NoErrorf(t, err, "%s -> %s", tt.from, tt.to)
		} else {
			var verr *ValidationError
			require.ErrorAsf(t, err, &verr, "%s -> %s", tt.from, tt.to)
			assert.Equal(t, "status", verr.Field)
		}
	}
}

func TestNormalizeRejectsInvalidNewsTransition(t *testing.T) {
	rec := &Record{
		Name:           "Season Opener",
		Slug:           "season-opener",
		Status:         "draft",
		PreviousStatus: "published",
	}
	err := Normalize(access.EntityNews, rec, false, time.Now())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
