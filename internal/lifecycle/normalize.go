// Package lifecycle normalizes content records immediately before they are
// persisted. Normalization is deterministic and idempotent: re-running it on
// an already-normalized record changes nothing.
package lifecycle

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"ralhum-backend/internal/access"
)

// ValidationError identifies the offending field of a rejected write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %q: %s", e.Field, e.Reason)
}

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify lowercases the name, replaces every run of characters outside
// [a-z0-9] with a single hyphen and strips leading/trailing hyphens. An
// all-symbol input yields "".
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// seoSuffixes holds the per-collection SEO title templates the site has
// always used. Entities not listed fall back to the plain suffix.
var seoSuffixes = map[access.EntityType]string{
	access.EntityProduct:  "%s | Ralhum Sports",
	access.EntityCategory: "%s Equipment | Ralhum Sports",
	access.EntityBrand:    "%s Sports Equipment | Ralhum Sports",
	access.EntityNews:     "%s | Ralhum Sports News",
}

func seoTitleFor(entity access.EntityType, name string) string {
	format, ok := seoSuffixes[entity]
	if !ok {
		format = "%s | Ralhum Sports"
	}
	return fmt.Sprintf(format, name)
}

const wordsPerMinute = 200

// ReadingTime estimates reading minutes as ceil(words/200), minimum 1 for
// any non-empty content.
func ReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

// Record is the normalization view of an entity. Domain services copy the
// relevant fields in, run Normalize and copy the results back; fields that do
// not apply to a given entity type stay zero.
type Record struct {
	Name             string // name-like field: productName/categoryName/brandName/postTitle/sectionName
	Slug             string
	SEOTitle         string
	SEODescription   string
	ShortDescription string // excerpt/short description used as the SEO description fallback
	Content          string // news body, drives reading time
	ReadingTime      int
	Status           string // news only
	PreviousStatus   string // news only; empty on create
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Normalize applies the derivation rules in their fixed order. Slug
// derivation with no usable name and an invalid status transition are fatal;
// every other rule applies a best-effort default and never blocks the write.
func Normalize(entity access.EntityType, rec *Record, isCreate bool, now time.Time) error {
	// 1. Slug derivation.
	if rec.Slug == "" {
		rec.Slug = Slugify(rec.Name)
	}
	if rec.Slug == "" {
		return &ValidationError{Field: "slug", Reason: "cannot derive slug: no usable name"}
	}

	// 2. SEO title fallback.
	if rec.SEOTitle == "" && rec.Name != "" {
		rec.SEOTitle = seoTitleFor(entity, rec.Name)
	}

	// 3. SEO description fallback: the short description verbatim, or nothing.
	if rec.SEODescription == "" && rec.ShortDescription != "" {
		rec.SEODescription = rec.ShortDescription
	}

	// 4. Reading time, recomputed on every write to content.
	if entity == access.EntityNews && rec.Content != "" {
		rec.ReadingTime = ReadingTime(rec.Content)
	}

	// 5. Timestamp stamping. createdAt is set once and never touched again.
	rec.UpdatedAt = now
	if isCreate {
		rec.CreatedAt = now
	}

	// 6. Status transition validation.
	if entity == access.EntityNews && !isCreate && rec.PreviousStatus != "" {
		if err := ValidateTransition(NewsStatus(rec.PreviousStatus), NewsStatus(rec.Status)); err != nil {
			return err
		}
	}
	return nil
}
