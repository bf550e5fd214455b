package sitecontent

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CompanyInfo is one editable section of the company pages (about, contact,
// terms and so on). Sections are keyed by slug derived from the section name.
type CompanyInfo struct {
	ID             uuid.UUID `json:"id"`
	SectionName    string    `json:"sectionName"`
	Slug           string    `json:"slug"`
	SectionContent string    `json:"sectionContent"`
	SEOTitle       string    `json:"seoTitle"`
	SEODescription string    `json:"seoDescription"`
	LastUpdated    time.Time `json:"lastUpdated"`
	CreatedAt      time.Time `json:"createdAt"`
}

// BlockType enumerates the homepage block kinds the storefront can render.
type BlockType string

const (
	BlockHeroBanner       BlockType = "hero-banner"
	BlockFeaturedProducts BlockType = "featured-products"
	BlockBrandShowcase    BlockType = "brand-showcase"
	BlockAnnouncement     BlockType = "announcement"
	BlockNewsHighlight    BlockType = "news-highlight"
	BlockTestimonials     BlockType = "testimonials"
	BlockCompanyStats     BlockType = "company-stats"
	BlockCTASection       BlockType = "cta-section"
	BlockAboutPreview     BlockType = "about-preview"
	BlockSportsCategories BlockType = "sports-categories"
)

var knownBlockTypes = map[BlockType]struct{}{
	BlockHeroBanner:       {},
	BlockFeaturedProducts: {},
	BlockBrandShowcase:    {},
	BlockAnnouncement:     {},
	BlockNewsHighlight:    {},
	BlockTestimonials:     {},
	BlockCompanyStats:     {},
	BlockCTASection:       {},
	BlockAboutPreview:     {},
	BlockSportsCategories: {},
}

func (b BlockType) IsValid() bool {
	_, ok := knownBlockTypes[b]
	return ok
}

// Block is one homepage section. The payload shape depends on the block
// type and is passed through to the storefront untouched.
type Block struct {
	ContentType BlockType       `json:"contentType"`
	Enabled     bool            `json:"enabled"`
	Data        json.RawMessage `json:"data"`
}

// HomepageContent is the single ordered document describing the homepage.
// There is exactly one row; saving replaces the whole block list.
type HomepageContent struct {
	ID        uuid.UUID `json:"id"`
	Blocks    []Block   `json:"blocks"`
	UpdatedAt time.Time `json:"updatedAt"`
}
