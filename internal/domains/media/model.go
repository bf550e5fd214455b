package media

import (
	"time"

	"github.com/google/uuid"
)

// MediaCategory buckets uploads by what part of the site they serve.
type MediaCategory string

const (
	CategoryProducts MediaCategory = "products"
	CategoryBrands   MediaCategory = "brands"
	CategoryNews     MediaCategory = "news"
	CategoryCompany  MediaCategory = "company"
	CategoryGeneral  MediaCategory = "general"
)

func (c MediaCategory) IsValid() bool {
	switch c {
	case CategoryProducts, CategoryBrands, CategoryNews, CategoryCompany, CategoryGeneral:
		return true
	}
	return false
}

// VariantURL maps a generated size name (thumbnail, card, tablet, desktop)
// to its public URL.
type VariantURL map[string]string

// Media is an uploaded image plus the resized variants generated from it.
// Alt text is mandatory, the storefront never serves an image without it.
type Media struct {
	ID        uuid.UUID     `json:"id"`
	Filename  string        `json:"filename"`
	URL       string        `json:"url"`
	Alt       string        `json:"alt"`
	Caption   *string       `json:"caption"`
	Category  MediaCategory `json:"category"`
	Variants  VariantURL    `json:"variants"`
	MimeType  string        `json:"mimeType"`
	Filesize  int64         `json:"filesize"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
