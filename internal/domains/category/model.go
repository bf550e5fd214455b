package category

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func (s Status) String() string {
	return string(s)
}

// Category groups products by sport. JSON field names are the persisted
// names the storefront and admin UI read; do not rename them.
type Category struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	CategoryName        string    `json:"categoryName" db:"category_name"`
	Slug                string    `json:"slug" db:"slug"`
	CategoryDescription *string   `json:"categoryDescription,omitempty" db:"category_description"`
	CategoryImage       *string   `json:"categoryImage,omitempty" db:"category_image"`
	Status              Status    `json:"status" db:"status"`
	DisplayOrder        int       `json:"displayOrder" db:"display_order"`
	SEOTitle            string    `json:"seoTitle" db:"seo_title"`
	SEODescription      string    `json:"seoDescription" db:"seo_description"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}
