package brand

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

type Brand struct {
	ID               uuid.UUID `json:"id" db:"id"`
	BrandName        string    `json:"brandName" db:"brand_name"`
	Slug             string    `json:"slug" db:"slug"`
	BrandDescription *string   `json:"brandDescription,omitempty" db:"brand_description"`
	ShortDescription *string   `json:"shortDescription,omitempty" db:"short_description"`
	BrandLogo        *string   `json:"brandLogo,omitempty" db:"brand_logo"`
	BrandWebsite     *string   `json:"brandWebsite,omitempty" db:"brand_website"`
	Heritage         *string   `json:"heritage,omitempty" db:"heritage"`
	Featured         bool      `json:"featured" db:"featured"`
	Status           Status    `json:"status" db:"status"`
	DisplayOrder     int       `json:"displayOrder" db:"display_order"`
	SEOTitle         string    `json:"seoTitle" db:"seo_title"`
	SEODescription   string    `json:"seoDescription" db:"seo_description"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}
