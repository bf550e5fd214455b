package product

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusDraft      Status = "draft"
	StatusOutOfStock Status = "out-of-stock"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusDraft, StatusOutOfStock:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Product is the catalog entity. Prices are stored in USD; the storefront
// converts for display. JSON names are the persisted field names consumers
// depend on.
type Product struct {
	ID                 uuid.UUID        `json:"id" db:"id"`
	ProductName        string           `json:"productName" db:"product_name"`
	Slug               string           `json:"slug" db:"slug"`
	CategoryID         uuid.UUID        `json:"productCategory" db:"category_id"`
	BrandID            uuid.UUID        `json:"productBrand" db:"brand_id"`
	ProductPrice       decimal.Decimal  `json:"productPrice" db:"product_price"`
	CompareAtPrice     *decimal.Decimal `json:"compareAtPrice,omitempty" db:"compare_at_price"`
	SKUCode            string           `json:"skuCode" db:"sku_code"`
	StockQuantity      int              `json:"stockQuantity" db:"stock_quantity"`
	ProductImages      pq.StringArray   `json:"productImages" db:"product_images"`
	ProductDescription *string          `json:"productDescription,omitempty" db:"product_description"`
	ShortDescription   *string          `json:"shortDescription,omitempty" db:"short_description"`
	ProductSizes       *string          `json:"productSizes,omitempty" db:"product_sizes"`
	ProductColors      *string          `json:"productColors,omitempty" db:"product_colors"`
	Material           *string          `json:"material,omitempty" db:"material"`
	Weight             *string          `json:"weight,omitempty" db:"weight"`
	Dimensions         *string          `json:"dimensions,omitempty" db:"dimensions"`
	Status             Status           `json:"status" db:"status"`
	Featured           bool             `json:"featured" db:"featured"`
	Tags               pq.StringArray   `json:"tags" db:"tags"`
	SEOTitle           string           `json:"seoTitle" db:"seo_title"`
	SEODescription     string           `json:"seoDescription" db:"seo_description"`
	CreatedAt          time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time        `json:"updatedAt" db:"updated_at"`
}
