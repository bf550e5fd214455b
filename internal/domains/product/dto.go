package product

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductReq struct {
	ProductName        string           `json:"productName"`
	Slug               string           `json:"slug"`
	CategoryID         uuid.UUID        `json:"productCategory"`
	BrandID            uuid.UUID        `json:"productBrand"`
	ProductPrice       decimal.Decimal  `json:"productPrice"`
	CompareAtPrice     *decimal.Decimal `json:"compareAtPrice"`
	SKUCode            string           `json:"skuCode"`
	StockQuantity      int              `json:"stockQuantity"`
	ProductImages      []string         `json:"productImages"`
	ProductDescription *string          `json:"productDescription"`
	ShortDescription   *string          `json:"shortDescription"`
	ProductSizes       *string          `json:"productSizes"`
	ProductColors      *string          `json:"productColors"`
	Material           *string          `json:"material"`
	Weight             *string          `json:"weight"`
	Dimensions         *string          `json:"dimensions"`
	Status             Status           `json:"status"`
	Featured           bool             `json:"featured"`
	Tags               []string         `json:"tags"`
	SEOTitle           string           `json:"seoTitle"`
	SEODescription     string           `json:"seoDescription"`
}

func (r CreateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductName, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.CategoryID, validation.Required, validation.By(nonNilUUID)),
		validation.Field(&r.BrandID, validation.Required, validation.By(nonNilUUID)),
		validation.Field(&r.ProductPrice, validation.By(nonNegativePrice)),
		validation.Field(&r.SKUCode, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.StockQuantity, validation.Min(0)),
		validation.Field(&r.Status, validation.In(StatusActive, StatusInactive, StatusDraft, StatusOutOfStock)),
		validation.Field(&r.SEODescription, validation.Length(0, 160)),
	)
}

type UpdateProductReq struct {
	ProductName        *string          `json:"productName"`
	Slug               *string          `json:"slug"`
	CategoryID         *uuid.UUID       `json:"productCategory"`
	BrandID            *uuid.UUID       `json:"productBrand"`
	ProductPrice       *decimal.Decimal `json:"productPrice"`
	CompareAtPrice     *decimal.Decimal `json:"compareAtPrice"`
	SKUCode            *string          `json:"skuCode"`
	StockQuantity      *int             `json:"stockQuantity"`
	ProductImages      []string         `json:"productImages"`
	ProductDescription *string          `json:"productDescription"`
	ShortDescription   *string          `json:"shortDescription"`
	ProductSizes       *string          `json:"productSizes"`
	ProductColors      *string          `json:"productColors"`
	Material           *string          `json:"material"`
	Weight             *string          `json:"weight"`
	Dimensions         *string          `json:"dimensions"`
	Status             *Status          `json:"status"`
	Featured           *bool            `json:"featured"`
	Tags               []string         `json:"tags"`
	SEOTitle           *string          `json:"seoTitle"`
	SEODescription     *string          `json:"seoDescription"`
}

func (r UpdateProductReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProductName, validation.NilOrNotEmpty, validation.Length(1, 500)),
		validation.Field(&r.SKUCode, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.ProductPrice, validation.By(nonNegativePricePtr)),
		validation.Field(&r.StockQuantity, validation.By(nonNegativeIntPtr)),
	)
}

func nonNilUUID(v interface{}) error {
	id, _ := v.(uuid.UUID)
	if id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}

func nonNegativePrice(v interface{}) error {
	price, _ := v.(decimal.Decimal)
	if price.IsNegative() {
		return validation.NewError("validation_min", "must be no less than 0")
	}
	return nil
}

func nonNegativePricePtr(v interface{}) error {
	price, _ := v.(*decimal.Decimal)
	if price == nil {
		return nil
	}
	return nonNegativePrice(*price)
}

func nonNegativeIntPtr(v interface{}) error {
	n, _ := v.(*int)
	if n != nil && *n < 0 {
		return validation.NewError("validation_min", "must be no less than 0")
	}
	return nil
}

type UpdateStockReq struct {
	StockQuantity int `json:"stockQuantity"`
}

func (r UpdateStockReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StockQuantity, validation.Min(0)),
	)
}

type ProductFilter struct {
	CategoryID *uuid.UUID
	BrandID    *uuid.UUID
	Status     *Status
	Featured   *bool
	Search     string
	Limit      int
	Offset     int
}

type ProductListResp struct {
	Products []Product `json:"products"`
	Total    int64     `json:"total"`
}
