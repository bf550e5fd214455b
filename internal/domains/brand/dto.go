package brand

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type CreateBrandReq struct {
	BrandName        string  `json:"brandName"`
	Slug             string  `json:"slug"`
	BrandDescription *string `json:"brandDescription"`
	ShortDescription *string `json:"shortDescription"`
	BrandLogo        *string `json:"brandLogo"`
	BrandWebsite     *string `json:"brandWebsite"`
	Heritage         *string `json:"heritage"`
	Featured         bool    `json:"featured"`
	Status           Status  `json:"status"`
	DisplayOrder     int     `json:"displayOrder"`
	SEOTitle         string  `json:"seoTitle"`
	SEODescription   string  `json:"seoDescription"`
}

func (r CreateBrandReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BrandName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Status, validation.In(StatusActive, StatusInactive)),
		validation.Field(&r.BrandWebsite, validation.By(validURLPtr)),
		validation.Field(&r.SEODescription, validation.Length(0, 160)),
	)
}

type UpdateBrandReq struct {
	BrandName        *string `json:"brandName"`
	Slug             *string `json:"slug"`
	BrandDescription *string `json:"brandDescription"`
	ShortDescription *string `json:"shortDescription"`
	BrandLogo        *string `json:"brandLogo"`
	BrandWebsite     *string `json:"brandWebsite"`
	Heritage         *string `json:"heritage"`
	Featured         *bool   `json:"featured"`
	Status           *Status `json:"status"`
	DisplayOrder     *int    `json:"displayOrder"`
	SEOTitle         *string `json:"seoTitle"`
	SEODescription   *string `json:"seoDescription"`
}

func (r UpdateBrandReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BrandName, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.BrandWebsite, validation.By(validURLPtr)),
	)
}

func validURLPtr(v interface{}) error {
	s, _ := v.(*string)
	if s == nil || *s == "" {
		return nil
	}
	return is.URL.Validate(*s)
}

type BrandFilter struct {
	Status   *Status
	Featured *bool
	Limit    int
	Offset   int
}

type BrandListResp struct {
	Brands []Brand `json:"brands"`
	Total  int64   `json:"total"`
}
