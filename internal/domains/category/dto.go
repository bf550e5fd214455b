package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCategoryReq struct {
	CategoryName        string  `json:"categoryName"`
	Slug                string  `json:"slug"`
	CategoryDescription *string `json:"categoryDescription"`
	CategoryImage       *string `json:"categoryImage"`
	Status              Status  `json:"status"`
	DisplayOrder        int     `json:"displayOrder"`
	SEOTitle            string  `json:"seoTitle"`
	SEODescription      string  `json:"seoDescription"`
}

func (r CreateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Status, validation.In(StatusActive, StatusInactive)),
		validation.Field(&r.SEODescription, validation.Length(0, 160)),
	)
}

type UpdateCategoryReq struct {
	CategoryName        *string `json:"categoryName"`
	Slug                *string `json:"slug"`
	CategoryDescription *string `json:"categoryDescription"`
	CategoryImage       *string `json:"categoryImage"`
	Status              *Status `json:"status"`
	DisplayOrder        *int    `json:"displayOrder"`
	SEOTitle            *string `json:"seoTitle"`
	SEODescription      *string `json:"seoDescription"`
}

func (r UpdateCategoryReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.CategoryName, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.Status, validation.By(validStatusPtr)),
	)
}

func validStatusPtr(v interface{}) error {
	s, _ := v.(*Status)
	if s == nil {
		return nil
	}
	return validation.In(StatusActive, StatusInactive).Validate(*s)
}

type CategoryFilter struct {
	Status *Status
	Limit  int
	Offset int
}

type CategoryListResp struct {
	Categories []Category `json:"categories"`
	Total      int64      `json:"total"`
}
