package sitecontent

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateSectionReq struct {
	SectionName    string `json:"sectionName"`
	Slug           string `json:"slug"`
	SectionContent string `json:"sectionContent"`
	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

func (r CreateSectionReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SectionName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.SectionContent, validation.Required),
		validation.Field(&r.SEODescription, validation.Length(0, 160)),
	)
}

type UpdateSectionReq struct {
	SectionName    *string `json:"sectionName"`
	Slug           *string `json:"slug"`
	SectionContent *string `json:"sectionContent"`
	SEOTitle       *string `json:"seoTitle"`
	SEODescription *string `json:"seoDescription"`
}

func (r UpdateSectionReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.SectionName, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.SectionContent, validation.NilOrNotEmpty),
	)
}

// SaveHomepageReq replaces the entire ordered block list in one write.
type SaveHomepageReq struct {
	Blocks []Block `json:"blocks"`
}

func (r SaveHomepageReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Blocks, validation.Required, validation.By(validBlocks)),
	)
}

func validBlocks(v interface{}) error {
	blocks, _ := v.([]Block)
	for i, b := range blocks {
		if !b.ContentType.IsValid() {
			return validation.NewError("validation_in_invalid",
				fmt.Sprintf("block %d has unknown content type %q", i, b.ContentType))
		}
	}
	return nil
}

type SectionListResp struct {
	Sections []CompanyInfo `json:"sections"`
	Total    int64         `json:"total"`
}
