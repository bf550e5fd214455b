package news

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"ralhum-backend/internal/lifecycle"
)

type CreateNewsReq struct {
	PostTitle      string   `json:"postTitle"`
	Slug           string   `json:"slug"`
	PostExcerpt    string   `json:"postExcerpt"`
	PostContent    string   `json:"postContent"`
	FeaturedImage  *string  `json:"featuredImage"`
	Author         string   `json:"author"`
	Categories     []string `json:"categories"`
	Tags           []string `json:"tags"`
	Featured       bool     `json:"featured"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
}

func (r CreateNewsReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostTitle, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.PostExcerpt, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.PostContent, validation.Required),
		validation.Field(&r.Author, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.SEODescription, validation.Length(0, 160)),
	)
}

type UpdateNewsReq struct {
	PostTitle      *string               `json:"postTitle"`
	Slug           *string               `json:"slug"`
	PostExcerpt    *string               `json:"postExcerpt"`
	PostContent    *string               `json:"postContent"`
	FeaturedImage  *string               `json:"featuredImage"`
	Author         *string               `json:"author"`
	Categories     []string              `json:"categories"`
	Tags           []string              `json:"tags"`
	Featured       *bool                 `json:"featured"`
	Status         *lifecycle.NewsStatus `json:"status"`
	SEOTitle       *string               `json:"seoTitle"`
	SEODescription *string               `json:"seoDescription"`
}

func (r UpdateNewsReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostTitle, validation.NilOrNotEmpty, validation.Length(1, 500)),
		validation.Field(&r.PostExcerpt, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.Author, validation.NilOrNotEmpty, validation.Length(1, 200)),
		validation.Field(&r.Status, validation.By(validNewsStatusPtr)),
	)
}

func validNewsStatusPtr(v interface{}) error {
	s, _ := v.(*lifecycle.NewsStatus)
	if s == nil {
		return nil
	}
	if !s.IsValid() {
		return validation.NewError("validation_in_invalid", "must be a valid value")
	}
	return nil
}

type NewsFilter struct {
	// Status restricts results; read scoping may force it to "published".
	Status   *lifecycle.NewsStatus
	Category string
	Featured *bool
	Search   string
	Limit    int
	Offset   int
}

type NewsListResp struct {
	Posts []News `json:"posts"`
	Total int64  `json:"total"`
}
