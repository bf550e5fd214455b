package media

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UploadMediaReq carries the multipart form fields accompanying the file.
type UploadMediaReq struct {
	Filename string        `json:"filename"`
	Alt      string        `json:"alt"`
	Caption  *string       `json:"caption"`
	Category MediaCategory `json:"category"`
	Data     []byte        `json:"-"`
	MimeType string        `json:"-"`
}

func (r UploadMediaReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Filename, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Alt, validation.Required.Error("alt text is required"), validation.Length(1, 500)),
		validation.Field(&r.Category, validation.By(validMediaCategory)),
		validation.Field(&r.Data, validation.Required.Error("file is required")),
	)
}

type UpdateMediaReq struct {
	Alt      *string        `json:"alt"`
	Caption  *string        `json:"caption"`
	Category *MediaCategory `json:"category"`
}

func (r UpdateMediaReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Alt, validation.NilOrNotEmpty.Error("alt text cannot be blank"), validation.Length(1, 500)),
		validation.Field(&r.Category, validation.By(validMediaCategoryPtr)),
	)
}

func validMediaCategory(v interface{}) error {
	c, _ := v.(MediaCategory)
	if c == "" {
		return nil // defaults to general
	}
	if !c.IsValid() {
		return validation.NewError("validation_in_invalid", "must be a valid value")
	}
	return nil
}

func validMediaCategoryPtr(v interface{}) error {
	c, _ := v.(*MediaCategory)
	if c == nil {
		return nil
	}
	return validMediaCategory(*c)
}

type MediaFilter struct {
	Category *MediaCategory
	Search   string
	Limit    int
	Offset   int
}

type MediaListResp struct {
	Media []Media `json:"media"`
	Total int64   `json:"total"`
}
