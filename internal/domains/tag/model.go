package tag

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Tag labels articles for cross-category discovery.
// The many-to-many link to articles lives in news_tags.
type Tag struct {
	ID   int     `json:"tag_id" db:"tag_id"`
	Name string  `json:"tag_name" db:"tag_name"`
	Note *string `json:"note,omitempty" db:"note"`
}

type CreateTagRequest struct {
	Name string  `json:"tag_name"`
	Note *string `json:"note"`
}

func (r CreateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.Note, validation.Length(0, 400)),
	)
}

// UpdateTagRequest updates only the supplied fields.
// A nil Name keeps the current name; a nil Note keeps the current note.
type UpdateTagRequest struct {
	Name *string `json:"tag_name"`
	Note *string `json:"note"`
}

func (r UpdateTagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.Note, validation.Length(0, 400)),
	)
}
