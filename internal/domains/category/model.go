package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Category groups articles and may nest one level or more under a
// parent category. IsActive is tri-state like article status.
type Category struct {
	ID          int16  `json:"category_id" db:"category_id"`
	Name        string `json:"category_name" db:"category_name"`
	Description string `json:"category_description" db:"category_description"`
	ParentID    *int16 `json:"parent_category_id" db:"parent_category_id"`
	IsActive    *bool  `json:"is_active" db:"is_active"`
}

type CreateCategoryRequest struct {
	Name        string `json:"category_name"`
	Description string `json:"category_description"`
	ParentID    *int16 `json:"parent_category_id"`
	IsActive    *bool  `json:"is_active"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 250)),
	)
}

type UpdateCategoryRequest struct {
	Name        string `json:"category_name"`
	Description string `json:"category_description"`
	ParentID    *int16 `json:"parent_category_id"`
	IsActive    *bool  `json:"is_active"`
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Description, validation.Required, validation.Length(1, 250)),
	)
}
