package category

import "context"

// Service defines category business logic
type Service interface {
	GetAll(ctx context.Context) ([]Category, error)
	Search(ctx context.Context, term string) ([]Category, error)
	GetByID(ctx context.Context, id int16) (*Category, error)
	Create(ctx context.Context, req CreateCategoryRequest) (*Category, error)

	// Update rejects a parent change with ErrParentChangeInUse while
	// articles reference the category
	Update(ctx context.Context, id int16, req UpdateCategoryRequest) (*Category, error)

	// Delete rejects categories referenced by articles with
	// ErrCategoryInUse, and categories with children with the same
	Delete(ctx context.Context, id int16) error
}
