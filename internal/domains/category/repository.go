package category

import "context"

// Repository defines category data access
type Repository interface {
	GetAll(ctx context.Context) ([]Category, error)

	// Search matches the term against name and description
	Search(ctx context.Context, term string) ([]Category, error)

	// GetByID returns ErrCategoryNotFound when the id does not resolve
	GetByID(ctx context.Context, id int16) (*Category, error)

	// Create assigns the next free id (max+1) and inserts
	Create(ctx context.Context, c *Category) (*Category, error)

	Update(ctx context.Context, c *Category) error

	Delete(ctx context.Context, id int16) error

	Exists(ctx context.Context, id int16) (bool, error)

	// ExistsByName checks name uniqueness case-insensitively,
	// ignoring the category with excludeID (0 = no exclusion)
	ExistsByName(ctx context.Context, name string, excludeID int16) (bool, error)

	// IsCategoryUsed reports whether any article references the category
	IsCategoryUsed(ctx context.Context, id int16) (bool, error)

	// HasChildren reports whether other categories point at this one
	HasChildren(ctx context.Context, id int16) (bool, error)
}
