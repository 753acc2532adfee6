package tag

import "context"

// Repository defines tag data access
type Repository interface {
	GetAll(ctx context.Context) ([]Tag, error)

	// GetByID returns ErrTagNotFound when the id does not resolve
	GetByID(ctx context.Context, id int) (*Tag, error)

	// Search matches name or note, case-insensitive contains.
	// An empty term returns all tags.
	Search(ctx context.Context, term string) ([]Tag, error)

	// Create assigns the next free id (max+1) and inserts
	Create(ctx context.Context, name string, note *string) (*Tag, error)

	Update(ctx context.Context, t *Tag) error

	// Delete removes the tag row; referenced tags are rejected in the service
	Delete(ctx context.Context, id int) error

	// ExistsByName checks name uniqueness case-insensitively,
	// ignoring the tag with excludeID (0 = no exclusion)
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)

	// IsTagUsed reports whether any article references the tag
	IsTagUsed(ctx context.Context, id int) (bool, error)
}
