package tag

import "context"

// Service defines tag business logic
type Service interface {
	GetAll(ctx context.Context) ([]Tag, error)
	GetByID(ctx context.Context, id int) (*Tag, error)
	Search(ctx context.Context, term string) ([]Tag, error)
	Create(ctx context.Context, req CreateTagRequest) (*Tag, error)
	Update(ctx context.Context, id int, req UpdateTagRequest) (*Tag, error)

	// Delete rejects tags still referenced by articles with ErrTagInUse
	Delete(ctx context.Context, id int) error
}
