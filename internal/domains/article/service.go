package article

import "context"

// DefaultRelatedLimit bounds the related feed when the caller does
// not ask for a size.
const DefaultRelatedLimit = 3

// MaxRelatedLimit caps the related feed regardless of the request.
const MaxRelatedLimit = 20

// Service defines article business logic. Caller identity comes from
// the auth middleware; a zero callerID means an anonymous reader.
type Service interface {
	// GetByID enforces visibility: unpublished articles are only
	// readable by their author or an admin, everyone else gets
	// ErrArticleNotPublic.
	GetByID(ctx context.Context, id string, callerID int16, role int) (*ArticleResponse, error)

	// ListActive returns the published articles, newest first
	ListActive(ctx context.Context) ([]ArticleSummary, error)

	Search(ctx context.Context, filter SearchFilter) ([]ArticleSummary, error)

	ListMine(ctx context.Context, authorID int16) ([]ArticleSummary, error)

	// ListByCategory returns the category's published articles,
	// newest first
	ListByCategory(ctx context.Context, categoryID int16) ([]ArticleSummary, error)

	Create(ctx context.Context, req CreateArticleRequest, callerID int16) (*ArticleResponse, error)

	// Update replaces the whole record and reconciles the tag set.
	// Only the author or an admin may update, others get ErrNotOwner.
	Update(ctx context.Context, id string, req UpdateArticleRequest, callerID int16, role int) (*ArticleResponse, error)

	// Delete reports false when the article does not exist
	Delete(ctx context.Context, id string, callerID int16, role int) (bool, error)

	// Duplicate clones the article under a fresh id with the title
	// prefixed "Copy of ", unpublished, owned by the caller, carrying
	// the same tag set.
	Duplicate(ctx context.Context, id string, callerID int16) (*ArticleResponse, error)

	// FindRelated resolves up to limit published articles, same
	// category first, then shared tags to fill the remainder.
	FindRelated(ctx context.Context, id string, limit int) ([]ArticleSummary, error)
}
