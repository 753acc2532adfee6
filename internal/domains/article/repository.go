package article

import "context"

// Repository defines article data access. Read methods return
// articles hydrated with category name, author names and tags.
type Repository interface {
	// GetByID returns ErrArticleNotFound when the id does not resolve
	GetByID(ctx context.Context, id string) (*Article, error)

	// Search applies the filter predicates and orders by creation
	// date, newest first. An empty filter returns everything.
	Search(ctx context.Context, filter SearchFilter) ([]Article, error)

	// ListByAuthor returns the author's articles regardless of status,
	// newest first
	ListByAuthor(ctx context.Context, authorID int16) ([]Article, error)

	// ListByCategory returns the category's published articles,
	// newest first
	ListByCategory(ctx context.Context, categoryID int16) ([]Article, error)

	// CreateWithTags inserts the article and attaches the tag set in
	// one transaction. Tag ids that do not exist are dropped silently.
	// A colliding article id surfaces as ErrArticleIDExists.
	CreateWithTags(ctx context.Context, a *Article, tagIDs []int) error

	// UpdateWithTags rewrites the article row and reconciles its tag
	// set to exactly tagIDs in one transaction. The existing links are
	// cleared first so removed tags detach. Returns ErrArticleNotFound
	// when the id does not resolve.
	UpdateWithTags(ctx context.Context, a *Article, tagIDs []int) error

	// Delete removes the article and its tag links. The bool reports
	// whether a row existed.
	Delete(ctx context.Context, id string) (bool, error)

	// FindPublishedByCategory returns published articles sharing the
	// category, excluding excludeID, newest first, at most limit rows.
	// A nil categoryID matches articles with no category.
	FindPublishedByCategory(ctx context.Context, categoryID *int16, excludeID string, limit int) ([]Article, error)

	// FindPublishedByTags returns published articles carrying at least
	// one of the tags, excluding excludeID, newest first, at most
	// limit rows.
	FindPublishedByTags(ctx context.Context, tagIDs []int, excludeID string, limit int) ([]Article, error)

	// CategoryExists reports whether the category id resolves
	CategoryExists(ctx context.Context, categoryID int16) (bool, error)
}
