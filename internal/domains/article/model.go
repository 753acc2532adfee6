package article

import (
	"time"

	"news-backend/internal/domains/tag"
)

// IDPrefix starts every generated article id.
const IDPrefix = "NEWS"

// Article is a news item. Status is tri-state: nil means draft,
// false inactive, true published.
type Article struct {
	ID          string     `db:"news_article_id"`
	Title       string     `db:"news_title"`
	Headline    string     `db:"headline"`
	Content     *string    `db:"news_content"`
	Source      *string    `db:"news_source"`
	CategoryID  *int16     `db:"category_id"`
	Status      *bool      `db:"news_status"`
	CreatedAt   time.Time  `db:"created_date"`
	ModifiedAt  *time.Time `db:"modified_date"`
	CreatedByID int16      `db:"created_by_id"`
	UpdatedByID *int16     `db:"updated_by_id"`

	// Hydrated on read, never written back
	CategoryName  *string   `db:"category_name"`
	AuthorName    string    `db:"author_name"`
	UpdatedByName *string   `db:"updated_by_name"`
	Tags          []tag.Tag `db:"-"`
}

// IsPublished reports whether the article is visible to anonymous readers.
func (a *Article) IsPublished() bool {
	return a.Status != nil && *a.Status
}

// TagIDs returns the ids of the attached tags, in attachment order.
func (a *Article) TagIDs() []int {
	ids := make([]int, 0, len(a.Tags))
	for _, t := range a.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// GenerateID derives a new article id from the creation instant,
// NEWS followed by a second-resolution timestamp. Two creations in
// the same second collide and surface as a duplicate-id conflict.
func GenerateID(now time.Time) string {
	return IDPrefix + now.Format("20060102150405")
}
