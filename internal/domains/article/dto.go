package article

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"news-backend/internal/domains/tag"
)

type CreateArticleRequest struct {
	Title      string  `json:"news_title"`
	Headline   string  `json:"headline"`
	Content    *string `json:"news_content"`
	Source     *string `json:"news_source"`
	CategoryID *int16  `json:"category_id"`
	Status     *bool   `json:"news_status"`
	TagIDs     []int   `json:"tag_ids"`
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 400)),
		validation.Field(&r.Headline, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Source, validation.Length(0, 400)),
	)
}

// UpdateArticleRequest replaces the whole article record. The tag set
// is reconciled to exactly TagIDs; a nil slice detaches every tag.
type UpdateArticleRequest struct {
	Title      string  `json:"news_title"`
	Headline   string  `json:"headline"`
	Content    *string `json:"news_content"`
	Source     *string `json:"news_source"`
	CategoryID *int16  `json:"category_id"`
	Status     *bool   `json:"news_status"`
	TagIDs     []int   `json:"tag_ids"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 400)),
		validation.Field(&r.Headline, validation.Required, validation.Length(1, 150)),
		validation.Field(&r.Source, validation.Length(0, 400)),
	)
}

// SearchFilter carries the optional search predicates. Nil fields are
// skipped; the rest are ANDed together. Text predicates match as
// case-insensitive substrings.
type SearchFilter struct {
	Title        *string
	AuthorName   *string
	CategoryName *string
	Status       *bool
	CreatedFrom  *time.Time
	CreatedTo    *time.Time
}

// ArticleResponse is the full read projection.
type ArticleResponse struct {
	ID            string     `json:"news_article_id"`
	Title         string     `json:"news_title"`
	Headline      string     `json:"headline"`
	Content       *string    `json:"news_content"`
	Source        *string    `json:"news_source"`
	CategoryID    *int16     `json:"category_id"`
	CategoryName  *string    `json:"category_name"`
	Status        *bool      `json:"news_status"`
	CreatedAt     time.Time  `json:"created_date"`
	ModifiedAt    *time.Time `json:"modified_date"`
	CreatedByID   int16      `json:"created_by_id"`
	AuthorName    string     `json:"author_name"`
	UpdatedByID   *int16     `json:"updated_by_id"`
	UpdatedByName *string    `json:"updated_by_name"`
	Tags          []tag.Tag  `json:"tags"`
}

// ArticleSummary is the list projection, the full shape minus the body.
type ArticleSummary struct {
	ID            string     `json:"news_article_id"`
	Title         string     `json:"news_title"`
	Headline      string     `json:"headline"`
	Source        *string    `json:"news_source"`
	CategoryID    *int16     `json:"category_id"`
	CategoryName  *string    `json:"category_name"`
	Status        *bool      `json:"news_status"`
	CreatedAt     time.Time  `json:"created_date"`
	ModifiedAt    *time.Time `json:"modified_date"`
	CreatedByID   int16      `json:"created_by_id"`
	AuthorName    string     `json:"author_name"`
	UpdatedByID   *int16     `json:"updated_by_id"`
	UpdatedByName *string    `json:"updated_by_name"`
	Tags          []tag.Tag  `json:"tags"`
}

func (a *Article) ToResponse() ArticleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []tag.Tag{}
	}
	return ArticleResponse{
		ID:            a.ID,
		Title:         a.Title,
		Headline:      a.Headline,
		Content:       a.Content,
		Source:        a.Source,
		CategoryID:    a.CategoryID,
		CategoryName:  a.CategoryName,
		Status:        a.Status,
		CreatedAt:     a.CreatedAt,
		ModifiedAt:    a.ModifiedAt,
		CreatedByID:   a.CreatedByID,
		AuthorName:    a.AuthorName,
		UpdatedByID:   a.UpdatedByID,
		UpdatedByName: a.UpdatedByName,
		Tags:          tags,
	}
}

// ToSummary narrows the full projection. Every summary field is copied
// from ToResponse so the two shapes cannot drift.
func (a *Article) ToSummary() ArticleSummary {
	full := a.ToResponse()
	return ArticleSummary{
		ID:            full.ID,
		Title:         full.Title,
		Headline:      full.Headline,
		Source:        full.Source,
		CategoryID:    full.CategoryID,
		CategoryName:  full.CategoryName,
		Status:        full.Status,
		CreatedAt:     full.CreatedAt,
		ModifiedAt:    full.ModifiedAt,
		CreatedByID:   full.CreatedByID,
		AuthorName:    full.AuthorName,
		UpdatedByID:   full.UpdatedByID,
		UpdatedByName: full.UpdatedByName,
		Tags:          full.Tags,
	}
}

// ToSummaries projects a result set for list endpoints.
func ToSummaries(articles []Article) []ArticleSummary {
	out := make([]ArticleSummary, 0, len(articles))
	for i := range articles {
		out = append(out, articles[i].ToSummary())
	}
	return out
}
