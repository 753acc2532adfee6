package report

import "time"

// DashboardStats summarizes the whole content base.
type DashboardStats struct {
	TotalArticles     int `json:"total_articles"`
	PublishedArticles int `json:"published_articles"`
	DraftArticles     int `json:"draft_articles"`
	TotalCategories   int `json:"total_categories"`
	TotalTags         int `json:"total_tags"`
	TotalAccounts     int `json:"total_accounts"`
}

// Dashboard pairs the global counters with the newest articles.
type Dashboard struct {
	DashboardStats
	RecentArticles []ArticleExportRow `json:"recent_articles"`
}

// PeriodStats summarizes the articles created inside a period.
type PeriodStats struct {
	TotalArticles    int                `json:"total_articles"`
	ActiveArticles   int                `json:"active_articles"`
	InactiveArticles int                `json:"inactive_articles"`
	Articles         []ArticleExportRow `json:"articles"`
}

// CategoryStat counts articles per category. Uncategorized articles
// show up with a nil category.
type CategoryStat struct {
	CategoryID   *int16  `json:"category_id" db:"category_id"`
	CategoryName *string `json:"category_name" db:"category_name"`
	ArticleCount int     `json:"article_count" db:"article_count"`
}

// AuthorStat counts articles per author.
type AuthorStat struct {
	AccountID      int16  `json:"account_id" db:"account_id"`
	AuthorName     string `json:"author_name" db:"author_name"`
	ArticleCount   int    `json:"article_count" db:"article_count"`
	PublishedCount int    `json:"published_count" db:"published_count"`
}

// PeriodFilter bounds a report to a creation-date window. Nil ends
// are open.
type PeriodFilter struct {
	From *time.Time
	To   *time.Time
}

// ArticleExportRow is one article line of the Excel export and the
// period reports.
type ArticleExportRow struct {
	ID           string     `json:"id" db:"news_article_id"`
	Title        string     `json:"title" db:"news_title"`
	Headline     string     `json:"headline" db:"headline"`
	CategoryName *string    `json:"category_name" db:"category_name"`
	AuthorName   string     `json:"author_name" db:"author_name"`
	Status       *bool      `json:"status" db:"news_status"`
	CreatedAt    time.Time  `json:"created_at" db:"created_date"`
	ModifiedAt   *time.Time `json:"modified_at" db:"modified_date"`
	TagNames     []string   `json:"tag_names" db:"tag_names"`
}
