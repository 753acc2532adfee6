package report

import "context"

// Repository defines the aggregate queries behind the reports
type Repository interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	ByCategory(ctx context.Context, period PeriodFilter) ([]CategoryStat, error)
	ByAuthor(ctx context.Context, period PeriodFilter) ([]AuthorStat, error)
	ArticlesForExport(ctx context.Context, period PeriodFilter) ([]ArticleExportRow, error)

	// RecentArticles returns the newest articles by creation date
	RecentArticles(ctx context.Context, limit int) ([]ArticleExportRow, error)
}
