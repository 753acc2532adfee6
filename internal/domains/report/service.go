package report

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// Service defines report business logic
type Service interface {
	// Dashboard combines the global counters with the newest articles
	Dashboard(ctx context.Context) (*Dashboard, error)
	ByCategory(ctx context.Context, period PeriodFilter) ([]CategoryStat, error)
	ByAuthor(ctx context.Context, period PeriodFilter) ([]AuthorStat, error)

	// Statistics counts the articles created inside the period and
	// lists them split by publication state
	Statistics(ctx context.Context, period PeriodFilter) (*PeriodStats, error)

	// ExportArticles builds an Excel workbook listing the articles
	// created inside the period
	ExportArticles(ctx context.Context, period PeriodFilter) (*excelize.File, error)
}
