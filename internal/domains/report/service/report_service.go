package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"news-backend/internal/domains/report"
)

// dashboardRecentCount is how many of the newest articles the
// dashboard lists next to the counters.
const dashboardRecentCount = 5

type reportService struct {
	repo report.Repository
}

func NewReportService(repo report.Repository) report.Service {
	return &reportService{repo: repo}
}

func (s *reportService) Dashboard(ctx context.Context) (*report.Dashboard, error) {
	stats, err := s.repo.Dashboard(ctx)
	if err != nil {
		return nil, err
	}

	recent, err := s.repo.RecentArticles(ctx, dashboardRecentCount)
	if err != nil {
		return nil, err
	}

	return &report.Dashboard{
		DashboardStats: *stats,
		RecentArticles: recent,
	}, nil
}

func (s *reportService) Statistics(ctx context.Context, period report.PeriodFilter) (*report.PeriodStats, error) {
	articles, err := s.repo.ArticlesForExport(ctx, period)
	if err != nil {
		return nil, err
	}

	stats := &report.PeriodStats{
		TotalArticles: len(articles),
		Articles:      articles,
	}
	for _, a := range articles {
		if a.Status != nil && *a.Status {
			stats.ActiveArticles++
		} else {
			stats.InactiveArticles++
		}
	}

	return stats, nil
}

func (s *reportService) ByCategory(ctx context.Context, period report.PeriodFilter) ([]report.CategoryStat, error) {
	return s.repo.ByCategory(ctx, period)
}

func (s *reportService) ByAuthor(ctx context.Context, period report.PeriodFilter) ([]report.AuthorStat, error) {
	return s.repo.ByAuthor(ctx, period)
}

func (s *reportService) ExportArticles(ctx context.Context, period report.PeriodFilter) (*excelize.File, error) {
	articles, err := s.repo.ArticlesForExport(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("failed to load export rows: %w", err)
	}

	f, err := buildArticlesExcelFile(articles)
	if err != nil {
		return nil, fmt.Errorf("failed to build excel file: %w", err)
	}

	return f, nil
}

func buildArticlesExcelFile(articles []report.ArticleExportRow) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Articles"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{
		"ID",
		"Title",
		"Headline",
		"Category",
		"Author",
		"Status",
		"Created At",
		"Modified At",
		"Tags",
	}

	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "I1", headerStyle)
	}

	for i, a := range articles {
		rowNum := i + 2

		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(sheetName, cell(1), a.ID)
		f.SetCellValue(sheetName, cell(2), a.Title)
		f.SetCellValue(sheetName, cell(3), a.Headline)

		if a.CategoryName != nil {
			f.SetCellValue(sheetName, cell(4), *a.CategoryName)
		} else {
			f.SetCellValue(sheetName, cell(4), nil)
		}

		f.SetCellValue(sheetName, cell(5), a.AuthorName)
		f.SetCellValue(sheetName, cell(6), statusLabel(a.Status))
		f.SetCellValue(sheetName, cell(7), a.CreatedAt.Format("2006-01-02 15:04:05"))

		if a.ModifiedAt != nil {
			f.SetCellValue(sheetName, cell(8), a.ModifiedAt.Format("2006-01-02 15:04:05"))
		} else {
			f.SetCellValue(sheetName, cell(8), nil)
		}

		f.SetCellValue(sheetName, cell(9), strings.Join(a.TagNames, ", "))
	}

	return f, nil
}

func statusLabel(status *bool) string {
	switch {
	case status == nil:
		return "Draft"
	case *status:
		return "Published"
	default:
		return "Inactive"
	}
}
