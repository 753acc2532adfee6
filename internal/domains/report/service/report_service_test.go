package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-backend/internal/domains/report"
)

type fakeRepository struct {
	rows  []report.ArticleExportRow
	stats report.DashboardStats
}

func (f *fakeRepository) Dashboard(_ context.Context) (*report.DashboardStats, error) {
	stats := f.stats
	return &stats, nil
}

func (f *fakeRepository) ByCategory(_ context.Context, _ report.PeriodFilter) ([]report.CategoryStat, error) {
	return []report.CategoryStat{}, nil
}

func (f *fakeRepository) ByAuthor(_ context.Context, _ report.PeriodFilter) ([]report.AuthorStat, error) {
	return []report.AuthorStat{}, nil
}

func (f *fakeRepository) ArticlesForExport(_ context.Context, _ report.PeriodFilter) ([]report.ArticleExportRow, error) {
	return f.rows, nil
}

func (f *fakeRepository) RecentArticles(_ context.Context, limit int) ([]report.ArticleExportRow, error) {
	if limit > len(f.rows) {
		limit = len(f.rows)
	}
	return f.rows[:limit], nil
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestExportArticlesBuildsWorkbook(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepository{
		rows: []report.ArticleExportRow{
			{
				ID:           "NEWS20240601120000",
				Title:        "Launch day",
				Headline:     "We shipped",
				CategoryName: strPtr("Tech"),
				AuthorName:   "Staff Seven",
				Status:       boolPtr(true),
				CreatedAt:    created,
				TagNames:     []string{"go", "web"},
			},
			{
				ID:         "NEWS20240601120001",
				Title:      "Draft piece",
				Headline:   "Not ready",
				AuthorName: "Staff Seven",
				CreatedAt:  created.Add(time.Minute),
			},
		},
	}
	svc := NewReportService(repo)

	f, err := svc.ExportArticles(context.Background(), report.PeriodFilter{})
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Articles", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)

	id, err := f.GetCellValue("Articles", "A2")
	require.NoError(t, err)
	assert.Equal(t, "NEWS20240601120000", id)

	status, err := f.GetCellValue("Articles", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Published", status)

	tags, err := f.GetCellValue("Articles", "I2")
	require.NoError(t, err)
	assert.Equal(t, "go, web", tags)

	draftStatus, err := f.GetCellValue("Articles", "F3")
	require.NoError(t, err)
	assert.Equal(t, "Draft", draftStatus)
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Draft", statusLabel(nil))
	assert.Equal(t, "Published", statusLabel(boolPtr(true)))
	assert.Equal(t, "Inactive", statusLabel(boolPtr(false)))
}

func TestDashboardIncludesRecentArticles(t *testing.T) {
	repo := &fakeRepository{
		stats: report.DashboardStats{TotalArticles: 12, PublishedArticles: 9},
		rows: []report.ArticleExportRow{
			{ID: "NEWS20240601120001", Title: "Newest"},
			{ID: "NEWS20240601120000", Title: "Older"},
		},
	}
	svc := NewReportService(repo)

	dash, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, dash.TotalArticles)
	assert.Equal(t, 9, dash.PublishedArticles)
	require.Len(t, dash.RecentArticles, 2)
	assert.Equal(t, "NEWS20240601120001", dash.RecentArticles[0].ID)
}

func TestStatisticsSplitsByStatus(t *testing.T) {
	repo := &fakeRepository{
		rows: []report.ArticleExportRow{
			{ID: "NEWS20240601120000", Status: boolPtr(true)},
			{ID: "NEWS20240601120001", Status: boolPtr(false)},
			{ID: "NEWS20240601120002"},
		},
	}
	svc := NewReportService(repo)

	stats, err := svc.Statistics(context.Background(), report.PeriodFilter{})
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalArticles)
	assert.Equal(t, 1, stats.ActiveArticles)
	assert.Equal(t, 2, stats.InactiveArticles)
	assert.Len(t, stats.Articles, 3)
}
