package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-backend/internal/domains/report"
	"news-backend/internal/shared/utils"
)

// Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) report.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Dashboard(ctx context.Context) (*report.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM news_articles),
			(SELECT COUNT(*) FROM news_articles WHERE news_status = true),
			(SELECT COUNT(*) FROM news_articles WHERE news_status IS DISTINCT FROM true),
			(SELECT COUNT(*) FROM categories),
			(SELECT COUNT(*) FROM tags),
			(SELECT COUNT(*) FROM system_accounts)
	`

	var stats report.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalArticles,
		&stats.PublishedArticles,
		&stats.DraftArticles,
		&stats.TotalCategories,
		&stats.TotalTags,
		&stats.TotalAccounts,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard query failed: %w", err)
	}

	return &stats, nil
}

// buildPeriodClause constructs the creation-date window condition.
// Returns: (whereClause string, args []interface{})
func buildPeriodClause(period report.PeriodFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if period.From != nil {
		conditions = append(conditions, fmt.Sprintf("a.created_date >= $%d", argIndex))
		args = append(args, *period.From)
		argIndex++
	}

	if period.To != nil {
		conditions = append(conditions, fmt.Sprintf("a.created_date <= $%d", argIndex))
		args = append(args, *period.To)
		argIndex++
	}

	clause := utils.JoinWithAnd(conditions)
	if clause != "" {
		clause = "\n\t\tWHERE " + clause
	}

	return clause, args
}

func (r *postgresRepository) ByCategory(ctx context.Context, period report.PeriodFilter) ([]report.CategoryStat, error) {
	whereClause, args := buildPeriodClause(period)

	query := `
		SELECT a.category_id, c.category_name, COUNT(*) AS article_count
		FROM news_articles a
		LEFT JOIN categories c ON c.category_id = a.category_id` + whereClause + `
		GROUP BY a.category_id, c.category_name
		ORDER BY article_count DESC, a.category_id
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("by-category query failed: %w", err)
	}

	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[report.CategoryStat])
	if err != nil {
		return nil, fmt.Errorf("failed to collect category stats: %w", err)
	}

	return stats, nil
}

func (r *postgresRepository) ByAuthor(ctx context.Context, period report.PeriodFilter) ([]report.AuthorStat, error) {
	whereClause, args := buildPeriodClause(period)

	query := `
		SELECT a.created_by_id AS account_id,
		       s.account_name AS author_name,
		       COUNT(*) AS article_count,
		       COUNT(*) FILTER (WHERE a.news_status = true) AS published_count
		FROM news_articles a
		JOIN system_accounts s ON s.account_id = a.created_by_id` + whereClause + `
		GROUP BY a.created_by_id, s.account_name
		ORDER BY article_count DESC, a.created_by_id
	`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("by-author query failed: %w", err)
	}

	stats, err := pgx.CollectRows(rows, pgx.RowToStructByName[report.AuthorStat])
	if err != nil {
		return nil, fmt.Errorf("failed to collect author stats: %w", err)
	}

	return stats, nil
}

const exportSelect = `
		SELECT a.news_article_id, a.news_title, a.headline,
		       c.category_name,
		       s.account_name AS author_name,
		       a.news_status, a.created_date, a.modified_date,
		       COALESCE(array_agg(t.tag_name ORDER BY t.tag_id) FILTER (WHERE t.tag_name IS NOT NULL), '{}') AS tag_names
		FROM news_articles a
		JOIN system_accounts s ON s.account_id = a.created_by_id
		LEFT JOIN categories c ON c.category_id = a.category_id
		LEFT JOIN news_tags nt ON nt.news_article_id = a.news_article_id
		LEFT JOIN tags t ON t.tag_id = nt.tag_id`

const exportGroupBy = `
		GROUP BY a.news_article_id, c.category_name, s.account_name
		ORDER BY a.created_date DESC`

func (r *postgresRepository) ArticlesForExport(ctx context.Context, period report.PeriodFilter) ([]report.ArticleExportRow, error) {
	whereClause, args := buildPeriodClause(period)
	query := exportSelect + whereClause + exportGroupBy

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("export query failed: %w", err)
	}

	return collectExportRows(rows)
}

func (r *postgresRepository) RecentArticles(ctx context.Context, limit int) ([]report.ArticleExportRow, error) {
	query := exportSelect + exportGroupBy + `
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent articles query failed: %w", err)
	}

	return collectExportRows(rows)
}

func collectExportRows(rows pgx.Rows) ([]report.ArticleExportRow, error) {
	defer rows.Close()

	out := []report.ArticleExportRow{}
	for rows.Next() {
		var row report.ArticleExportRow
		err := rows.Scan(
			&row.ID, &row.Title, &row.Headline,
			&row.CategoryName, &row.AuthorName,
			&row.Status, &row.CreatedAt, &row.ModifiedAt,
			&row.TagNames,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan export row: %w", err)
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return out, nil
}
