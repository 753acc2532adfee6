package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"news-backend/internal/domains/article"
	"news-backend/internal/domains/tag"
	"news-backend/internal/shared/utils"
	"news-backend/pkg/database"
)

// Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) article.Repository {
	return &postgresRepository{pool: pool}
}

// selectColumns hydrates each article with its category name, author
// names and the attached tags aggregated into parallel arrays.
const selectColumns = `
	SELECT a.news_article_id, a.news_title, a.headline, a.news_content, a.news_source,
	       a.category_id, a.news_status, a.created_date, a.modified_date,
	       a.created_by_id, a.updated_by_id,
	       c.category_name,
	       creator.account_name AS author_name,
	       updater.account_name AS updated_by_name,
	       COALESCE(array_agg(t.tag_id ORDER BY t.tag_id) FILTER (WHERE t.tag_id IS NOT NULL), '{}') AS tag_ids,
	       COALESCE(array_agg(t.tag_name ORDER BY t.tag_id) FILTER (WHERE t.tag_id IS NOT NULL), '{}') AS tag_names,
	       COALESCE(array_agg(t.note ORDER BY t.tag_id) FILTER (WHERE t.tag_id IS NOT NULL), '{}') AS tag_notes
	FROM news_articles a
	JOIN system_accounts creator ON creator.account_id = a.created_by_id
	LEFT JOIN system_accounts updater ON updater.account_id = a.updated_by_id
	LEFT JOIN categories c ON c.category_id = a.category_id
	LEFT JOIN news_tags nt ON nt.news_article_id = a.news_article_id
	LEFT JOIN tags t ON t.tag_id = nt.tag_id`

const groupByClause = `
	GROUP BY a.news_article_id, c.category_name, creator.account_name, updater.account_name`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticle reads one hydrated row. The aggregated tag columns are
// scanned into plain slices so pgx decodes them natively regardless of
// the wire format it negotiated.
func scanArticle(row rowScanner) (*article.Article, error) {
	var (
		a        article.Article
		tagIDs   []int64
		tagNames []string
		tagNotes []*string
	)

	err := row.Scan(
		&a.ID, &a.Title, &a.Headline, &a.Content, &a.Source,
		&a.CategoryID, &a.Status, &a.CreatedAt, &a.ModifiedAt,
		&a.CreatedByID, &a.UpdatedByID,
		&a.CategoryName, &a.AuthorName, &a.UpdatedByName,
		&tagIDs, &tagNames, &tagNotes,
	)
	if err != nil {
		return nil, err
	}

	a.Tags = make([]tag.Tag, 0, len(tagIDs))
	for i, id := range tagIDs {
		t := tag.Tag{ID: int(id), Name: tagNames[i]}
		if tagNotes[i] != nil {
			note := *tagNotes[i]
			t.Note = &note
		}
		a.Tags = append(a.Tags, t)
	}

	return &a, nil
}

func collectArticles(rows pgx.Rows) ([]article.Article, error) {
	defer rows.Close()

	articles := []article.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return articles, nil
}

// ========================= READ =====================

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*article.Article, error) {
	query := selectColumns + `
	WHERE a.news_article_id = $1` + groupByClause

	a, err := scanArticle(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, article.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) Search(ctx context.Context, filter article.SearchFilter) ([]article.Article, error) {
	whereClause, args := buildWhereClause(filter)

	query := selectColumns
	if whereClause != "" {
		query += "\n\tWHERE " + whereClause
	}
	query += groupByClause + `
	ORDER BY a.created_date DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search query failed: %w", err)
	}

	return collectArticles(rows)
}

// buildWhereClause constructs the search WHERE clause dynamically.
// Returns: (whereClause string, args []interface{})
func buildWhereClause(filter article.SearchFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Title != nil {
		conditions = append(conditions, fmt.Sprintf("a.news_title ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.Title+"%")
		argIndex++
	}

	if filter.AuthorName != nil {
		conditions = append(conditions, fmt.Sprintf("creator.account_name ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.AuthorName+"%")
		argIndex++
	}

	if filter.CategoryName != nil {
		conditions = append(conditions, fmt.Sprintf("c.category_name ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.CategoryName+"%")
		argIndex++
	}

	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.news_status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	}

	if filter.CreatedFrom != nil {
		conditions = append(conditions, fmt.Sprintf("a.created_date >= $%d", argIndex))
		args = append(args, *filter.CreatedFrom)
		argIndex++
	}

	if filter.CreatedTo != nil {
		conditions = append(conditions, fmt.Sprintf("a.created_date <= $%d", argIndex))
		args = append(args, *filter.CreatedTo)
		argIndex++
	}

	return utils.JoinWithAnd(conditions), args
}

func (r *postgresRepository) ListByAuthor(ctx context.Context, authorID int16) ([]article.Article, error) {
	query := selectColumns + `
	WHERE a.created_by_id = $1` + groupByClause + `
	ORDER BY a.created_date DESC`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("list by author failed: %w", err)
	}

	return collectArticles(rows)
}

func (r *postgresRepository) ListByCategory(ctx context.Context, categoryID int16) ([]article.Article, error) {
	query := selectColumns + `
	WHERE a.category_id = $1
	  AND a.news_status = true` + groupByClause + `
	ORDER BY a.created_date DESC`

	rows, err := r.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list by category failed: %w", err)
	}

	return collectArticles(rows)
}

// ========================= RELATED =====================

func (r *postgresRepository) FindPublishedByCategory(ctx context.Context, categoryID *int16, excludeID string, limit int) ([]article.Article, error) {
	categoryCond := "a.category_id = $1"
	if categoryID == nil {
		categoryCond = "a.category_id IS NULL AND $1::smallint IS NULL"
	}

	query := selectColumns + `
	WHERE ` + categoryCond + `
	  AND a.news_article_id <> $2
	  AND a.news_status = true` + groupByClause + `
	ORDER BY a.created_date DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, categoryID, excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("related by category failed: %w", err)
	}

	return collectArticles(rows)
}

func (r *postgresRepository) FindPublishedByTags(ctx context.Context, tagIDs []int, excludeID string, limit int) ([]article.Article, error) {
	if len(tagIDs) == 0 {
		return []article.Article{}, nil
	}

	ids := make([]int64, len(tagIDs))
	for i, id := range tagIDs {
		ids[i] = int64(id)
	}

	query := selectColumns + `
	WHERE a.news_article_id IN (
	        SELECT news_article_id FROM news_tags WHERE tag_id = ANY($1)
	      )
	  AND a.news_article_id <> $2
	  AND a.news_status = true` + groupByClause + `
	ORDER BY a.created_date DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, pq.Array(ids), excludeID, limit)
	if err != nil {
		return nil, fmt.Errorf("related by tags failed: %w", err)
	}

	return collectArticles(rows)
}

// ========================= WRITE =====================

func (r *postgresRepository) CreateWithTags(ctx context.Context, a *article.Article, tagIDs []int) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			INSERT INTO news_articles (news_article_id, news_title, headline, news_content,
			                           news_source, category_id, news_status, created_date,
			                           modified_date, created_by_id, updated_by_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`

		_, err := tx.Exec(ctx, query,
			a.ID, a.Title, a.Headline, a.Content,
			a.Source, a.CategoryID, a.Status, a.CreatedAt,
			a.ModifiedAt, a.CreatedByID, a.UpdatedByID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return article.ErrArticleIDExists
			}
			return fmt.Errorf("failed to insert article: %w", err)
		}

		return replaceTags(ctx, tx, a.ID, tagIDs)
	})
}

func (r *postgresRepository) UpdateWithTags(ctx context.Context, a *article.Article, tagIDs []int) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		query := `
			UPDATE news_articles
			SET news_title = $2, headline = $3, news_content = $4, news_source = $5,
			    category_id = $6, news_status = $7, modified_date = $8, updated_by_id = $9
			WHERE news_article_id = $1
		`

		result, err := tx.Exec(ctx, query,
			a.ID, a.Title, a.Headline, a.Content, a.Source,
			a.CategoryID, a.Status, a.ModifiedAt, a.UpdatedByID,
		)
		if err != nil {
			return fmt.Errorf("failed to update article: %w", err)
		}
		if result.RowsAffected() == 0 {
			return article.ErrArticleNotFound
		}

		return replaceTags(ctx, tx, a.ID, tagIDs)
	})
}

// replaceTags reconciles the link table to exactly tagIDs: clear, then
// reattach. The INSERT selects from tags so ids that do not resolve
// are dropped without an error.
func replaceTags(ctx context.Context, tx pgx.Tx, articleID string, tagIDs []int) error {
	if _, err := tx.Exec(ctx, `DELETE FROM news_tags WHERE news_article_id = $1`, articleID); err != nil {
		return fmt.Errorf("failed to clear article tags: %w", err)
	}

	if len(tagIDs) == 0 {
		return nil
	}

	ids := make([]int64, len(tagIDs))
	for i, id := range tagIDs {
		ids[i] = int64(id)
	}

	query := `
		INSERT INTO news_tags (news_article_id, tag_id)
		SELECT $1, tag_id FROM tags WHERE tag_id = ANY($2)
		ON CONFLICT DO NOTHING
	`
	if _, err := tx.Exec(ctx, query, articleID, pq.Array(ids)); err != nil {
		return fmt.Errorf("failed to attach article tags: %w", err)
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM news_tags WHERE news_article_id = $1`, id); err != nil {
			return fmt.Errorf("failed to clear article tags: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM news_articles WHERE news_article_id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete article: %w", err)
		}

		deleted = result.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}

	return deleted, nil
}

func (r *postgresRepository) CategoryExists(ctx context.Context, categoryID int16) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE category_id = $1)`, categoryID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return exists, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
