package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-backend/internal/domains/category"
)

// Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) category.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	query := `
		SELECT category_id, category_name, category_description, parent_category_id, is_active
		FROM categories
		ORDER BY category_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[category.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to collect categories: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) Search(ctx context.Context, term string) ([]category.Category, error) {
	query := `
		SELECT category_id, category_name, category_description, parent_category_id, is_active
		FROM categories
		WHERE category_name ILIKE $1 OR category_description ILIKE $1
		ORDER BY category_id
	`

	rows, err := r.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[category.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to collect categories: %w", err)
	}

	return categories, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int16) (*category.Category, error) {
	query := `
		SELECT category_id, category_name, category_description, parent_category_id, is_active
		FROM categories
		WHERE category_id = $1
	`

	var c category.Category
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Description, &c.ParentID, &c.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, category.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) Create(ctx context.Context, c *category.Category) (*category.Category, error) {
	query := `
		INSERT INTO categories (category_id, category_name, category_description, parent_category_id, is_active)
		VALUES ((SELECT COALESCE(MAX(category_id), 0) + 1 FROM categories), $1, $2, $3, $4)
		RETURNING category_id
	`

	err := r.pool.QueryRow(ctx, query, c.Name, c.Description, c.ParentID, c.IsActive).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}

	return c, nil
}

func (r *postgresRepository) Update(ctx context.Context, c *category.Category) error {
	query := `
		UPDATE categories
		SET category_name = $2, category_description = $3, parent_category_id = $4, is_active = $5
		WHERE category_id = $1
	`

	result, err := r.pool.Exec(ctx, query, c.ID, c.Name, c.Description, c.ParentID, c.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int16) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if result.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

func (r *postgresRepository) Exists(ctx context.Context, id int16) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE category_id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID int16) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE LOWER(category_name) = LOWER($1) AND category_id <> $2)`,
		name, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) IsCategoryUsed(ctx context.Context, id int16) (bool, error) {
	var used bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM news_articles WHERE category_id = $1)`, id,
	).Scan(&used)
	if err != nil {
		return false, fmt.Errorf("failed to check category usage: %w", err)
	}
	return used, nil
}

func (r *postgresRepository) HasChildren(ctx context.Context, id int16) (bool, error) {
	var has bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM categories WHERE parent_category_id = $1)`, id,
	).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("failed to check child categories: %w", err)
	}
	return has, nil
}
