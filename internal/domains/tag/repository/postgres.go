package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-backend/internal/domains/tag"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) tag.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]tag.Tag, error) {
	rows, err := r.pool.Query(ctx, `SELECT tag_id, tag_name, note FROM tags ORDER BY tag_id`)
	if err != nil {
		return nil, fmt.Errorf("list tags query failed: %w", err)
	}

	tags, err := pgx.CollectRows(rows, pgx.RowToStructByName[tag.Tag])
	if err != nil {
		return nil, fmt.Errorf("collect rows failed: %w", err)
	}

	return tags, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int) (*tag.Tag, error) {
	var t tag.Tag
	err := r.pool.QueryRow(ctx,
		`SELECT tag_id, tag_name, note FROM tags WHERE tag_id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Note)

	if err == pgx.ErrNoRows {
		return nil, tag.ErrTagNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &t, nil
}

func (r *postgresRepository) Search(ctx context.Context, term string) ([]tag.Tag, error) {
	if term == "" {
		return r.GetAll(ctx)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT tag_id, tag_name, note
		FROM tags
		WHERE tag_name ILIKE '%' || $1 || '%' OR note ILIKE '%' || $1 || '%'
		ORDER BY tag_id
	`, term)
	if err != nil {
		return nil, fmt.Errorf("search tags query failed: %w", err)
	}

	tags, err := pgx.CollectRows(rows, pgx.RowToStructByName[tag.Tag])
	if err != nil {
		return nil, fmt.Errorf("collect rows failed: %w", err)
	}

	return tags, nil
}

// Create assigns max+1 as the new id inside the insert itself so two
// concurrent creates cannot pick the same id outside a transaction.
func (r *postgresRepository) Create(ctx context.Context, name string, note *string) (*tag.Tag, error) {
	t := &tag.Tag{Name: name, Note: note}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tags (tag_id, tag_name, note)
		VALUES ((SELECT COALESCE(MAX(tag_id), 0) + 1 FROM tags), $1, $2)
		RETURNING tag_id
	`, name, note).Scan(&t.ID)

	if err != nil {
		return nil, fmt.Errorf("failed to insert tag: %w", err)
	}

	return t, nil
}

func (r *postgresRepository) Update(ctx context.Context, t *tag.Tag) error {
	result, err := r.pool.Exec(ctx,
		`UPDATE tags SET tag_name = $1, note = $2 WHERE tag_id = $3`,
		t.Name, t.Note, t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update tag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM tags WHERE tag_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	if result.RowsAffected() == 0 {
		return tag.ErrTagNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM tags
			WHERE LOWER(tag_name) = LOWER($1) AND tag_id != $2
		)
	`, name, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check tag name: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) IsTagUsed(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM news_tags WHERE tag_id = $1)`, id,
	).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("failed to check tag usage: %w", err)
	}

	return exists, nil
}
