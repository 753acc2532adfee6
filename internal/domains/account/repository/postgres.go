package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-backend/internal/domains/account"
)

// Raw SQL with pgxpool
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) account.Repository {
	return &postgresRepository{pool: pool}
}

const selectColumns = `
	SELECT account_id, account_name, account_email, account_password, account_role
	FROM system_accounts`

func (r *postgresRepository) GetAll(ctx context.Context) ([]account.Account, error) {
	rows, err := r.pool.Query(ctx, selectColumns+`
	ORDER BY account_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[account.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to collect accounts: %w", err)
	}

	return accounts, nil
}

func (r *postgresRepository) Search(ctx context.Context, term string) ([]account.Account, error) {
	rows, err := r.pool.Query(ctx, selectColumns+`
	WHERE account_name ILIKE $1 OR account_email ILIKE $1
	ORDER BY account_id`, "%"+term+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to search accounts: %w", err)
	}

	accounts, err := pgx.CollectRows(rows, pgx.RowToStructByName[account.Account])
	if err != nil {
		return nil, fmt.Errorf("failed to collect accounts: %w", err)
	}

	return accounts, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int16) (*account.Account, error) {
	var a account.Account
	err := r.pool.QueryRow(ctx, selectColumns+`
	WHERE account_id = $1`, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, account.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	var a account.Account
	err := r.pool.QueryRow(ctx, selectColumns+`
	WHERE LOWER(account_email) = LOWER($1)`, email).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, account.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	query := `
		INSERT INTO system_accounts (account_id, account_name, account_email, account_password, account_role)
		VALUES ((SELECT COALESCE(MAX(account_id), 0) + 1 FROM system_accounts), $1, $2, $3, $4)
		RETURNING account_id
	`

	err := r.pool.QueryRow(ctx, query, a.Name, a.Email, a.PasswordHash, a.Role).Scan(&a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert account: %w", err)
	}

	return a, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE system_accounts
		SET account_name = $2, account_email = $3, account_password = $4, account_role = $5
		WHERE account_id = $1
	`

	result, err := r.pool.Exec(ctx, query, a.ID, a.Name, a.Email, a.PasswordHash, a.Role)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if result.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int16) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM system_accounts WHERE account_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if result.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}

	return nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string, excludeID int16) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM system_accounts WHERE LOWER(account_email) = LOWER($1) AND account_id <> $2)`,
		email, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account email: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) HasArticles(ctx context.Context, id int16) (bool, error) {
	var has bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM news_articles WHERE created_by_id = $1)`, id,
	).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("failed to check account articles: %w", err)
	}
	return has, nil
}
