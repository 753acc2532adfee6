package account

import "context"

// Repository defines account data access
type Repository interface {
	GetAll(ctx context.Context) ([]Account, error)

	// Search matches account name or email, case-insensitive contains.
	// An empty term returns all accounts.
	Search(ctx context.Context, term string) ([]Account, error)

	// GetByID returns ErrAccountNotFound when the id does not resolve
	GetByID(ctx context.Context, id int16) (*Account, error)

	// GetByEmail matches case-insensitively and returns
	// ErrAccountNotFound when the email does not resolve
	GetByEmail(ctx context.Context, email string) (*Account, error)

	// Create assigns the next free id (max+1) and inserts
	Create(ctx context.Context, a *Account) (*Account, error)

	Update(ctx context.Context, a *Account) error

	Delete(ctx context.Context, id int16) error

	// ExistsByEmail checks email uniqueness case-insensitively,
	// ignoring the account with excludeID (0 = no exclusion)
	ExistsByEmail(ctx context.Context, email string, excludeID int16) (bool, error)

	// HasArticles reports whether the account authored any article
	HasArticles(ctx context.Context, id int16) (bool, error)
}
