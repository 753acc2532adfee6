package account

import "context"

// Service defines account business logic and authentication
type Service interface {
	GetAll(ctx context.Context) ([]AccountResponse, error)
	Search(ctx context.Context, term string) ([]AccountResponse, error)
	GetByID(ctx context.Context, id int16) (*AccountResponse, error)
	Create(ctx context.Context, req CreateAccountRequest) (*AccountResponse, error)
	Update(ctx context.Context, id int16, req UpdateAccountRequest) (*AccountResponse, error)

	// Delete rejects accounts that still own articles with
	// ErrAccountHasArticles
	Delete(ctx context.Context, id int16) error

	// Login verifies the credentials and issues a token pair.
	// Unknown emails and wrong passwords both return
	// ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Refresh exchanges a valid refresh token for a fresh pair
	Refresh(ctx context.Context, req RefreshRequest) (*TokenPair, error)
}
