package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"news-backend/internal/domains/account"
	"news-backend/pkg/jwt"
)

type accountService struct {
	repo account.Repository
	jwt  *jwt.Manager
}

func NewAccountService(repo account.Repository, jwtManager *jwt.Manager) account.Service {
	return &accountService{
		repo: repo,
		jwt:  jwtManager,
	}
}

// ========================= CRUD =====================

func (s *accountService) GetAll(ctx context.Context) ([]account.AccountResponse, error) {
	accounts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(accounts), nil
}

func (s *accountService) Search(ctx context.Context, term string) ([]account.AccountResponse, error) {
	accounts, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toResponses(accounts), nil
}

func toResponses(accounts []account.Account) []account.AccountResponse {
	responses := make([]account.AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, accounts[i].ToResponse())
	}
	return responses
}

func (s *accountService) GetByID(ctx context.Context, id int16) (*account.AccountResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := a.ToResponse()
	return &resp, nil
}

func (s *accountService) Create(ctx context.Context, req account.CreateAccountRequest) (*account.AccountResponse, error) {
	exists, err := s.repo.ExistsByEmail(ctx, req.Email, 0)
	if err != nil {
		return nil, fmt.Errorf("check account email: %w", err)
	}
	if exists {
		return nil, account.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	a := &account.Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	resp := created.ToResponse()
	return &resp, nil
}

func (s *accountService) Update(ctx context.Context, id int16, req account.UpdateAccountRequest) (*account.AccountResponse, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != existing.Email {
		exists, err := s.repo.ExistsByEmail(ctx, *req.Email, id)
		if err != nil {
			return nil, fmt.Errorf("check account email: %w", err)
		}
		if exists {
			return nil, account.ErrDuplicateEmail
		}
		existing.Email = *req.Email
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}

	if req.Role != nil {
		existing.Role = *req.Role
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update account: %w", err)
	}

	resp := existing.ToResponse()
	return &resp, nil
}

func (s *accountService) Delete(ctx context.Context, id int16) error {
	has, err := s.repo.HasArticles(ctx, id)
	if err != nil {
		return fmt.Errorf("check account articles: %w", err)
	}
	if has {
		return account.ErrAccountHasArticles
	}

	return s.repo.Delete(ctx, id)
}

// ========================= AUTH =====================

func (s *accountService) Login(ctx context.Context, req account.LoginRequest) (*account.LoginResponse, error) {
	a, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Unknown emails look the same as bad passwords
		return nil, account.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(req.Password)); err != nil {
		return nil, account.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(a)
	if err != nil {
		return nil, err
	}

	return &account.LoginResponse{
		Account: a.ToResponse(),
		Tokens:  *tokens,
	}, nil
}

func (s *accountService) Refresh(ctx context.Context, req account.RefreshRequest) (*account.TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, account.ErrInvalidRefresh
	}

	// Re-read the account so role or email changes take effect
	a, err := s.repo.GetByID(ctx, claims.AccountID)
	if err != nil {
		return nil, account.ErrInvalidRefresh
	}

	return s.issueTokens(a)
}

func (s *accountService) issueTokens(a *account.Account) (*account.TokenPair, error) {
	access, err := s.jwt.GenerateAccessToken(a.ID, a.Email, a.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refresh, err := s.jwt.GenerateRefreshToken(a.ID)
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &account.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
