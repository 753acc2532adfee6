package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"news-backend/internal/domains/account"
	"news-backend/internal/shared"
	"news-backend/pkg/jwt"
)

type fakeRepository struct {
	accounts map[int16]*account.Account
	authored map[int16]bool
	nextID   int16
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		accounts: map[int16]*account.Account{},
		authored: map[int16]bool{},
		nextID:   1,
	}
}

func (f *fakeRepository) put(a account.Account) {
	copied := a
	f.accounts[a.ID] = &copied
	if a.ID >= f.nextID {
		f.nextID = a.ID + 1
	}
}

func (f *fakeRepository) GetAll(_ context.Context) ([]account.Account, error) {
	out := []account.Account{}
	for _, a := range f.accounts {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeRepository) Search(_ context.Context, term string) ([]account.Account, error) {
	needle := strings.ToLower(term)
	out := []account.Account{}
	for _, a := range f.accounts {
		if strings.Contains(strings.ToLower(a.Name), needle) || strings.Contains(strings.ToLower(a.Email), needle) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id int16) (*account.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, account.ErrAccountNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*account.Account, error) {
	for _, a := range f.accounts {
		if strings.EqualFold(a.Email, email) {
			copied := *a
			return &copied, nil
		}
	}
	return nil, account.ErrAccountNotFound
}

func (f *fakeRepository) Create(_ context.Context, a *account.Account) (*account.Account, error) {
	a.ID = f.nextID
	f.nextID++
	copied := *a
	f.accounts[a.ID] = &copied
	return a, nil
}

func (f *fakeRepository) Update(_ context.Context, a *account.Account) error {
	if _, ok := f.accounts[a.ID]; !ok {
		return account.ErrAccountNotFound
	}
	copied := *a
	f.accounts[a.ID] = &copied
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id int16) error {
	if _, ok := f.accounts[id]; !ok {
		return account.ErrAccountNotFound
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeRepository) ExistsByEmail(_ context.Context, email string, excludeID int16) (bool, error) {
	for _, a := range f.accounts {
		if a.ID != excludeID && strings.EqualFold(a.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) HasArticles(_ context.Context, id int16) (bool, error) {
	return f.authored[id], nil
}

func newTestManager() *jwt.Manager {
	return jwt.NewManager("test-secret", time.Hour, 24*time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginIssuesTokenPair(t *testing.T) {
	repo := newFakeRepository()
	repo.put(account.Account{
		ID:           7,
		Name:         "Staff Seven",
		Email:        "staff@example.com",
		PasswordHash: hashOf(t, "correct horse"),
		Role:         shared.RoleStaff,
	})
	svc := NewAccountService(repo, newTestManager())

	resp, err := svc.Login(context.Background(), account.LoginRequest{
		Email:    "Staff@Example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, int16(7), resp.Account.ID)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)

	claims, err := newTestManager().ValidateAccessToken(resp.Tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int16(7), claims.AccountID)
	assert.Equal(t, shared.RoleStaff, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeRepository()
	repo.put(account.Account{
		ID:           7,
		Email:        "staff@example.com",
		PasswordHash: hashOf(t, "correct horse"),
		Role:         shared.RoleStaff,
	})
	svc := NewAccountService(repo, newTestManager())

	_, err := svc.Login(context.Background(), account.LoginRequest{
		Email:    "staff@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAccountService(newFakeRepository(), newTestManager())

	_, err := svc.Login(context.Background(), account.LoginRequest{
		Email:    "nobody@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, account.ErrInvalidCredentials)
}

func TestRefreshReissuesTokens(t *testing.T) {
	repo := newFakeRepository()
	repo.put(account.Account{
		ID:           7,
		Email:        "staff@example.com",
		PasswordHash: hashOf(t, "correct horse"),
		Role:         shared.RoleStaff,
	})
	manager := newTestManager()
	svc := NewAccountService(repo, manager)

	resp, err := svc.Login(context.Background(), account.LoginRequest{
		Email:    "staff@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), account.RefreshRequest{
		RefreshToken: resp.Tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newFakeRepository()
	repo.put(account.Account{
		ID:           7,
		Email:        "staff@example.com",
		PasswordHash: hashOf(t, "correct horse"),
		Role:         shared.RoleStaff,
	})
	svc := NewAccountService(repo, newTestManager())

	resp, err := svc.Login(context.Background(), account.LoginRequest{
		Email:    "staff@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), account.RefreshRequest{
		RefreshToken: resp.Tokens.AccessToken,
	})
	assert.ErrorIs(t, err, account.ErrInvalidRefresh)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeRepository()
	repo.put(account.Account{ID: 7, Email: "staff@example.com"})
	svc := NewAccountService(repo, newTestManager())

	_, err := svc.Create(context.Background(), account.CreateAccountRequest{
		Name:     "Another",
		Email:    "STAFF@example.com",
		Password: "some password",
		Role:     shared.RoleStaff,
	})
	assert.ErrorIs(t, err, account.ErrDuplicateEmail)
}

func TestCreateHashesPassword(t *testing.T) {
	repo := newFakeRepository()
	svc := NewAccountService(repo, newTestManager())

	resp, err := svc.Create(context.Background(), account.CreateAccountRequest{
		Name:     "Staff",
		Email:    "staff@example.com",
		Password: "correct horse",
		Role:     shared.RoleStaff,
	})
	require.NoError(t, err)

	stored := repo.accounts[resp.ID]
	assert.NotEqual(t, "correct horse", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct horse")))
}

func TestDeleteBlockedWhileAuthoring(t *testing.T) {
	repo := newFakeRepository()
	repo.put(account.Account{ID: 7, Email: "staff@example.com"})
	repo.authored[7] = true
	svc := NewAccountService(repo, newTestManager())

	err := svc.Delete(context.Background(), 7)
	assert.ErrorIs(t, err, account.ErrAccountHasArticles)
}

func TestDeleteWithoutArticles(t *testing.T) {
	repo := newFakeRepository()
	repo.put(account.Account{ID: 7, Email: "staff@example.com"})
	svc := NewAccountService(repo, newTestManager())

	require.NoError(t, svc.Delete(context.Background(), 7))

	_, err := svc.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}
