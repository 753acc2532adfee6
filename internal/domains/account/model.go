package account

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"news-backend/internal/shared"
)

// Account is a system user. PasswordHash is a bcrypt digest and never
// leaves the service layer.
type Account struct {
	ID           int16  `db:"account_id"`
	Name         string `db:"account_name"`
	Email        string `db:"account_email"`
	PasswordHash string `db:"account_password"`
	Role         int    `db:"account_role"`
}

type AccountResponse struct {
	ID    int16  `json:"account_id"`
	Name  string `json:"account_name"`
	Email string `json:"account_email"`
	Role  int    `json:"account_role"`
}

func (a *Account) ToResponse() AccountResponse {
	return AccountResponse{
		ID:    a.ID,
		Name:  a.Name,
		Email: a.Email,
		Role:  a.Role,
	}
}

type CreateAccountRequest struct {
	Name     string `json:"account_name"`
	Email    string `json:"account_email"`
	Password string `json:"password"`
	Role     int    `json:"account_role"`
}

func (r CreateAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.Role, validation.Required,
			validation.In(shared.RoleStaff, shared.RoleLecturer, shared.RoleAdmin)),
	)
}

// UpdateAccountRequest updates only the supplied fields. A nil
// Password keeps the current hash.
type UpdateAccountRequest struct {
	Name     *string `json:"account_name"`
	Email    *string `json:"account_email"`
	Password *string `json:"password"`
	Role     *int    `json:"account_role"`
}

func (r UpdateAccountRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.Password, validation.Length(8, 72)),
		validation.Field(&r.Role,
			validation.In(shared.RoleStaff, shared.RoleLecturer, shared.RoleAdmin)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required),
	)
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type LoginResponse struct {
	Account AccountResponse `json:"account"`
	Tokens  TokenPair       `json:"tokens"`
}
