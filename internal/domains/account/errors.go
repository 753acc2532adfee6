package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-backend/internal/shared/response"
	"news-backend/pkg/logger"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrDuplicateEmail     = errors.New("email address is already registered")
	ErrAccountHasArticles = errors.New("account cannot be deleted while it owns articles")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

var accountErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrAccountNotFound:    {http.StatusNotFound, "ACCOUNT_NOT_FOUND", "The specified account does not exist"},
	ErrDuplicateEmail:     {http.StatusConflict, "DUPLICATE_EMAIL", "An account with this email already exists"},
	ErrAccountHasArticles: {http.StatusConflict, "ACCOUNT_HAS_ARTICLES", "Cannot delete an account that owns articles"},
	ErrInvalidCredentials: {http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid email or password"},
	ErrInvalidRefresh:     {http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "The refresh token is invalid or expired"},
}

// HandleAccountError writes the mapped HTTP response for a known
// account error. Returns true when a response was written.
func HandleAccountError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, cfg := range accountErrorMap {
		if errors.Is(err, known) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("unhandled account error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
