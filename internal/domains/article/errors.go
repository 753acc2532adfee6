package article

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-backend/internal/shared/response"
	"news-backend/pkg/logger"
)

var (
	ErrArticleNotFound  = errors.New("article not found")
	ErrArticleIDExists  = errors.New("article id already exists")
	ErrNotOwner         = errors.New("article belongs to another account")
	ErrArticleNotPublic = errors.New("article is not published")
	ErrCategoryNotFound = errors.New("category not found")
)

var articleErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrArticleNotFound:  {http.StatusNotFound, "ARTICLE_NOT_FOUND", "The specified article does not exist"},
	ErrArticleIDExists:  {http.StatusConflict, "ARTICLE_ID_EXISTS", "An article with this id already exists, retry shortly"},
	ErrNotOwner:         {http.StatusForbidden, "NOT_OWNER", "Only the author or an admin may modify this article"},
	ErrArticleNotPublic: {http.StatusForbidden, "ARTICLE_NOT_PUBLIC", "This article is not published"},
	ErrCategoryNotFound: {http.StatusBadRequest, "CATEGORY_NOT_FOUND", "The referenced category does not exist"},
}

// HandleArticleError writes the mapped HTTP response for a known
// article error. Returns true when a response was written.
func HandleArticleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, cfg := range articleErrorMap {
		if errors.Is(err, known) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("unhandled article error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
