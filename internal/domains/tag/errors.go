package tag

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-backend/internal/shared/response"
	"news-backend/pkg/logger"
)

var (
	ErrTagNotFound      = errors.New("tag not found")
	ErrTagInUse         = errors.New("tag cannot be deleted because it is used by articles")
	ErrDuplicateTagName = errors.New("duplicate tag name is not allowed")
)

var tagErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrTagNotFound:      {http.StatusNotFound, "TAG_NOT_FOUND", "The specified tag does not exist"},
	ErrTagInUse:         {http.StatusConflict, "TAG_IN_USE", "Cannot delete tag in use"},
	ErrDuplicateTagName: {http.StatusConflict, "DUPLICATE_TAG_NAME", "A tag with this name already exists"},
}

// HandleTagError writes the mapped HTTP response for a known tag error.
// Returns true when a response was written.
func HandleTagError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, cfg := range tagErrorMap {
		if errors.Is(err, known) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("unhandled tag error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
