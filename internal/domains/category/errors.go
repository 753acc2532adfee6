package category

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-backend/internal/shared/response"
	"news-backend/pkg/logger"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryInUse     = errors.New("category cannot be deleted because articles reference it")
	ErrParentNotFound    = errors.New("parent category not found")
	ErrParentChangeInUse = errors.New("category parent cannot change while articles reference it")
	ErrSelfParent        = errors.New("category cannot be its own parent")
	ErrDuplicateName     = errors.New("duplicate category name is not allowed")
)

var categoryErrorMap = map[error]struct {
	Status  int
	Code    string
	Message string
}{
	ErrCategoryNotFound:  {http.StatusNotFound, "CATEGORY_NOT_FOUND", "The specified category does not exist"},
	ErrCategoryInUse:     {http.StatusConflict, "CATEGORY_IN_USE", "Cannot delete category in use"},
	ErrParentNotFound:    {http.StatusBadRequest, "PARENT_NOT_FOUND", "The parent category does not exist"},
	ErrParentChangeInUse: {http.StatusConflict, "PARENT_CHANGE_IN_USE", "Cannot move category while articles reference it"},
	ErrSelfParent:        {http.StatusBadRequest, "SELF_PARENT", "A category cannot be its own parent"},
	ErrDuplicateName:     {http.StatusConflict, "DUPLICATE_CATEGORY_NAME", "A category with this name already exists"},
}

// HandleCategoryError writes the mapped HTTP response for a known
// category error. Returns true when a response was written.
func HandleCategoryError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	for known, cfg := range categoryErrorMap {
		if errors.Is(err, known) {
			response.ErrorResponse(c, cfg.Status, cfg.Code, cfg.Message)
			return true
		}
	}

	logger.Error("unhandled category error", err)
	response.InternalServerError(c, "Internal server error")
	return true
}
