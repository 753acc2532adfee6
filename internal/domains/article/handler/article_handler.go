package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"news-backend/internal/domains/article"
	"news-backend/internal/shared/middleware"
	"news-backend/internal/shared/response"
)

type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(svc article.Service) *ArticleHandler {
	return &ArticleHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: Search - GET /v1/articles?title=&author=&category=&status=&from=&to=
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) Search(c *gin.Context) {
	filter, err := parseSearchFilter(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	summaries, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summaries)
}

func parseSearchFilter(c *gin.Context) (article.SearchFilter, error) {
	var filter article.SearchFilter

	if v := c.Query("title"); v != "" {
		filter.Title = &v
	}
	if v := c.Query("author"); v != "" {
		filter.AuthorName = &v
	}
	if v := c.Query("category"); v != "" {
		filter.CategoryName = &v
	}
	if v := c.Query("status"); v != "" {
		status, err := strconv.ParseBool(v)
		if err != nil {
			return filter, errInvalidQuery("status")
		}
		filter.Status = &status
	}
	if v := c.Query("from"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return filter, errInvalidQuery("from")
		}
		filter.CreatedFrom = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			return filter, errInvalidQuery("to")
		}
		filter.CreatedTo = &t
	}

	return filter, nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

type queryError string

func (e queryError) Error() string { return string(e) }

func errInvalidQuery(param string) error {
	return queryError("invalid query parameter: " + param)
}

// ════════════════════════════════════════════════════════════════
// READ: ListActive - GET /v1/articles/active
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) ListActive(c *gin.Context) {
	summaries, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summaries)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/articles/:id
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.GetByID(c.Request.Context(), id, middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: GetRelated - GET /v1/articles/:id/related?limit=
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) GetRelated(c *gin.Context) {
	id := c.Param("id")

	limit := article.DefaultRelatedLimit
	if v := c.Query("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 0 {
			response.BadRequest(c, "invalid query parameter: limit")
			return
		}
		if l > article.MaxRelatedLimit {
			l = article.MaxRelatedLimit
		}
		limit = l
	}

	summaries, err := h.service.FindRelated(c.Request.Context(), id, limit)
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summaries)
}

// ════════════════════════════════════════════════════════════════
// READ: ListMine - GET /v1/articles/my
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) ListMine(c *gin.Context) {
	summaries, err := h.service.ListMine(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summaries)
}

// ════════════════════════════════════════════════════════════════
// READ: ListByCategory - GET /v1/categories/:id/articles
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) ListByCategory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 16)
	if err != nil {
		response.BadRequest(c, "Invalid category id")
		return
	}

	summaries, err := h.service.ListByCategory(c.Request.Context(), int16(id))
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, summaries)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/articles
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) Create(c *gin.Context) {
	var req article.CreateArticleRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req, middleware.CallerID(c))
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/articles/:id
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req article.UpdateArticleRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req, middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/articles/:id
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := h.service.Delete(c.Request.Context(), id, middleware.CallerID(c), middleware.CallerRole(c))
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": deleted})
}

// ════════════════════════════════════════════════════════════════
// CREATE: Duplicate - POST /v1/articles/:id/duplicate
// ════════════════════════════════════════════════════════════════

func (h *ArticleHandler) Duplicate(c *gin.Context) {
	id := c.Param("id")

	resp, err := h.service.Duplicate(c.Request.Context(), id, middleware.CallerID(c))
	if err != nil {
		article.HandleArticleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}
