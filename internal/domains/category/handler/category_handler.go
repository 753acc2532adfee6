package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-backend/internal/domains/category"
	"news-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{
		service: svc,
	}
}

func parseCategoryID(c *gin.Context) (int16, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 16)
	if err != nil {
		response.BadRequest(c, "Invalid category id")
		return 0, false
	}
	return int16(id), true
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /v1/categories
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) GetAll(c *gin.Context) {
	var (
		categories []category.Category
		err        error
	)

	if term := c.Query("search"); term != "" {
		categories, err = h.service.Search(c.Request.Context(), term)
	} else {
		categories, err = h.service.GetAll(c.Request.Context())
	}
	if err != nil {
		category.HandleCategoryError(c, err)
		return
	}

	response.Success(c, http.StatusOK, categories)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseCategoryID(c)
	if !ok {
		return
	}

	cat, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		category.HandleCategoryError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cat)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/categories
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		category.HandleCategoryError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseCategoryID(c)
	if !ok {
		return
	}

	var req category.UpdateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		category.HandleCategoryError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/categories/:id
// ════════════════════════════════════════════════════════════════

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseCategoryID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		category.HandleCategoryError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
