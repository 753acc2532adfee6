package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-backend/internal/domains/tag"
	"news-backend/internal/shared/response"
)

type TagHandler struct {
	service tag.Service
}

func NewTagHandler(svc tag.Service) *TagHandler {
	return &TagHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /v1/tags?search=
// ════════════════════════════════════════════════════════════════

func (h *TagHandler) GetAll(c *gin.Context) {
	var (
		tags []tag.Tag
		err  error
	)

	if term := c.Query("search"); term != "" {
		tags, err = h.service.Search(c.Request.Context(), term)
	} else {
		tags, err = h.service.GetAll(c.Request.Context())
	}
	if err != nil {
		tag.HandleTagError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tags)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/tags/:id
// ════════════════════════════════════════════════════════════════

func (h *TagHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tag id")
		return
	}

	t, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		tag.HandleTagError(c, err)
		return
	}

	response.Success(c, http.StatusOK, t)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/tags
// ════════════════════════════════════════════════════════════════

func (h *TagHandler) Create(c *gin.Context) {
	var req tag.CreateTagRequest

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
		tag.HandleTagError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/tags/:id
// ════════════════════════════════════════════════════════════════

func (h *TagHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tag id")
		return
	}

	var req tag.UpdateTagRequest
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
		tag.HandleTagError(c, err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/tags/:id
// ════════════════════════════════════════════════════════════════

func (h *TagHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid tag id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		tag.HandleTagError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
