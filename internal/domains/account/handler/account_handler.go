package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"news-backend/internal/domains/account"
	"news-backend/internal/shared/middleware"
	"news-backend/internal/shared/response"
)

type AccountHandler struct {
	service account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{
		service: svc,
	}
}

func parseAccountID(c *gin.Context) (int16, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 16)
	if err != nil {
		response.BadRequest(c, "Invalid account id")
		return 0, false
	}
	return int16(id), true
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /v1/accounts
// ════════════════════════════════════════════════════════════════

func (h *AccountHandler) GetAll(c *gin.Context) {
	var (
		accounts []account.AccountResponse
		err      error
	)

	if term := c.Query("search"); term != "" {
		accounts, err = h.service.Search(c.Request.Context(), term)
	} else {
		accounts, err = h.service.GetAll(c.Request.Context())
	}
	if err != nil {
		account.HandleAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, accounts)
}

// ════════════════════════════════════════════════════════════════
// READ: Me - GET /v1/accounts/me
// ════════════════════════════════════════════════════════════════

func (h *AccountHandler) Me(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		account.HandleAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /v1/accounts/:id
// ════════════════════════════════════════════════════════════════

func (h *AccountHandler) GetByID(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		account.HandleAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /v1/accounts
// ════════════════════════════════════════════════════════════════

func (h *AccountHandler) Create(c *gin.Context) {
	var req account.CreateAccountRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		account.HandleAccountError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /v1/accounts/:id
// ════════════════════════════════════════════════════════════════

func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	var req account.UpdateAccountRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		account.HandleAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /v1/accounts/:id
// ════════════════════════════════════════════════════════════════

func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseAccountID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		account.HandleAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
