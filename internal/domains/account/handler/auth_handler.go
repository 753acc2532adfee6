package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-backend/internal/domains/account"
	"news-backend/internal/shared/response"
)

type AuthHandler struct {
	service account.Service
}

func NewAuthHandler(svc account.Service) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// AUTH: Login - POST /v1/auth/login
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Login(c *gin.Context) {
	var req account.LoginRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		account.HandleAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// ════════════════════════════════════════════════════════════════
// AUTH: Refresh - POST /v1/auth/refresh
// ════════════════════════════════════════════════════════════════

func (h *AuthHandler) Refresh(c *gin.Context) {
	var req account.RefreshRequest

	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err)
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req)
	if err != nil {
		account.HandleAccountError(c, err)
		return
	}

	response.Success(c, http.StatusOK, tokens)
}
