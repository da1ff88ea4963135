package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/daltekdz/daltekdz_bot/internal/httpapi/dto"
)

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login POST /api/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	token, expiresAt, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{AdminToken: token, ExpiresAt: expiresAt})
}
