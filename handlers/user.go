package handlers

import (
	"errors"
	"net/http"

	"school_admin_backend/apperr"
	"school_admin_backend/middleware"
	"school_admin_backend/models"
	"school_admin_backend/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	creds  *services.CredentialStore
	tokens *middleware.TokenService
}

func NewUserHandler(creds *services.CredentialStore, tokens *middleware.TokenService) *UserHandler {
	return &UserHandler{creds: creds, tokens: tokens}
}

// Login matches the submitted credentials against the credential rows and
// issues a token.
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}

	err := h.creds.Authenticate(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, apperr.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Invalid credentials"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.AuthResponse{Token: token})
}

// GetUsers returns every credential row, untransformed.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.creds.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// UpdateUser replaces the matching credential row's username and password.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation", "message": err.Error()})
		return
	}

	err := h.creds.UpdateUser(c.Request.Context(), req.CurrentUsername, req.CurrentPassword, req.NewUsername, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User updated successfully"})
}
