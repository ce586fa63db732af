package models

import (
	"github.com/golang-jwt/jwt/v5"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// UserCredential is one row of the credential tab: [username, password].
// Passwords are stored and compared as plaintext rows; no uniqueness is
// enforced beyond first-match semantics during update.
type UserCredential struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	CurrentUsername string `json:"CurrentUsername" binding:"required"`
	NewUsername     string `json:"NewUsername" binding:"required"`
	CurrentPassword string `json:"CurrentPassword" binding:"required"`
	NewPassword     string `json:"NewPassword" binding:"required"`
}
