package repository

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService defines the interface for token operations
type TokenService interface {
	GenerateToken(ctx context.Context, adminID, username string) (string, error)
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents JWT claims carried by an admin token
type Claims struct {
	AdminID  string `json:"adminID"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}
