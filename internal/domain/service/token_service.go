package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued access tokens.
type Claims struct {
	UserID int    `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token bound to the user's
	// identity, email and a unique token id (jti).
	GenerateToken(userID int, email, role string) (string, error)

	// ValidateToken checks the validity of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
