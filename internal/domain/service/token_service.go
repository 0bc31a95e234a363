package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the parsed JWT claims.
type Claims struct {
	UserID uuid.UUID
	Role   string
	Type   string
	jwt.RegisteredClaims
}

// TokenService issues and validates JWTs.
type TokenService interface {
	GenerateTokens(userID uuid.UUID, role string) (accessToken string, refreshToken string, err error)
	ValidateToken(tokenString string) (*Claims, error)
	GetRefreshTokenDuration() time.Duration
}
