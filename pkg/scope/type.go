package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role values carried inside a token.
const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
)

// Payload represents the JWT token claims.
type Payload struct {
	jwt.RegisteredClaims
	Role        string `json:"role"`
	Email       string `json:"email,omitempty"`
	ApartmentID string `json:"apartment_id,omitempty"`
}

type implManager struct {
	secretKey string
	expiresIn time.Duration
}
