package scope

import "time"

const (
	// DefaultTokenExpiration is the default JWT token lifetime.
	DefaultTokenExpiration = time.Hour * 24
)

// Manager defines the interface for JWT token management.
// Implementations are safe for concurrent use.
type Manager interface {
	// Verify verifies a JWT token and returns the payload if valid.
	Verify(token string) (Payload, error)
	// CreateToken creates a new signed JWT token with the provided payload.
	CreateToken(payload Payload) (string, error)
}

// New creates a new scope Manager with the provided secret key.
// Panics if secretKey is empty.
func New(secretKey string) Manager {
	if secretKey == "" {
		panic("scope: secret key cannot be empty")
	}
	return &implManager{secretKey: secretKey, expiresIn: DefaultTokenExpiration}
}
