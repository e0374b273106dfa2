package auth

import "context"

// UseCase issues access tokens for the two caller roles.
type UseCase interface {
	// AdminLogin checks the configured administrator credentials.
	AdminLogin(ctx context.Context, ip AdminLoginInput) (LoginOutput, error)

	// ResidentLogin verifies that the email matches the apartment on file and
	// issues a resident token bound to that unit.
	ResidentLogin(ctx context.Context, ip ResidentLoginInput) (LoginOutput, error)
}
