package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrFieldRequired      = errors.New("field required")
)
