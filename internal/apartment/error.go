package apartment

import "errors"

var (
	ErrApartmentNotFound = errors.New("apartment not found")
	ErrApartmentExists   = errors.New("apartment already exists")
	ErrFieldRequired     = errors.New("field required")
	ErrInvalidAmount     = errors.New("payment amount must be positive")
	ErrAlreadyPaid       = errors.New("bill already paid")
	ErrNotAllowed        = errors.New("operation not allowed for this scope")
)
