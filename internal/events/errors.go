package events

import "errors"

var (
	// ErrInvalidRole is returned when the subscription role is neither
	// admin nor resident.
	ErrInvalidRole = errors.New("invalid subscription role")

	// ErrMissingIdentifier is returned when a resident subscription carries
	// no identifier. No registry mutation happens in that case.
	ErrMissingIdentifier = errors.New("resident identifier is required")

	// ErrMissingWriter is returned when the subscription has no transport writer.
	ErrMissingWriter = errors.New("stream writer is required")

	// ErrStreamClosed is returned when writing to an already closed stream.
	ErrStreamClosed = errors.New("stream closed")
)
