package events

import "context"

// Publisher fans one logical event out to every matching open stream.
// Publishing is fire-and-forget: write failures are swallowed (observable in
// logs only) and publishing to a target with no open streams is a no-op.
type Publisher interface {
	// NotifyAdmins delivers the event to every connected admin stream.
	NotifyAdmins(ctx context.Context, eventType string, payload Payload)
	// NotifyResident delivers the event to every stream of one resident.
	// The identifier is case-insensitive.
	NotifyResident(ctx context.Context, identifier string, eventType string, payload Payload)
}

// UseCase is the stream lifecycle and fan-out domain.
type UseCase interface {
	Publisher

	// Subscribe validates the request, registers a new stream and sends the
	// "connected" handshake. The caller owns the returned Subscription and
	// must Close it on every termination path.
	Subscribe(ctx context.Context, input SubscribeInput) (Subscription, error)

	// Stats returns a snapshot of the registry.
	Stats(ctx context.Context) Stats

	// Shutdown closes every open stream.
	Shutdown(ctx context.Context) error
}
