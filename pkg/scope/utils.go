package scope

import "context"

type payloadKey struct{}

// SetPayloadToContext stores the verified token payload in the context.
func SetPayloadToContext(ctx context.Context, payload Payload) context.Context {
	return context.WithValue(ctx, payloadKey{}, payload)
}

// GetPayloadFromContext extracts the token payload from the context.
// The second return value reports whether a payload was present.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(Payload)
	return payload, ok
}
