package usecase

import (
	"context"

	"condopay-srv/internal/events"
)

// Subscribe validates the request, registers the stream and synchronously
// sends the "connected" handshake so the client can confirm liveness before
// the first real event. A rejected request leaves the registry untouched.
func (uc *implUseCase) Subscribe(ctx context.Context, input events.SubscribeInput) (events.Subscription, error) {
	if input.Writer == nil {
		return nil, events.ErrMissingWriter
	}

	identifier := normalizeIdentifier(input.Identifier)

	switch input.Role {
	case events.RoleAdmin:
		// always accepted
	case events.RoleResident:
		if identifier == "" {
			return nil, events.ErrMissingIdentifier
		}
	default:
		return nil, events.ErrInvalidRole
	}

	s := newStream(input.Role, identifier, input.Writer)

	switch input.Role {
	case events.RoleAdmin:
		uc.registry.RegisterAdmin(s)
	case events.RoleResident:
		uc.registry.RegisterResident(identifier, s)
	}

	handshake := events.Payload{"role": string(input.Role), "ok": true}
	if input.Role == events.RoleResident {
		handshake["identifier"] = identifier
	}
	if err := s.Send(events.TypeConnected, handshake); err != nil {
		uc.l.Warnf(ctx, "internal.events.usecase.Subscribe: handshake failed: %v", err)
		uc.remove(ctx, s)
		return nil, err
	}

	uc.l.Infof(ctx, "Stream connected: role=%s identifier=%s", input.Role, identifier)
	return &subscription{uc: uc, stream: s}, nil
}

// Stats returns a registry snapshot.
func (uc *implUseCase) Stats(ctx context.Context) events.Stats {
	admins, residents, unique := uc.registry.Counts()
	return events.Stats{
		AdminStreams:    admins,
		ResidentStreams: residents,
		UniqueResidents: unique,
	}
}

// Shutdown closes every open stream. Each close funnels through the same
// idempotent remove path the per-connection signals use.
func (uc *implUseCase) Shutdown(ctx context.Context) error {
	streams := uc.registry.AllStreams()
	for _, s := range streams {
		uc.remove(ctx, s)
	}
	uc.l.Infof(ctx, "Events shutdown: closed %d stream(s)", len(streams))
	return nil
}

// remove is the single CLOSED transition: marks the stream closed and takes
// it out of the registry. Safe to call more than once per stream; both a
// client close and a write error may trigger it for one disconnect.
func (uc *implUseCase) remove(ctx context.Context, s *Stream) {
	s.close()
	switch s.role {
	case events.RoleAdmin:
		uc.registry.UnregisterAdmin(s)
	case events.RoleResident:
		uc.registry.UnregisterResident(s.identifier, s)
	}
	uc.l.Debugf(ctx, "Stream closed: role=%s identifier=%s", s.role, s.identifier)
}

// subscription ties a stream to its owning usecase so the delivery layer can
// release it on any termination path.
type subscription struct {
	uc     *implUseCase
	stream *Stream
}

func (s *subscription) Done() <-chan struct{} {
	return s.stream.Done()
}

func (s *subscription) Close() {
	s.uc.remove(context.Background(), s.stream)
}
