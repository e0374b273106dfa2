package usecase

import (
	"context"

	"condopay-srv/internal/events"
)

// NotifyAdmins writes the event to every connected admin stream. Failed
// writes are logged and skipped; a dead stream is cleaned up by its own
// lifecycle path, never by the publisher.
func (uc *implUseCase) NotifyAdmins(ctx context.Context, eventType string, payload events.Payload) {
	for _, s := range uc.registry.AdminStreams() {
		if err := s.Send(eventType, payload); err != nil {
			uc.l.Debugf(ctx, "internal.events.usecase.NotifyAdmins: dropped %s write: %v", eventType, err)
		}
	}
}

// NotifyResident writes the event to every stream of one resident. A
// resident with no open streams is the expected steady state, so an absent
// or empty set is a silent no-op.
func (uc *implUseCase) NotifyResident(ctx context.Context, identifier string, eventType string, payload events.Payload) {
	streams := uc.registry.ResidentStreams(identifier)
	if len(streams) == 0 {
		return
	}
	for _, s := range streams {
		if err := s.Send(eventType, payload); err != nil {
			uc.l.Debugf(ctx, "internal.events.usecase.NotifyResident: dropped %s write: %v", eventType, err)
		}
	}
}
