package usecase

import (
	"context"
	"strings"
	"testing"

	"condopay-srv/internal/events"
)

func newTestUseCase() (*implUseCase, *Registry) {
	registry := NewRegistry()
	return New(&testLogger{}, registry).(*implUseCase), registry
}

func TestNotifyAdminsDeliversOneCopyEach(t *testing.T) {
	uc, registry := newTestUseCase()

	writers := make([]*testWriter, 3)
	for i := range writers {
		writers[i] = &testWriter{}
		registry.RegisterAdmin(newStream(events.RoleAdmin, "", writers[i]))
	}

	uc.NotifyAdmins(context.Background(), events.TypePaymentConfirmed, events.Payload{
		"billNumber": "101",
		"amount":     450.0,
	})

	for i, w := range writers {
		out := w.buf.String()
		if got := strings.Count(out, "event:payment_confirmed"); got != 1 {
			t.Fatalf("writer %d: expected exactly one event frame, got %d in %q", i, got, out)
		}
		if !strings.Contains(out, `"type":"payment_confirmed"`) {
			t.Errorf("writer %d: body missing type field: %q", i, out)
		}
		if !strings.Contains(out, `"billNumber":"101"`) {
			t.Errorf("writer %d: body missing payload field: %q", i, out)
		}
		if w.flushes == 0 {
			t.Errorf("writer %d: expected flush after write", i)
		}
	}
}

func TestNotifyResidentIsIsolated(t *testing.T) {
	uc, registry := newTestUseCase()

	target := &testWriter{}
	other := &testWriter{}
	admin := &testWriter{}
	registry.RegisterResident("ana@example.com", newStream(events.RoleResident, "ana@example.com", target))
	registry.RegisterResident("bob@example.com", newStream(events.RoleResident, "bob@example.com", other))
	registry.RegisterAdmin(newStream(events.RoleAdmin, "", admin))

	uc.NotifyResident(context.Background(), "Ana@Example.com", events.TypeBoletoAlert, events.Payload{
		"message": "payment due",
	})

	if !strings.Contains(target.buf.String(), "event:boleto_alert") {
		t.Fatalf("target resident did not receive event: %q", target.buf.String())
	}
	if other.buf.Len() != 0 {
		t.Errorf("other resident received unrelated event: %q", other.buf.String())
	}
	if admin.buf.Len() != 0 {
		t.Errorf("admin received resident-targeted event: %q", admin.buf.String())
	}
}

func TestNotifyResidentNoStreamsIsNoOp(t *testing.T) {
	uc, _ := newTestUseCase()

	// Must not panic or register anything.
	uc.NotifyResident(context.Background(), "nobody@example.com", events.TypeBoletoDueSoon, events.Payload{})

	if stats := uc.Stats(context.Background()); stats.ResidentStreams != 0 {
		t.Fatalf("publish must not create registry entries, got %+v", stats)
	}
}

func TestPublisherNeverUnregistersFailedStreams(t *testing.T) {
	uc, registry := newTestUseCase()

	dead := &testWriter{failing: true}
	live := &testWriter{}
	registry.RegisterAdmin(newStream(events.RoleAdmin, "", dead))
	registry.RegisterAdmin(newStream(events.RoleAdmin, "", live))

	uc.NotifyAdmins(context.Background(), events.TypePaymentConfirmed, events.Payload{"amount": 1.0})

	// The failed stream is marked closed but stays registered until its
	// lifecycle owner removes it.
	if got := len(registry.AdminStreams()); got != 2 {
		t.Fatalf("publisher must not evict streams, got %d registered", got)
	}
	if !strings.Contains(live.buf.String(), "event:payment_confirmed") {
		t.Errorf("healthy stream should still receive events: %q", live.buf.String())
	}
}

func TestSendAfterCloseReturnsErrStreamClosed(t *testing.T) {
	s := newStream(events.RoleAdmin, "", &testWriter{})
	s.close()

	if err := s.Send(events.TypeConnected, events.Payload{}); err != events.ErrStreamClosed {
		t.Fatalf("expected ErrStreamClosed, got %v", err)
	}
}
