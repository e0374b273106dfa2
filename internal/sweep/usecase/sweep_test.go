package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"condopay-srv/internal/events"
	"condopay-srv/internal/model"
)

// testLogger implements log.Logger for testing
type testLogger struct{}

func (m *testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *testLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeBillStore struct {
	bills      []model.Apartment
	stamped    map[string]time.Time
	listErr    error
	stampErrID string
}

func (s *fakeBillStore) ListDueSoon(ctx context.Context, now time.Time, window time.Duration) ([]model.Apartment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var due []model.Apartment
	for _, b := range s.bills {
		if !b.Paid && !b.DueDate.Before(now) && !b.DueDate.After(now.Add(window)) {
			due = append(due, b)
		}
	}
	return due, nil
}

func (s *fakeBillStore) MarkNotified(ctx context.Context, id string, at time.Time) error {
	if id == s.stampErrID {
		return errors.New("stamp failed")
	}
	if s.stamped == nil {
		s.stamped = make(map[string]time.Time)
	}
	s.stamped[id] = at
	return nil
}

type publishedEvent struct {
	identifier string
	eventType  string
	payload    events.Payload
}

type fakePublisher struct {
	published []publishedEvent
}

func (p *fakePublisher) NotifyAdmins(ctx context.Context, eventType string, payload events.Payload) {
	p.published = append(p.published, publishedEvent{eventType: eventType, payload: payload})
}

func (p *fakePublisher) NotifyResident(ctx context.Context, identifier string, eventType string, payload events.Payload) {
	p.published = append(p.published, publishedEvent{identifier: identifier, eventType: eventType, payload: payload})
}

var testCfg = Config{
	DueSoonWindow:  120 * time.Hour,
	NotifyCooldown: 20 * time.Hour,
}

func bill(id, email string, due time.Time, lastNotified *time.Time) model.Apartment {
	return model.Apartment{
		ID:            id,
		Number:        "unit-" + id,
		ResidentEmail: email,
		Amount:        450,
		DueDate:       due,
		LastNotified:  lastNotified,
	}
}

func TestRunOnceRemindsDueSoonBills(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := &fakeBillStore{bills: []model.Apartment{
		bill("a", "ana@example.com", now.Add(3*24*time.Hour), nil),
		// Outside the window, must be skipped.
		bill("b", "bob@example.com", now.Add(10*24*time.Hour), nil),
	}}
	pub := &fakePublisher{}
	uc := New(&testLogger{}, store, pub, testCfg)

	delivered, err := uc.RunOnce(context.Background(), now)
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if delivered != 1 {
		t.Fatalf("expected 1 reminder, got %d", delivered)
	}

	ev := pub.published[0]
	if ev.eventType != events.TypeBoletoDueSoon {
		t.Errorf("expected %s, got %s", events.TypeBoletoDueSoon, ev.eventType)
	}
	if ev.identifier != "ana@example.com" {
		t.Errorf("expected reminder for ana, got %q", ev.identifier)
	}
	if got := ev.payload["daysUntilDue"]; got != 3 {
		t.Errorf("expected 3 days until due, got %v", got)
	}
	if _, ok := store.stamped["a"]; !ok {
		t.Error("reminded bill must be stamped")
	}
}

func TestRunOnceHonorsCooldown(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-10 * time.Hour)
	stale := now.Add(-21 * time.Hour)

	store := &fakeBillStore{bills: []model.Apartment{
		bill("recent", "ana@example.com", now.Add(48*time.Hour), &recent),
		bill("stale", "bob@example.com", now.Add(48*time.Hour), &stale),
	}}
	pub := &fakePublisher{}
	uc := New(&testLogger{}, store, pub, testCfg)

	delivered, err := uc.RunOnce(context.Background(), now)
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if delivered != 1 {
		t.Fatalf("expected only the stale bill reminded, got %d", delivered)
	}
	if pub.published[0].identifier != "bob@example.com" {
		t.Errorf("expected bob reminded, got %q", pub.published[0].identifier)
	}
	if _, ok := store.stamped["recent"]; ok {
		t.Error("bill inside cooldown must not be restamped")
	}
}

func TestRunOnceStampsBillWithoutEmail(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := &fakeBillStore{bills: []model.Apartment{
		bill("noemail", "", now.Add(24*time.Hour), nil),
	}}
	pub := &fakePublisher{}
	uc := New(&testLogger{}, store, pub, testCfg)

	delivered, err := uc.RunOnce(context.Background(), now)
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if delivered != 0 {
		t.Fatalf("no reminder deliverable without email, got %d", delivered)
	}
	if len(pub.published) != 0 {
		t.Fatalf("nothing should be published, got %d events", len(pub.published))
	}
	// The stamp still advances so the sweep does not reconsider the bill
	// every pass.
	if _, ok := store.stamped["noemail"]; !ok {
		t.Error("bill without email must still be stamped")
	}
}

func TestRunOnceStampErrorDoesNotAbortPass(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := &fakeBillStore{
		bills: []model.Apartment{
			bill("bad", "ana@example.com", now.Add(24*time.Hour), nil),
			bill("good", "bob@example.com", now.Add(24*time.Hour), nil),
		},
		stampErrID: "bad",
	}
	pub := &fakePublisher{}
	uc := New(&testLogger{}, store, pub, testCfg)

	delivered, err := uc.RunOnce(context.Background(), now)
	if err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if delivered != 2 {
		t.Fatalf("both reminders should be delivered, got %d", delivered)
	}
	if _, ok := store.stamped["good"]; !ok {
		t.Error("healthy bill must be stamped despite sibling failure")
	}
}

func TestRunOnceListErrorPropagates(t *testing.T) {
	store := &fakeBillStore{listErr: errors.New("db down")}
	uc := New(&testLogger{}, store, &fakePublisher{}, testCfg)

	if _, err := uc.RunOnce(context.Background(), time.Now()); err == nil {
		t.Fatal("expected error when listing fails")
	}
}
