package usecase

import (
	"context"
	"testing"
	"time"

	"condopay-srv/internal/apartment"
	"condopay-srv/internal/apartment/repository"
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

// fakeRepository is an in-memory Repository.
type fakeRepository struct {
	apartments map[string]model.Apartment
	payments   []model.Payment
}

func newFakeRepository(apts ...model.Apartment) *fakeRepository {
	r := &fakeRepository{apartments: make(map[string]model.Apartment)}
	for _, apt := range apts {
		r.apartments[apt.ID] = apt
	}
	return r
}

func (r *fakeRepository) List(ctx context.Context) ([]model.Apartment, error) {
	var apts []model.Apartment
	for _, apt := range r.apartments {
		apts = append(apts, apt)
	}
	return apts, nil
}

func (r *fakeRepository) Detail(ctx context.Context, id string) (model.Apartment, error) {
	apt, ok := r.apartments[id]
	if !ok {
		return model.Apartment{}, repository.ErrNotFound
	}
	return apt, nil
}

func (r *fakeRepository) GetByNumber(ctx context.Context, number string) (model.Apartment, error) {
	for _, apt := range r.apartments {
		if apt.Number == number {
			return apt, nil
		}
	}
	return model.Apartment{}, repository.ErrNotFound
}

func (r *fakeRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Apartment, error) {
	for _, apt := range r.apartments {
		if apt.Number == opts.Apartment.Number {
			return model.Apartment{}, repository.ErrDuplicate
		}
	}
	r.apartments[opts.Apartment.ID] = opts.Apartment
	return opts.Apartment, nil
}

func (r *fakeRepository) Update(ctx context.Context, opts repository.UpdateOptions) (model.Apartment, error) {
	if _, ok := r.apartments[opts.Apartment.ID]; !ok {
		return model.Apartment{}, repository.ErrNotFound
	}
	r.apartments[opts.Apartment.ID] = opts.Apartment
	return opts.Apartment, nil
}

func (r *fakeRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.apartments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.apartments, id)
	return nil
}

func (r *fakeRepository) MarkPaid(ctx context.Context, opts repository.MarkPaidOptions) (model.Apartment, error) {
	apt, ok := r.apartments[opts.ID]
	if !ok {
		return model.Apartment{}, repository.ErrNotFound
	}
	apt.Paid = true
	apt.PaidAt = &opts.At
	r.apartments[opts.ID] = apt
	r.payments = append(r.payments, model.Payment{
		ID:          int64(len(r.payments) + 1),
		ApartmentID: opts.ID,
		Amount:      opts.Amount,
		PaidAt:      opts.At,
		Note:        opts.Note,
	})
	return apt, nil
}

func (r *fakeRepository) MarkNotified(ctx context.Context, id string, at time.Time) error {
	apt, ok := r.apartments[id]
	if !ok {
		return repository.ErrNotFound
	}
	apt.LastNotified = &at
	r.apartments[id] = apt
	return nil
}

func (r *fakeRepository) History(ctx context.Context, id string) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range r.payments {
		if p.ApartmentID == id {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepository) ListDueSoon(ctx context.Context, now time.Time, window time.Duration) ([]model.Apartment, error) {
	return nil, nil
}

func (r *fakeRepository) CountByStatus(ctx context.Context, now time.Time) (repository.StatusCounts, error) {
	counts := repository.StatusCounts{}
	for _, apt := range r.apartments {
		counts.Total++
		if apt.Paid {
			counts.Paid++
			continue
		}
		counts.Unpaid++
		if apt.DueDate.Before(now) {
			counts.Overdue++
		}
	}
	return counts, nil
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

var (
	adminScope    = model.Scope{Role: model.RoleAdmin}
	residentScope = func(aptID, email string) model.Scope {
		return model.Scope{Role: model.RoleResident, Email: email, ApartmentID: aptID}
	}
)

func unpaidApartment(id string) model.Apartment {
	return model.Apartment{
		ID:            id,
		Number:        "101",
		Floor:         1,
		ResidentName:  "Ana Souza",
		ResidentEmail: "ana@example.com",
		Amount:        450,
		DueDate:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newBillingUseCase(repo repository.Repository, pub events.Publisher) *implUseCase {
	uc := New(&testLogger{}, repo, pub).(*implUseCase)
	uc.clock = func() time.Time {
		return time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	}
	return uc
}

func TestPayPublishesPaymentConfirmed(t *testing.T) {
	repo := newFakeRepository(unpaidApartment("apt-1"))
	pub := &fakePublisher{}
	uc := newBillingUseCase(repo, pub)

	out, err := uc.Pay(context.Background(), residentScope("apt-1", "ana@example.com"), apartment.PayInput{ID: "apt-1"})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if !out.Apartment.Paid || out.Apartment.PaidAt == nil {
		t.Fatalf("expected settled apartment, got %+v", out.Apartment)
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected one event, got %d", len(pub.published))
	}
	ev := pub.published[0]
	if ev.eventType != events.TypePaymentConfirmed {
		t.Errorf("expected %s, got %s", events.TypePaymentConfirmed, ev.eventType)
	}
	if ev.identifier != "" {
		t.Errorf("payment confirmations go to admins, got resident %q", ev.identifier)
	}
	if ev.payload["billNumber"] != "101" {
		t.Errorf("payload missing bill number: %+v", ev.payload)
	}
	// The zero amount defaults to the bill amount.
	if ev.payload["amount"] != 450.0 {
		t.Errorf("expected full bill amount, got %v", ev.payload["amount"])
	}

	history, _ := repo.History(context.Background(), "apt-1")
	if len(history) != 1 {
		t.Fatalf("expected one history row, got %d", len(history))
	}
}

func TestPayRejectsDoubleSettlement(t *testing.T) {
	apt := unpaidApartment("apt-1")
	apt.Paid = true
	repo := newFakeRepository(apt)
	pub := &fakePublisher{}
	uc := newBillingUseCase(repo, pub)

	if _, err := uc.Pay(context.Background(), adminScope, apartment.PayInput{ID: "apt-1"}); err != apartment.ErrAlreadyPaid {
		t.Fatalf("expected ErrAlreadyPaid, got %v", err)
	}
	if len(pub.published) != 0 {
		t.Fatalf("no event on rejected payment, got %d", len(pub.published))
	}
}

func TestPayRejectsForeignApartment(t *testing.T) {
	repo := newFakeRepository(unpaidApartment("apt-1"))
	uc := newBillingUseCase(repo, &fakePublisher{})

	_, err := uc.Pay(context.Background(), residentScope("apt-2", "bob@example.com"), apartment.PayInput{ID: "apt-1"})
	if err != apartment.ErrNotAllowed {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
}

func TestNotifyStampsAndPublishes(t *testing.T) {
	repo := newFakeRepository(unpaidApartment("apt-1"))
	pub := &fakePublisher{}
	uc := newBillingUseCase(repo, pub)

	out, err := uc.Notify(context.Background(), adminScope, apartment.NotifyInput{ID: "apt-1", Message: "pay up"})
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if out.LastNotified.IsZero() {
		t.Fatal("expected last-notified timestamp")
	}

	stored, _ := repo.Detail(context.Background(), "apt-1")
	if stored.LastNotified == nil || !stored.LastNotified.Equal(out.LastNotified) {
		t.Fatalf("stamp not persisted: %+v", stored.LastNotified)
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected one event, got %d", len(pub.published))
	}
	ev := pub.published[0]
	if ev.eventType != events.TypeBoletoAlert {
		t.Errorf("expected %s, got %s", events.TypeBoletoAlert, ev.eventType)
	}
	if ev.identifier != "ana@example.com" {
		t.Errorf("alert should target the resident, got %q", ev.identifier)
	}
	if ev.payload["message"] != "pay up" {
		t.Errorf("payload missing message: %+v", ev.payload)
	}
}

func TestNotifyRequiresAdmin(t *testing.T) {
	repo := newFakeRepository(unpaidApartment("apt-1"))
	uc := newBillingUseCase(repo, &fakePublisher{})

	_, err := uc.Notify(context.Background(), residentScope("apt-1", "ana@example.com"), apartment.NotifyInput{ID: "apt-1"})
	if err != apartment.ErrNotAllowed {
		t.Fatalf("expected ErrNotAllowed, got %v", err)
	}
}

func TestDashboardCounts(t *testing.T) {
	paid := unpaidApartment("apt-1")
	paid.Paid = true
	overdue := unpaidApartment("apt-2")
	overdue.Number = "102"
	overdue.DueDate = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	upcoming := unpaidApartment("apt-3")
	upcoming.Number = "103"

	repo := newFakeRepository(paid, overdue, upcoming)
	uc := newBillingUseCase(repo, &fakePublisher{})

	out, err := uc.Dashboard(context.Background(), adminScope)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	want := apartment.DashboardOutput{Total: 3, Paid: 1, Unpaid: 2, Overdue: 1}
	if out != want {
		t.Fatalf("expected %+v, got %+v", want, out)
	}
}
