package usecase

import (
	"context"
	"time"

	"condopay-srv/internal/events"
	"condopay-srv/internal/model"
	"condopay-srv/internal/sweep"
	pkgLog "condopay-srv/pkg/log"
)

// BillStore is the slice of the apartment repository the sweep needs.
type BillStore interface {
	ListDueSoon(ctx context.Context, now time.Time, window time.Duration) ([]model.Apartment, error)
	MarkNotified(ctx context.Context, id string, at time.Time) error
}

// Config tunes the sweep.
type Config struct {
	// DueSoonWindow is how far ahead of the due date a bill counts as due
	// soon.
	DueSoonWindow time.Duration
	// NotifyCooldown is the minimum gap between two reminders for the same
	// bill.
	NotifyCooldown time.Duration
}

type implUseCase struct {
	l         pkgLog.Logger
	store     BillStore
	publisher events.Publisher
	cfg       Config
}

func New(l pkgLog.Logger, store BillStore, publisher events.Publisher, cfg Config) sweep.UseCase {
	return &implUseCase{
		l:         l,
		store:     store,
		publisher: publisher,
		cfg:       cfg,
	}
}
