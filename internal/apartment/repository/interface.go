package repository

import (
	"context"
	"errors"
	"time"

	"condopay-srv/internal/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Repository is the persistence boundary for apartments and their payment
// history. Implementations must be safe for concurrent use.
type Repository interface {
	List(ctx context.Context) ([]model.Apartment, error)
	Detail(ctx context.Context, id string) (model.Apartment, error)
	GetByNumber(ctx context.Context, number string) (model.Apartment, error)
	Create(ctx context.Context, opts CreateOptions) (model.Apartment, error)
	Update(ctx context.Context, opts UpdateOptions) (model.Apartment, error)
	Delete(ctx context.Context, id string) error

	// MarkPaid settles the current charge and appends a history row in one
	// transaction.
	MarkPaid(ctx context.Context, opts MarkPaidOptions) (model.Apartment, error)

	// MarkNotified stamps the last-notified timestamp on the apartment.
	MarkNotified(ctx context.Context, id string, at time.Time) error

	History(ctx context.Context, id string) ([]model.Payment, error)

	// ListDueSoon returns unpaid apartments whose due date falls within
	// [now, now+window].
	ListDueSoon(ctx context.Context, now time.Time, window time.Duration) ([]model.Apartment, error)

	// CountByStatus returns dashboard counters; overdue means unpaid with a
	// due date before now.
	CountByStatus(ctx context.Context, now time.Time) (StatusCounts, error)
}
