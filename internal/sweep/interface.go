package sweep

import (
	"context"
	"time"
)

// UseCase is the due-date sweep: it finds unpaid bills whose due date is
// close and pushes a reminder to the resident's open streams.
type UseCase interface {
	// RunOnce executes a single sweep pass at the given reference time and
	// returns how many reminders were delivered.
	RunOnce(ctx context.Context, now time.Time) (int, error)
}
