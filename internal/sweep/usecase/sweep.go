package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"condopay-srv/internal/events"
	"condopay-srv/internal/model"
)

func (uc *implUseCase) RunOnce(ctx context.Context, now time.Time) (int, error) {
	bills, err := uc.store.ListDueSoon(ctx, now, uc.cfg.DueSoonWindow)
	if err != nil {
		uc.l.Errorf(ctx, "internal.sweep.usecase.RunOnce.ListDueSoon: %v", err)
		return 0, err
	}

	delivered := 0
	for _, bill := range bills {
		if !uc.eligible(bill, now) {
			continue
		}

		// Reminder first, stamp second: a failed stamp must never suppress
		// the reminder, a failed reminder only costs one extra push later.
		if bill.ResidentEmail != "" {
			days := daysUntil(now, bill.DueDate)
			uc.publisher.NotifyResident(ctx, bill.ResidentEmail, events.TypeBoletoDueSoon, events.Payload{
				"billId":       bill.ID,
				"billNumber":   bill.Number,
				"dueDate":      bill.DueDate.Format(time.RFC3339),
				"amount":       bill.Amount,
				"daysUntilDue": days,
				"message":      fmt.Sprintf("Bill for unit %s is due in %d day(s)", bill.Number, days),
			})
			delivered++
		}

		if err := uc.store.MarkNotified(ctx, bill.ID, now); err != nil {
			// One bad row must not abort the pass.
			uc.l.Errorf(ctx, "internal.sweep.usecase.RunOnce.MarkNotified %s: %v", bill.ID, err)
			continue
		}
	}

	uc.l.Debugf(ctx, "internal.sweep.usecase.RunOnce: %d due soon, %d reminded", len(bills), delivered)
	return delivered, nil
}

// eligible reports whether a reminder is owed: never reminded before, or the
// last reminder is older than the cooldown.
func (uc *implUseCase) eligible(bill model.Apartment, now time.Time) bool {
	if bill.LastNotified == nil {
		return true
	}
	return bill.LastNotified.Before(now.Add(-uc.cfg.NotifyCooldown))
}

func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}
