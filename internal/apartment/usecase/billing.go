package usecase

import (
	"context"
	"time"

	"condopay-srv/internal/apartment"
	"condopay-srv/internal/apartment/repository"
	"condopay-srv/internal/events"
	"condopay-srv/internal/model"
)

func (uc *implUseCase) Pay(ctx context.Context, sc model.Scope, ip apartment.PayInput) (apartment.ApartmentOutput, error) {
	apt, err := uc.repo.Detail(ctx, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return apartment.ApartmentOutput{}, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Pay.Detail: %v", err)
		return apartment.ApartmentOutput{}, err
	}

	if !sc.IsAdmin() && apt.ID != sc.ApartmentID {
		return apartment.ApartmentOutput{}, apartment.ErrNotAllowed
	}
	if apt.Paid {
		return apartment.ApartmentOutput{}, apartment.ErrAlreadyPaid
	}

	amount := ip.Amount
	if amount == 0 {
		amount = apt.Amount
	}
	if amount <= 0 {
		return apartment.ApartmentOutput{}, apartment.ErrInvalidAmount
	}

	paidAt := uc.clock()
	settled, err := uc.repo.MarkPaid(ctx, repository.MarkPaidOptions{
		ID:     apt.ID,
		Amount: amount,
		Note:   ip.Note,
		At:     paidAt,
	})
	if err != nil {
		if err == repository.ErrNotFound {
			return apartment.ApartmentOutput{}, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Pay.MarkPaid: %v", err)
		return apartment.ApartmentOutput{}, err
	}

	uc.publisher.NotifyAdmins(ctx, events.TypePaymentConfirmed, events.Payload{
		"billId":     settled.ID,
		"billNumber": settled.Number,
		"amount":     amount,
		"paidAt":     paidAt.Format(time.RFC3339),
	})

	return apartment.ApartmentOutput{Apartment: settled}, nil
}

func (uc *implUseCase) Notify(ctx context.Context, sc model.Scope, ip apartment.NotifyInput) (apartment.NotifyOutput, error) {
	if !sc.IsAdmin() {
		return apartment.NotifyOutput{}, apartment.ErrNotAllowed
	}

	apt, err := uc.repo.Detail(ctx, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return apartment.NotifyOutput{}, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Notify.Detail: %v", err)
		return apartment.NotifyOutput{}, err
	}

	message := ip.Message
	if message == "" {
		message = "Your condominium bill is due, please arrange payment."
	}

	// Delivery to live streams happens before the stamp so that a failed
	// stamp cannot suppress the notice.
	if apt.ResidentEmail != "" {
		uc.publisher.NotifyResident(ctx, apt.ResidentEmail, events.TypeBoletoAlert, events.Payload{
			"billId":     apt.ID,
			"billNumber": apt.Number,
			"dueDate":    apt.DueDate.Format(time.RFC3339),
			"message":    message,
		})
	}

	now := uc.clock()
	if err := uc.repo.MarkNotified(ctx, apt.ID, now); err != nil {
		if err == repository.ErrNotFound {
			return apartment.NotifyOutput{}, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Notify.MarkNotified: %v", err)
		return apartment.NotifyOutput{}, err
	}

	return apartment.NotifyOutput{LastNotified: now}, nil
}

func (uc *implUseCase) History(ctx context.Context, sc model.Scope, id string) ([]model.Payment, error) {
	apt, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.History.Detail: %v", err)
		return nil, err
	}

	if !sc.IsAdmin() && apt.ID != sc.ApartmentID {
		return nil, apartment.ErrNotAllowed
	}

	payments, err := uc.repo.History(ctx, apt.ID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.apartment.usecase.History: %v", err)
		return nil, err
	}
	return payments, nil
}

func (uc *implUseCase) Dashboard(ctx context.Context, sc model.Scope) (apartment.DashboardOutput, error) {
	if !sc.IsAdmin() {
		return apartment.DashboardOutput{}, apartment.ErrNotAllowed
	}

	counts, err := uc.repo.CountByStatus(ctx, uc.clock())
	if err != nil {
		uc.l.Errorf(ctx, "internal.apartment.usecase.Dashboard: %v", err)
		return apartment.DashboardOutput{}, err
	}

	return apartment.DashboardOutput{
		Total:   counts.Total,
		Paid:    counts.Paid,
		Unpaid:  counts.Unpaid,
		Overdue: counts.Overdue,
	}, nil
}
