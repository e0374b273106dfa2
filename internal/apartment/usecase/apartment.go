package usecase

import (
	"context"
	"strings"
	"time"

	"condopay-srv/internal/apartment"
	"condopay-srv/internal/apartment/repository"
	"condopay-srv/internal/model"
	pkgPostgre "condopay-srv/pkg/postgre"
)

const defaultDueIn = 30 * 24 * time.Hour

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Apartment, error) {
	if !sc.IsAdmin() {
		return nil, apartment.ErrNotAllowed
	}

	apts, err := uc.repo.List(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.apartment.usecase.List: %v", err)
		return nil, err
	}
	return apts, nil
}

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (apartment.ApartmentOutput, error) {
	apt, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return apartment.ApartmentOutput{}, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Detail: %v", err)
		return apartment.ApartmentOutput{}, err
	}

	// Residents may only look at their own unit.
	if !sc.IsAdmin() && apt.ID != sc.ApartmentID {
		return apartment.ApartmentOutput{}, apartment.ErrNotAllowed
	}
	return apartment.ApartmentOutput{Apartment: apt}, nil
}

func (uc *implUseCase) DetailMine(ctx context.Context, sc model.Scope) (apartment.ApartmentOutput, error) {
	if sc.ApartmentID == "" {
		return apartment.ApartmentOutput{}, apartment.ErrApartmentNotFound
	}

	apt, err := uc.repo.Detail(ctx, sc.ApartmentID)
	if err != nil {
		if err == repository.ErrNotFound {
			return apartment.ApartmentOutput{}, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.DetailMine: %v", err)
		return apartment.ApartmentOutput{}, err
	}
	return apartment.ApartmentOutput{Apartment: apt}, nil
}

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, ip apartment.CreateInput) (apartment.ApartmentOutput, error) {
	if !sc.IsAdmin() {
		return apartment.ApartmentOutput{}, apartment.ErrNotAllowed
	}
	if strings.TrimSpace(ip.Number) == "" || ip.Floor <= 0 {
		return apartment.ApartmentOutput{}, apartment.ErrFieldRequired
	}
	if ip.Amount < 0 {
		return apartment.ApartmentOutput{}, apartment.ErrInvalidAmount
	}

	if _, err := uc.repo.GetByNumber(ctx, ip.Number); err == nil {
		return apartment.ApartmentOutput{}, apartment.ErrApartmentExists
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.apartment.usecase.Create.GetByNumber: %v", err)
		return apartment.ApartmentOutput{}, err
	}

	now := uc.clock()
	dueDate := now.Add(defaultDueIn)
	if ip.DueDate != nil {
		dueDate = *ip.DueDate
	}

	var paidAt *time.Time
	if ip.Paid {
		paidAt = &now
	}

	apt, err := uc.repo.Create(ctx, repository.CreateOptions{
		Apartment: model.Apartment{
			ID:            pkgPostgre.NewUUID(),
			Number:        strings.TrimSpace(ip.Number),
			Floor:         ip.Floor,
			ResidentName:  strings.TrimSpace(ip.ResidentName),
			ResidentEmail: model.NormalizeEmail(ip.ResidentEmail),
			Amount:        ip.Amount,
			DueDate:       dueDate,
			Paid:          ip.Paid,
			PaidAt:        paidAt,
		},
	})
	if err != nil {
		if err == repository.ErrDuplicate {
			return apartment.ApartmentOutput{}, apartment.ErrApartmentExists
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Create: %v", err)
		return apartment.ApartmentOutput{}, err
	}
	return apartment.ApartmentOutput{Apartment: apt}, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, ip apartment.UpdateInput) (apartment.ApartmentOutput, error) {
	if !sc.IsAdmin() {
		return apartment.ApartmentOutput{}, apartment.ErrNotAllowed
	}

	apt, err := uc.repo.Detail(ctx, ip.ID)
	if err != nil {
		if err == repository.ErrNotFound {
			return apartment.ApartmentOutput{}, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Update.Detail: %v", err)
		return apartment.ApartmentOutput{}, err
	}

	if ip.ResidentName != nil {
		apt.ResidentName = strings.TrimSpace(*ip.ResidentName)
	}
	if ip.ResidentEmail != nil {
		apt.ResidentEmail = model.NormalizeEmail(*ip.ResidentEmail)
	}
	if ip.Amount != nil {
		if *ip.Amount < 0 {
			return apartment.ApartmentOutput{}, apartment.ErrInvalidAmount
		}
		apt.Amount = *ip.Amount
	}
	if ip.DueDate != nil {
		apt.DueDate = *ip.DueDate
	}
	if ip.Paid != nil {
		apt.Paid = *ip.Paid
		if *ip.Paid {
			if apt.PaidAt == nil {
				now := uc.clock()
				apt.PaidAt = &now
			}
		} else {
			apt.PaidAt = nil
		}
	}

	updated, err := uc.repo.Update(ctx, repository.UpdateOptions{Apartment: apt})
	if err != nil {
		if err == repository.ErrNotFound {
			return apartment.ApartmentOutput{}, apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Update: %v", err)
		return apartment.ApartmentOutput{}, err
	}
	return apartment.ApartmentOutput{Apartment: updated}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if !sc.IsAdmin() {
		return apartment.ErrNotAllowed
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		if err == repository.ErrNotFound {
			return apartment.ErrApartmentNotFound
		}
		uc.l.Errorf(ctx, "internal.apartment.usecase.Delete: %v", err)
		return err
	}
	return nil
}
