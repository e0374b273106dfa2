package apartment

import (
	"context"

	"condopay-srv/internal/model"
)

// UseCase is the apartment billing domain: unit CRUD for administrators,
// bill payment, manual notices, and the dashboard summary.
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.Apartment, error)
	Detail(ctx context.Context, sc model.Scope, id string) (ApartmentOutput, error)
	DetailMine(ctx context.Context, sc model.Scope) (ApartmentOutput, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (ApartmentOutput, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (ApartmentOutput, error)
	Delete(ctx context.Context, sc model.Scope, id string) error

	// Pay settles the current charge, archives it in the payment history and
	// notifies all connected admin dashboards.
	Pay(ctx context.Context, sc model.Scope, ip PayInput) (ApartmentOutput, error)

	// Notify sends a manual due notice to the resident's live streams and
	// stamps the apartment's last-notified timestamp.
	Notify(ctx context.Context, sc model.Scope, ip NotifyInput) (NotifyOutput, error)

	History(ctx context.Context, sc model.Scope, id string) ([]model.Payment, error)
	Dashboard(ctx context.Context, sc model.Scope) (DashboardOutput, error)
}
