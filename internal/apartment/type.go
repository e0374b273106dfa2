package apartment

import (
	"time"

	"condopay-srv/internal/model"
)

type CreateInput struct {
	Number        string
	Floor         int
	ResidentName  string
	ResidentEmail string
	Amount        float64
	// DueDate defaults to 30 days from creation when nil.
	DueDate *time.Time
	Paid    bool
}

type UpdateInput struct {
	ID            string
	ResidentName  *string
	ResidentEmail *string
	Amount        *float64
	DueDate       *time.Time
	Paid          *bool
}

type PayInput struct {
	ID     string
	Amount float64
	Note   string
}

type NotifyInput struct {
	ID      string
	Message string
}

type ApartmentOutput struct {
	Apartment model.Apartment
}

type NotifyOutput struct {
	LastNotified time.Time
}

type DashboardOutput struct {
	Total   int64
	Paid    int64
	Unpaid  int64
	Overdue int64
}
