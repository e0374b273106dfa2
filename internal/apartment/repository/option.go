package repository

import (
	"time"

	"condopay-srv/internal/model"
)

type CreateOptions struct {
	Apartment model.Apartment
}

type UpdateOptions struct {
	Apartment model.Apartment
}

type MarkPaidOptions struct {
	ID     string
	Amount float64
	Note   string
	At     time.Time
}

type StatusCounts struct {
	Total   int64
	Paid    int64
	Unpaid  int64
	Overdue int64
}
