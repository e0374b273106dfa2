package model

import (
	"strings"
	"time"
)

// Apartment is a unit in the condominium together with its current bill.
// The current charge (Amount/DueDate/Paid) models one open bill at a time;
// settled charges are archived as Payment rows.
type Apartment struct {
	ID            string
	Number        string
	Floor         int
	ResidentName  string
	ResidentEmail string

	// Current charge
	Amount  float64
	DueDate time.Time
	Paid    bool
	PaidAt  *time.Time

	// LastNotified is the timestamp of the most recent due-soon or manual
	// notice for the current charge. Nil when never notified.
	LastNotified *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Payment is one entry in an apartment's payment history.
type Payment struct {
	ID          int64
	ApartmentID string
	Amount      float64
	PaidAt      time.Time
	Note        string
}

// NormalizeEmail lowercases and trims a resident email so that registry
// lookups and database filters agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
