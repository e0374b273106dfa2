package model

// Scope carries the authenticated caller's identity through usecases.
type Scope struct {
	Role        string
	Email       string
	ApartmentID string
}

// Scope roles.
const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
)

// IsAdmin reports whether the scope belongs to an administrator.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
