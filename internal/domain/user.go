package domain

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleOfficer  Role = "officer"
	RoleCustomer Role = "customer"
)

// CanMutateTransfers reports whether the role may approve, hold, reject or
// advance transfers.
func (r Role) CanMutateTransfers() bool {
	return r == RoleAdmin || r == RoleOfficer
}

type User struct {
	ID           string
	Username     string
	PasswordHash string
	FullName     string
	Role         Role
	Email        string
	CreatedAt    time.Time
}

// Actor is the authenticated identity attached to a request, as decoded from
// the session token.
type Actor struct {
	UserID   string
	Username string
	Role     Role
}
