package domain

import "time"

// Roles assignable to an account.
const (
	RolePatient = "PATIENT"
	RoleDonor   = "DONOR"
	RoleAdmin   = "ADMIN"
)

// User is an authenticated account. PasswordHash is a bcrypt digest and is
// never serialized back to clients.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	CreatedAt    time.Time
}
