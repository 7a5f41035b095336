package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is an operator of the application (single-tenant).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past the auth usecase
	Name         string
	Role         string // admin, staff
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
