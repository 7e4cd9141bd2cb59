package types

import "time"

// User roles. Stored as a small integer, mirroring the usuarios.role column.
const (
	RoleStandard = 0
	RoleElevated = 1
)

// User represents an account in the system. Users are provisioned through
// the /api/usuarios endpoints and referenced, never mutated, by tickets.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Name is the user's display or full name.
	Name string `json:"name" db:"name"`

	// Email is the user's email address. Unique across all users.
	Email string `json:"email" db:"email"`

	// Role indicates the user's authorization level:
	// 0 (standard) or 1 (elevated).
	Role int `json:"role" db:"role"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// UpdatedAt is the timestamp of the most recent update to the user account.
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
