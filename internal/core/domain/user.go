package domain

import "time"

// UserRole distinguishes platform administrators from regular donors.
type UserRole string

const (
	RoleDonor UserRole = "DONOR"
	RoleAdmin UserRole = "ADMIN"
)

// User represents a donor or administrator account.
// The ledger never mutates users; they are a read-only reference.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"` // Empty for externally authenticated accounts
	Role         UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// IsAdmin reports whether the user has unrestricted access.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Actor is the authenticated "current user + role" fact supplied by the auth
// collaborator for a request. Services treat ADMIN as unrestricted and any
// other role as a donor scoped to their own records.
type Actor struct {
	UserID string
	Role   UserRole
}

// IsAdmin reports whether the actor has unrestricted access.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
