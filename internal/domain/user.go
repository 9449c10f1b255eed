package domain

import "time"

type User struct {
	ID           int32      `json:"id"`
	Username     string     `json:"username"`
	Name         string     `json:"name"`
	LastName     string     `json:"user_last_name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	IsAdmin      bool       `json:"admin"`
	CreatedAt    time.Time  `json:"user_created_at"`
	UpdatedAt    *time.Time `json:"user_updated_at,omitempty"`
	DeletedAt    *time.Time `json:"user_deleted_at,omitempty"`
}

// Actor is the authenticated caller of a lifecycle operation. IsAdmin is
// normalized to a bool once, at token issuance; downstream code never
// re-interprets the raw admin column.
type Actor struct {
	ID      int32
	IsAdmin bool
}

// CanActFor reports whether the actor may operate on resources owned by the
// given user: the owner themselves, or any administrator.
func (a Actor) CanActFor(userID int32) bool {
	return a.IsAdmin || a.ID == userID
}
