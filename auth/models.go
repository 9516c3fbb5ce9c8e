// Package auth handles user accounts and authentication: registration,
// login, identity lookup, password hashing, and JWT issuance/verification.
package auth

import "time"

// User represents a registered account as stored in the database. The
// password hash never leaves the server; `json:"-"` keeps it out of every
// response body.
type User struct {
	ID           int        `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// Summary returns the public representation of the user included in auth
// responses.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
