package domain

import "time"

// MaxPasswordBytes is the bcrypt input limit. Longer passwords are rejected
// instead of being silently truncated by the hash.
const MaxPasswordBytes = 72

// User models a registered account. Users are immutable once created.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is what a verified session token proves about its bearer.
type Identity struct {
	Username string
	UserID   int64
}
