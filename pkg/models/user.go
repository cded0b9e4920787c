package models

import "time"

// User represents a registered account. Accounts are created by
// registration and never mutated or deleted afterwards.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated principal bound to a session.
type Identity struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
