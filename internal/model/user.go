package model

import (
	"time"
)

// User is an account identified by email only. Authentication is
// passwordless: a short-lived login code is mailed on every sign-in.
type User struct {
	ID              string     `db:"id"`
	Email           string     `db:"email"`
	EmailVerifiedAt *time.Time `db:"email_verified_at"`
	CreatedAt       time.Time  `db:"created_at"`
}
