package models

import "time"

// User represents a registered account.
// Password holds the bcrypt hash; it is never serialized in responses.
type User struct {
	ID        int64     `json:"user_id" db:"user_id"`
	FirstName string    `json:"first_name" db:"first_name"`
	LastName  string    `json:"last_name" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Mobile    string    `json:"mobile" db:"mobile"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// SignupRequest carries the fields for account creation.
// Password arrives in plaintext and is hashed before storage.
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
	Password  string `json:"password"`
}

// LoginRequest for /login (cookie session).
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest updates any subset of profile fields.
// Password is optional and re-hashed when provided.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Mobile    string `json:"mobile,omitempty"`
	Password  string `json:"password,omitempty"`
}

// SessionUser is the shape stored in the session cache and returned by /me.
type SessionUser struct {
	ID        int64  `json:"user_id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}
