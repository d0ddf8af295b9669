package models

import "time"

// User represents a registered account of the blog platform.
// It carries identity attributes and the stored credential hash.
// The credential hash must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID v4, server-assigned).
	ID string `json:"id"`

	// FirstName is the given name of the user. Limited to 30 characters.
	FirstName string `json:"firstName"`

	// LastName is the family name of the user. Limited to 30 characters.
	LastName string `json:"lastName"`

	// Email is the unique e-mail address used for login.
	// Stored in a case-insensitive (citext) column, so lookups by e-mail
	// match regardless of letter case.
	Email string `json:"email"`

	// Password holds the bcrypt hash of the user's password.
	// It is excluded from JSON so it can never leak into a response body.
	// List queries do not select this column at all; only the login path
	// reads it for comparison.
	Password string `json:"-"`

	// Posts contains the posts authored by this user.
	// Populated only by detail queries that request the relation.
	Posts []Post `json:"posts,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the account.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
