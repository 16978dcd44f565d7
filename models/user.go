package models

import "time"

// User represents an account entity used for authentication and authorship.
// The password hash never leaves the server process.
type User struct {
	// UserID is the opaque unique identifier of the user (UUID string).
	UserID string `json:"id"`

	// Username is the public handle shown next to every tweet.
	// Unique, 3 to 20 ASCII letters or digits.
	Username string `json:"username"`

	// Email is the unique login identifier, stored lower-cased.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public strips everything but the fields other users may see.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// PublicUser is the wire representation of a user.
type PublicUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
