package models

import "time"

// User is an account that owns notes.
//
// PasswordHash is never serialised. NoteRefs is the owner reference list: the
// ids of every note whose OwnerID equals UserID, in creation order.
type User struct {
	// UserID is the system-generated, immutable identifier of the user.
	UserID string `json:"userID"`

	// Email is the unique login key, stored normalised (trimmed, lower case).
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// NoteRefs lists the ids of the notes owned by this user, oldest first.
	NoteRefs []string `json:"notes"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of the signup and login requests.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Identity is the caller identity derived from a verified bearer token.
type Identity struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
}
