package models

import "time"

// User represents an account entity used for authentication.
// The Password field holds a bcrypt digest once the account is persisted;
// plaintext only ever exists inside the signup/login request scope.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the display name of the user.
	// It is echoed back in the login welcome message.
	Username string `json:"username"`

	// Email is the login key. The schema declares it unique; the
	// application assumes at most one row per email.
	Email string `json:"email"`

	// Password carries the plaintext credential on inbound requests and
	// the bcrypt digest at the persistence layer. It must never be
	// serialized into a response.
	Password string `json:"password,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
