package domain

import (
	"context"
	"time"
)

// User represents a domain user object. GoogleID is set only for accounts
// created through the OAuth flow; PasswordHash only for email/password
// accounts.
type User struct {
	ID                string
	Email             string
	PasswordHash      string
	GoogleID          string
	Name              string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         *time.Time
}

// Validate validates the user
func (u *User) Validate() error {
	if u.Email == "" {
		return NewMissingFieldError("email")
	}
	if u.PasswordHash == "" && u.GoogleID == "" {
		return NewInvalidInputError("user needs a password or a linked Google account")
	}
	return nil
}

// UserRepository defines the interface for user data persistence.
type UserRepository interface {
	CreateUser(ctx context.Context, user *User) error
	GetUserByID(ctx context.Context, userID string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error
}
