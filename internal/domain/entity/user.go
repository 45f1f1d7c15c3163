package entity

import (
	"errors"
	"time"
)

// User is the account that owns tokens and spells.
type User struct {
	ID         string
	Username   string
	SignupDate time.Time
}

// NewUser creates a user with the given username.
func NewUser(id, username string) (*User, error) {
	if username == "" {
		return nil, errors.New("username is required")
	}

	return &User{
		ID:         id,
		Username:   username,
		SignupDate: time.Now(),
	}, nil
}
