package entity

import (
	"time"
)

// Token is an opaque session token bound to a single user.
type Token struct {
	ID        uint
	TokenID   string // opaque identifier handed to the client
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Expired   bool // lazily set once a validation observes the lapse
	Revoked   bool // terminal; a revoked token never validates again
}

// NewToken creates a fresh live token for the given user.
func NewToken(tokenID, userID string, issuedAt, expiresAt time.Time) *Token {
	return &Token{
		TokenID:   tokenID,
		UserID:    userID,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
}

// IsLive reports whether the token is valid at the given instant.
// Liveness is always recomputed from ExpiresAt; the Expired flag is a
// denormalized marker, not a source of truth.
func (t *Token) IsLive(now time.Time) bool {
	return !t.Expired && !t.Revoked && now.Before(t.ExpiresAt)
}

// IsPastExpiry reports whether the wall clock has passed ExpiresAt.
func (t *Token) IsPastExpiry(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
