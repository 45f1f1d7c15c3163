package repository

import (
	"context"
	"time"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
)

// TokenRepository is the persistent store for session tokens.
//
// Lookup methods return (nil, nil) when the token is absent. Any non-nil
// error is an infrastructure failure, never a liveness verdict.
type TokenRepository interface {
	// FindByTokenID looks a token up by its opaque identifier.
	FindByTokenID(ctx context.Context, tokenID string) (*entity.Token, error)

	// Save inserts or updates a token row.
	Save(ctx context.Context, token *entity.Token) error

	// DeleteByTokenID removes a single token row.
	DeleteByTokenID(ctx context.Context, tokenID string) error

	// DeleteAllByUser removes every token row of the given user.
	DeleteAllByUser(ctx context.Context, userID string) error

	// DeleteAllByExpiresAtBefore removes every row whose expiry lies
	// before t and returns the number of rows removed.
	DeleteAllByExpiresAtBefore(ctx context.Context, t time.Time) (int64, error)

	// FindByUser returns all token rows of the given user.
	FindByUser(ctx context.Context, userID string) ([]*entity.Token, error)

	// GetLiveTokens returns the user's tokens that are neither expired
	// nor revoked.
	GetLiveTokens(ctx context.Context, userID string) ([]*entity.Token, error)

	// Renew atomically slides the expiry window of a still-live token.
	// The update only applies while revoked=false, expired=false and
	// expires_at > now; the returned bool reports whether it applied.
	// When maxAge > 0 the new expiry is capped at issued_at+maxAge, and
	// the expiry is never moved backwards.
	Renew(ctx context.Context, tokenID string, expiresAt time.Time, maxAge time.Duration, now time.Time) (bool, error)

	// MarkExpired sets the expired flag on a token that has lapsed.
	// It never touches revoked rows and is idempotent.
	MarkExpired(ctx context.Context, tokenID string) error

	// RevokeByTokenID sets the revoked flag. Revoking an absent or
	// already-revoked token is a no-op, not an error.
	RevokeByTokenID(ctx context.Context, tokenID string) error

	// RevokeAllByUser revokes every live token of the user and returns
	// how many rows were touched.
	RevokeAllByUser(ctx context.Context, userID string) (int64, error)
}
