package interfaces

import (
	"context"
	"time"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
)

// TokenUseCase is the session-token lifecycle manager.
type TokenUseCase interface {
	// Issue creates a new live token for the user and returns its opaque
	// identifier.
	Issue(ctx context.Context, userID string) (string, error)

	// ValidateAndRenew checks a presented token and, when it is still
	// live, slides its expiry window. The bool is the accept/reject
	// verdict; a non-nil error is an infrastructure failure, never a
	// rejection.
	ValidateAndRenew(ctx context.Context, tokenID string) (bool, error)

	// GetUser resolves the owning user of an already-validated token.
	// It performs no expiry or renewal logic and returns (nil, nil) for
	// unknown tokens.
	GetUser(ctx context.Context, tokenID string) (*entity.User, error)

	// Revoke invalidates a single token, idempotently.
	Revoke(ctx context.Context, tokenID string) error

	// RevokeAllForUser invalidates every live token of the user.
	RevokeAllForUser(ctx context.Context, userID string) error

	// PurgeExpired deletes every row whose expiry lies before now and
	// returns the number of rows removed.
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)

	// RunPurgeLoop runs the purge sweep on a fixed interval until ctx is
	// cancelled. It blocks and is meant to run in its own goroutine.
	RunPurgeLoop(ctx context.Context, interval time.Duration)
}
