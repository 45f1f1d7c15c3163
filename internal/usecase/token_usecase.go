package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/constants"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/interfaces"
	pkgerrors "github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/errors"
)

// TokenConfig holds the lifecycle policy knobs.
type TokenConfig struct {
	// SessionTTL is the sliding-window lifetime added on issue and on
	// every accepted validation.
	SessionTTL time.Duration
	// MaxSessionAge caps the total session lifetime measured from
	// issuance. Zero disables the ceiling.
	MaxSessionAge time.Duration
	// MaxTokensPerUser caps concurrent live tokens per user; on overflow
	// the oldest live token is revoked. Zero means unlimited.
	MaxTokensPerUser int
}

// TokenUseCase manages the session-token lifecycle. It holds no mutable
// state of its own: concurrency safety lives in the store's conditional
// update, so one instance is shared by all request handlers and the
// design survives multiple server instances sharing one database.
type TokenUseCase struct {
	logger          *zap.Logger
	config          TokenConfig
	tokenRepository repository.TokenRepository
	userRepository  repository.UserRepository
	cacheRepository repository.CacheRepository
}

// NewTokenUseCase creates the token lifecycle manager.
func NewTokenUseCase(
	logger *zap.Logger,
	config TokenConfig,
	tokenRepo repository.TokenRepository,
	userRepo repository.UserRepository,
	cacheRepo repository.CacheRepository,
) interfaces.TokenUseCase {
	if config.SessionTTL <= 0 {
		config.SessionTTL = time.Hour
	}
	return &TokenUseCase{
		logger:          logger,
		config:          config,
		tokenRepository: tokenRepo,
		userRepository:  userRepo,
		cacheRepository: cacheRepo,
	}
}

// Issue creates a new live token for the user and returns its opaque
// identifier.
func (uc *TokenUseCase) Issue(ctx context.Context, userID string) (string, error) {
	tokenID, err := GenerateTokenID()
	if err != nil {
		return "", pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to generate token id", err)
	}

	now := time.Now()
	token := entity.NewToken(tokenID, userID, now, now.Add(uc.config.SessionTTL))

	if uc.config.MaxTokensPerUser > 0 {
		if err := uc.enforceTokenCap(ctx, userID, now); err != nil {
			return "", err
		}
	}

	if err := uc.tokenRepository.Save(ctx, token); err != nil {
		uc.logger.Error("failed to persist issued token", zap.Error(err))
		return "", uc.storeError("failed to persist token", err)
	}

	return tokenID, nil
}

// enforceTokenCap revokes the oldest live token when the user is at the
// configured limit.
func (uc *TokenUseCase) enforceTokenCap(ctx context.Context, userID string, now time.Time) error {
	live, err := uc.tokenRepository.GetLiveTokens(ctx, userID)
	if err != nil {
		return uc.storeError("failed to list live tokens", err)
	}

	var current []*entity.Token
	for _, t := range live {
		if t.IsLive(now) {
			current = append(current, t)
		}
	}
	if len(current) < uc.config.MaxTokensPerUser {
		return nil
	}

	oldest := current[0]
	for _, t := range current[1:] {
		if t.IssuedAt.Before(oldest.IssuedAt) {
			oldest = t
		}
	}

	uc.logger.Info("token cap reached, revoking oldest live token",
		zap.String("user_id", userID),
		zap.Int("cap", uc.config.MaxTokensPerUser),
	)
	return uc.Revoke(ctx, oldest.TokenID)
}

// ValidateAndRenew checks a presented token and slides its expiry window
// when it is still live.
//
// The happy path is a single conditional UPDATE: when it applies, the
// token was live and has been renewed atomically. When it does not
// apply, the row is re-read to classify the rejection; a lapsed token is
// marked expired on the way out. Absent, revoked and expired all reject
// identically so callers cannot probe for token existence.
func (uc *TokenUseCase) ValidateAndRenew(ctx context.Context, tokenID string) (bool, error) {
	if tokenID == "" {
		return false, nil
	}

	now := time.Now()
	newExpiry := now.Add(uc.config.SessionTTL)

	renewed, err := uc.tokenRepository.Renew(ctx, tokenID, newExpiry, uc.config.MaxSessionAge, now)
	if err != nil {
		uc.logger.Error("token renewal failed", zap.Error(err))
		return false, uc.storeError("failed to renew token", err)
	}
	if renewed {
		return true, nil
	}

	token, err := uc.tokenRepository.FindByTokenID(ctx, tokenID)
	if err != nil {
		uc.logger.Error("token lookup failed", zap.Error(err))
		return false, uc.storeError("failed to look up token", err)
	}

	switch {
	case token == nil:
		uc.logger.Debug("validation rejected: token unknown")
	case token.Revoked:
		uc.logger.Debug("validation rejected: token revoked",
			zap.String("user_id", token.UserID))
	case token.IsPastExpiry(now):
		// The expired flag is a denormalized marker; the verdict above
		// stands even if this write fails.
		if err := uc.tokenRepository.MarkExpired(ctx, tokenID); err != nil {
			uc.logger.Warn("failed to mark token expired", zap.Error(err))
		}
		uc.logger.Debug("validation rejected: token past expiry",
			zap.String("user_id", token.UserID))
	default:
		// The token looked live on the re-read, so a concurrent revoke
		// or purge won the race between the UPDATE and this read.
		uc.logger.Debug("validation rejected: lost race with concurrent termination")
	}

	return false, nil
}

// GetUser resolves the owning user of a token. No expiry or renewal
// logic: callers validate first. The token-to-user mapping is cached
// because it is immutable for the lifetime of the row.
func (uc *TokenUseCase) GetUser(ctx context.Context, tokenID string) (*entity.User, error) {
	if tokenID == "" {
		return nil, nil
	}

	userID, err := uc.cacheRepository.Get(ctx, constants.SessionTokenPrefix+tokenID)
	if err != nil {
		if !uc.cacheRepository.IsNotFound(err) {
			uc.logger.Warn("token cache read failed", zap.Error(err))
		}
		userID = ""
	}

	if userID == "" {
		token, err := uc.tokenRepository.FindByTokenID(ctx, tokenID)
		if err != nil {
			return nil, uc.storeError("failed to look up token", err)
		}
		if token == nil {
			return nil, nil
		}
		userID = token.UserID

		if err := uc.cacheRepository.Set(ctx, constants.SessionTokenPrefix+tokenID, userID, uc.config.SessionTTL); err != nil {
			uc.logger.Warn("token cache write failed", zap.Error(err))
		}
	}

	user, err := uc.userRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, uc.storeError("failed to look up user", err)
	}
	return user, nil
}

// Revoke invalidates a single token. Revoking an absent or already
// revoked token is a no-op.
func (uc *TokenUseCase) Revoke(ctx context.Context, tokenID string) error {
	if tokenID == "" {
		return nil
	}

	if err := uc.tokenRepository.RevokeByTokenID(ctx, tokenID); err != nil {
		uc.logger.Error("token revocation failed", zap.Error(err))
		return uc.storeError("failed to revoke token", err)
	}

	if err := uc.cacheRepository.Delete(ctx, constants.SessionTokenPrefix+tokenID); err != nil {
		uc.logger.Warn("failed to drop cached token mapping", zap.Error(err))
	}

	return nil
}

// RevokeAllForUser invalidates every live token of the user. Used on
// account deletion and "log out everywhere".
func (uc *TokenUseCase) RevokeAllForUser(ctx context.Context, userID string) error {
	live, err := uc.tokenRepository.GetLiveTokens(ctx, userID)
	if err != nil {
		return uc.storeError("failed to list live tokens", err)
	}

	revoked, err := uc.tokenRepository.RevokeAllByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("bulk revocation failed", zap.String("user_id", userID), zap.Error(err))
		return uc.storeError("failed to revoke user tokens", err)
	}

	for _, t := range live {
		if err := uc.cacheRepository.Delete(ctx, constants.SessionTokenPrefix+t.TokenID); err != nil {
			uc.logger.Warn("failed to drop cached token mapping", zap.Error(err))
		}
	}

	uc.logger.Info("revoked all user tokens",
		zap.String("user_id", userID),
		zap.Int64("count", revoked),
	)
	return nil
}

// PurgeExpired deletes every row whose expiry lies before now.
func (uc *TokenUseCase) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	purged, err := uc.tokenRepository.DeleteAllByExpiresAtBefore(ctx, now)
	if err != nil {
		uc.logger.Error("purge sweep failed", zap.Error(err))
		return 0, uc.storeError("failed to purge expired tokens", err)
	}

	if purged > 0 {
		uc.logger.Info("purged expired tokens", zap.Int64("count", purged))
	}
	return purged, nil
}

// RunPurgeLoop runs the purge sweep on a fixed interval until ctx is
// cancelled. It never runs inline with a request.
func (uc *TokenUseCase) RunPurgeLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	uc.logger.Info("purge loop started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("purge loop stopped")
			return
		case <-ticker.C:
			if _, err := uc.PurgeExpired(ctx, time.Now()); err != nil {
				// Already logged; next tick retries.
				continue
			}
		}
	}
}

// storeError wraps a persistence failure as an infrastructure error so
// callers can never mistake it for a liveness verdict.
func (uc *TokenUseCase) storeError(message string, err error) error {
	code := pkgerrors.ErrInternal
	if pkgerrors.Is(err, context.DeadlineExceeded) {
		code = pkgerrors.ErrTimeout
	}
	return pkgerrors.NewAppError(code, message, fmt.Errorf("token store: %w", err))
}
