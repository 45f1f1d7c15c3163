package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/adapter/mapper"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/db/model"
)

type TokenRepositoryImpl struct {
	db *gorm.DB
}

// NewTokenRepository creates the GORM-backed token repository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// FindByTokenID looks a token up by its opaque identifier.
func (r *TokenRepositoryImpl) FindByTokenID(ctx context.Context, tokenID string) (*entity.Token, error) {
	var tokenModel model.TokenModel

	if err := r.db.WithContext(ctx).Where("token_id = ?", tokenID).First(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.TokenFromModel(&tokenModel), nil
}

// Save inserts or updates a token row.
func (r *TokenRepositoryImpl) Save(ctx context.Context, token *entity.Token) error {
	tokenModel := mapper.TokenToModel(token)

	if err := r.db.WithContext(ctx).Save(tokenModel).Error; err != nil {
		return err
	}

	token.ID = tokenModel.ID
	return nil
}

// DeleteByTokenID removes a single token row.
func (r *TokenRepositoryImpl) DeleteByTokenID(ctx context.Context, tokenID string) error {
	return r.db.WithContext(ctx).Where("token_id = ?", tokenID).Delete(&model.TokenModel{}).Error
}

// DeleteAllByUser removes every token row of the given user.
func (r *TokenRepositoryImpl) DeleteAllByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.TokenModel{}).Error
}

// DeleteAllByExpiresAtBefore removes every row whose expiry lies before t.
func (r *TokenRepositoryImpl) DeleteAllByExpiresAtBefore(ctx context.Context, t time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", t).Delete(&model.TokenModel{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// FindByUser returns all token rows of the given user.
func (r *TokenRepositoryImpl) FindByUser(ctx context.Context, userID string) ([]*entity.Token, error) {
	var tokenModels []model.TokenModel

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&tokenModels).Error; err != nil {
		return nil, err
	}

	return mapper.TokensFromModels(tokenModels), nil
}

// GetLiveTokens returns the user's tokens that are neither expired nor revoked.
func (r *TokenRepositoryImpl) GetLiveTokens(ctx context.Context, userID string) ([]*entity.Token, error) {
	var tokenModels []model.TokenModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND expired = ? AND revoked = ?", userID, false, false).
		Find(&tokenModels).Error; err != nil {
		return nil, err
	}

	return mapper.TokensFromModels(tokenModels), nil
}

// Renew slides the expiry window with a single conditional UPDATE. The row
// guards (revoked, expired, expires_at > now) are re-evaluated inside the
// statement, so a renewal can never resurrect a token that a concurrent
// revoke or expiry marking already terminated. GREATEST keeps the expiry
// monotonic; with a ceiling the new expiry is clamped to issued_at+maxAge.
func (r *TokenRepositoryImpl) Renew(ctx context.Context, tokenID string, expiresAt time.Time, maxAge time.Duration, now time.Time) (bool, error) {
	newExpiry := gorm.Expr("GREATEST(expires_at, ?::timestamptz)", expiresAt)
	if maxAge > 0 {
		newExpiry = gorm.Expr(
			"GREATEST(expires_at, LEAST(?::timestamptz, issued_at + make_interval(secs => ?)))",
			expiresAt, maxAge.Seconds(),
		)
	}

	result := r.db.WithContext(ctx).Model(&model.TokenModel{}).
		Where("token_id = ? AND revoked = ? AND expired = ? AND expires_at > ?", tokenID, false, false, now).
		Update("expires_at", newExpiry)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// MarkExpired sets the expired flag on a lapsed token. Revoked rows are
// left alone so the stronger terminal state wins.
func (r *TokenRepositoryImpl) MarkExpired(ctx context.Context, tokenID string) error {
	return r.db.WithContext(ctx).Model(&model.TokenModel{}).
		Where("token_id = ? AND revoked = ?", tokenID, false).
		Update("expired", true).Error
}

// RevokeByTokenID sets the revoked flag, idempotently.
func (r *TokenRepositoryImpl) RevokeByTokenID(ctx context.Context, tokenID string) error {
	return r.db.WithContext(ctx).Model(&model.TokenModel{}).
		Where("token_id = ?", tokenID).
		Update("revoked", true).Error
}

// RevokeAllByUser revokes every live token of the user.
func (r *TokenRepositoryImpl) RevokeAllByUser(ctx context.Context, userID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.TokenModel{}).
		Where("user_id = ? AND revoked = ? AND expired = ?", userID, false, false).
		Update("revoked", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
