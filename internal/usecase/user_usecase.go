package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/interfaces"
	pkgerrors "github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/errors"
)

// UserUseCase handles account management.
type UserUseCase struct {
	logger          *zap.Logger
	userRepository  repository.UserRepository
	spellRepository repository.SpellRepository
	tokenRepository repository.TokenRepository
	tokenUseCase    interfaces.TokenUseCase
}

// NewUserUseCase creates the user usecase.
func NewUserUseCase(
	logger *zap.Logger,
	userRepo repository.UserRepository,
	spellRepo repository.SpellRepository,
	tokenRepo repository.TokenRepository,
	tokenUC interfaces.TokenUseCase,
) interfaces.UserUseCase {
	return &UserUseCase{
		logger:          logger,
		userRepository:  userRepo,
		spellRepository: spellRepo,
		tokenRepository: tokenRepo,
		tokenUseCase:    tokenUC,
	}
}

// Signup creates a new account.
func (uc *UserUseCase) Signup(ctx context.Context, username string) (*entity.User, error) {
	taken, err := uc.userRepository.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to check username", err)
	}
	if taken {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrConflict, "username already taken", nil)
	}

	user, err := entity.NewUser(uuid.New().String(), username)
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid user data", err)
	}

	if err := uc.userRepository.Create(ctx, user); err != nil {
		uc.logger.Error("failed to create user", zap.Error(err))
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to create user", err)
	}

	uc.logger.Info("user created", zap.String("user_id", user.ID))
	return user, nil
}

// Login resolves the account and issues a session token. Unknown
// usernames and genuine issuance failures surface differently so the
// gateway can map them to 401 versus 5xx.
func (uc *UserUseCase) Login(ctx context.Context, username string) (string, error) {
	user, err := uc.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return "", pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to look up user", err)
	}
	if user == nil {
		return "", pkgerrors.NewAppError(pkgerrors.ErrUnauthenticated, "unknown user", nil)
	}

	tokenID, err := uc.tokenUseCase.Issue(ctx, user.ID)
	if err != nil {
		return "", err
	}

	uc.logger.Info("session issued", zap.String("user_id", user.ID))
	return tokenID, nil
}

// Logout revokes the presented session token.
func (uc *UserUseCase) Logout(ctx context.Context, tokenID string) error {
	return uc.tokenUseCase.Revoke(ctx, tokenID)
}

// LogoutEverywhere revokes every live token of the user.
func (uc *UserUseCase) LogoutEverywhere(ctx context.Context, userID string) error {
	return uc.tokenUseCase.RevokeAllForUser(ctx, userID)
}

// DeleteAccount removes the user and cascades over their spells and
// tokens, revoking live sessions before the rows disappear.
func (uc *UserUseCase) DeleteAccount(ctx context.Context, userID string) error {
	if err := uc.tokenUseCase.RevokeAllForUser(ctx, userID); err != nil {
		return err
	}

	if err := uc.spellRepository.DeleteAllByUser(ctx, userID); err != nil {
		uc.logger.Error("failed to delete user spells", zap.Error(err))
		return pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to delete user spells", err)
	}

	if err := uc.tokenRepository.DeleteAllByUser(ctx, userID); err != nil {
		uc.logger.Error("failed to delete user tokens", zap.Error(err))
		return pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to delete user tokens", err)
	}

	if err := uc.userRepository.Delete(ctx, userID); err != nil {
		uc.logger.Error("failed to delete user", zap.Error(err))
		return pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to delete user", err)
	}

	uc.logger.Info("account deleted", zap.String("user_id", userID))
	return nil
}
