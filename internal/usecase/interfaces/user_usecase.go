package interfaces

import (
	"context"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
)

// UserUseCase handles account management.
type UserUseCase interface {
	// Signup creates a new account. A taken username yields a CONFLICT
	// error.
	Signup(ctx context.Context, username string) (*entity.User, error)

	// Login resolves the account and issues a session token.
	Login(ctx context.Context, username string) (string, error)

	// Logout revokes the presented session token.
	Logout(ctx context.Context, tokenID string) error

	// LogoutEverywhere revokes every live token of the user.
	LogoutEverywhere(ctx context.Context, userID string) error

	// DeleteAccount removes the user together with their spells and
	// tokens.
	DeleteAccount(ctx context.Context, userID string) error
}
