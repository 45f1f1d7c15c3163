package repository

import (
	"context"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
)

// UserRepository is the persistent store for user accounts.
// Lookup methods return (nil, nil) when the user is absent.
type UserRepository interface {
	// FindByID looks a user up by id.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByUsername looks a user up by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsername reports whether the username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Create inserts a new user.
	Create(ctx context.Context, user *entity.User) error

	// Delete removes a user row.
	Delete(ctx context.Context, id string) error
}
