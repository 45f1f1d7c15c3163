package repository

import (
	"context"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
)

// SpellRepository is the persistent store for spells.
type SpellRepository interface {
	// FindByID looks a spell up by id, returning (nil, nil) when absent.
	FindByID(ctx context.Context, id uint) (*entity.Spell, error)

	// Save inserts or updates a spell.
	Save(ctx context.Context, spell *entity.Spell) error

	// Delete removes a spell row.
	Delete(ctx context.Context, id uint) error

	// FindByUser returns all spells owned by the user.
	FindByUser(ctx context.Context, userID string) ([]*entity.Spell, error)

	// FindByUserAndNamePrefix returns the user's spells whose name starts
	// with the given prefix, case-insensitively.
	FindByUserAndNamePrefix(ctx context.Context, userID string, prefix string) ([]*entity.Spell, error)

	// FindPublic returns publicly visible spells, optionally filtered by
	// name prefix.
	FindPublic(ctx context.Context, prefix string) ([]*entity.Spell, error)

	// CountByUser returns the number of spells owned by the user.
	CountByUser(ctx context.Context, userID string) (int64, error)

	// ExistsByUserAndName reports whether the user already owns a spell
	// with the given name.
	ExistsByUserAndName(ctx context.Context, userID string, name string) (bool, error)

	// DeleteAllByUser removes every spell owned by the user.
	DeleteAllByUser(ctx context.Context, userID string) error
}
