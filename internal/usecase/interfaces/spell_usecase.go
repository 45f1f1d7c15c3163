package interfaces

import (
	"context"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/dto"
)

// SpellUseCase handles spell management.
type SpellUseCase interface {
	// CreateSpell stores a new spell owned by the user.
	CreateSpell(ctx context.Context, user *entity.User, spellDTO *dto.SpellDTO) (*dto.SpellDTO, error)

	// ModifySpell updates an existing spell; only the owner may modify it.
	ModifySpell(ctx context.Context, user *entity.User, spellDTO *dto.SpellDTO) (*dto.SpellDTO, error)

	// DeleteSpell removes a spell; only the owner may delete it.
	DeleteSpell(ctx context.Context, user *entity.User, spellID uint) error

	// GetSpell returns a single spell by id.
	GetSpell(ctx context.Context, spellID uint) (*dto.SpellDTO, error)

	// ListSpells returns the user's spells, optionally filtered by name
	// prefix.
	ListSpells(ctx context.Context, user *entity.User, search string) ([]*dto.SpellDTO, error)

	// ListPublicSpells returns publicly visible spells.
	ListPublicSpells(ctx context.Context, search string) ([]*dto.SpellDTO, error)

	// ListOfficialSpells returns the official (SRD) spells.
	ListOfficialSpells(ctx context.Context, search string) ([]*dto.SpellDTO, error)
}
