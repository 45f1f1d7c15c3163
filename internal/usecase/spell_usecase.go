package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/constants"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/dto"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/usecase/interfaces"
	pkgerrors "github.com/Yago-Rueda-24/Datos-Dados-backend/pkg/errors"
)

// SpellUseCase handles spell management.
type SpellUseCase struct {
	logger          *zap.Logger
	spellRepository repository.SpellRepository
	userRepository  repository.UserRepository
	validate        *validator.Validate
}

// NewSpellUseCase creates the spell usecase.
func NewSpellUseCase(
	logger *zap.Logger,
	spellRepo repository.SpellRepository,
	userRepo repository.UserRepository,
) interfaces.SpellUseCase {
	return &SpellUseCase{
		logger:          logger,
		spellRepository: spellRepo,
		userRepository:  userRepo,
		validate:        validator.New(),
	}
}

// validateDTO checks the request payload and the damage type enum.
func (uc *SpellUseCase) validateDTO(spellDTO *dto.SpellDTO) error {
	if err := uc.validate.Struct(spellDTO); err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "invalid spell data", err)
	}
	if !entity.SpellDamageType(spellDTO.DamageType).IsValid() {
		return pkgerrors.NewAppError(pkgerrors.ErrInvalidArgument, "unknown damage type", nil)
	}
	return nil
}

// CreateSpell stores a new spell owned by the user.
func (uc *SpellUseCase) CreateSpell(ctx context.Context, user *entity.User, spellDTO *dto.SpellDTO) (*dto.SpellDTO, error) {
	if err := uc.validateDTO(spellDTO); err != nil {
		return nil, err
	}

	spell := spellDTO.ToEntity(user)
	spell.ID = 0 // ignore any client-supplied id on create

	if err := uc.spellRepository.Save(ctx, spell); err != nil {
		uc.logger.Error("failed to create spell", zap.Error(err))
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to create spell", err)
	}

	return dto.SpellToDTO(spell), nil
}

// ModifySpell updates an existing spell; only the owner may modify it.
func (uc *SpellUseCase) ModifySpell(ctx context.Context, user *entity.User, spellDTO *dto.SpellDTO) (*dto.SpellDTO, error) {
	if err := uc.validateDTO(spellDTO); err != nil {
		return nil, err
	}

	existing, err := uc.spellRepository.FindByID(ctx, spellDTO.ID)
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to look up spell", err)
	}
	if existing == nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrNotFound, "spell not found", nil)
	}
	if existing.UserID != user.ID {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrUnauthorized, "not allowed to modify this spell", nil)
	}

	spell := spellDTO.ToEntity(user)
	spell.ID = existing.ID

	if err := uc.spellRepository.Save(ctx, spell); err != nil {
		uc.logger.Error("failed to update spell", zap.Error(err))
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to update spell", err)
	}

	return dto.SpellToDTO(spell), nil
}

// DeleteSpell removes a spell; only the owner may delete it.
func (uc *SpellUseCase) DeleteSpell(ctx context.Context, user *entity.User, spellID uint) error {
	existing, err := uc.spellRepository.FindByID(ctx, spellID)
	if err != nil {
		return pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to look up spell", err)
	}
	if existing == nil {
		return pkgerrors.NewAppError(pkgerrors.ErrNotFound, "spell not found", nil)
	}
	if existing.UserID != user.ID {
		return pkgerrors.NewAppError(pkgerrors.ErrUnauthorized, "not allowed to delete this spell", nil)
	}

	if err := uc.spellRepository.Delete(ctx, spellID); err != nil {
		uc.logger.Error("failed to delete spell", zap.Error(err))
		return pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to delete spell", err)
	}

	return nil
}

// GetSpell returns a single spell by id.
func (uc *SpellUseCase) GetSpell(ctx context.Context, spellID uint) (*dto.SpellDTO, error) {
	spell, err := uc.spellRepository.FindByID(ctx, spellID)
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to look up spell", err)
	}
	if spell == nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrNotFound, "spell not found", nil)
	}

	return dto.SpellToDTO(spell), nil
}

// ListSpells returns the user's spells, optionally filtered by name prefix.
func (uc *SpellUseCase) ListSpells(ctx context.Context, user *entity.User, search string) ([]*dto.SpellDTO, error) {
	var (
		spells []*entity.Spell
		err    error
	)

	if search == "" {
		spells, err = uc.spellRepository.FindByUser(ctx, user.ID)
	} else {
		spells, err = uc.spellRepository.FindByUserAndNamePrefix(ctx, user.ID, search)
	}
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to list spells", err)
	}

	return dto.SpellsToDTOs(spells), nil
}

// ListPublicSpells returns publicly visible spells.
func (uc *SpellUseCase) ListPublicSpells(ctx context.Context, search string) ([]*dto.SpellDTO, error) {
	spells, err := uc.spellRepository.FindPublic(ctx, search)
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to list public spells", err)
	}

	return dto.SpellsToDTOs(spells), nil
}

// ListOfficialSpells returns the official (SRD) spells, which are the
// admin account's spells.
func (uc *SpellUseCase) ListOfficialSpells(ctx context.Context, search string) ([]*dto.SpellDTO, error) {
	admin, err := uc.userRepository.FindByUsername(ctx, constants.AdminUsername)
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to look up admin user", err)
	}
	if admin == nil {
		return []*dto.SpellDTO{}, nil
	}

	var spells []*entity.Spell
	if search == "" {
		spells, err = uc.spellRepository.FindByUser(ctx, admin.ID)
	} else {
		spells, err = uc.spellRepository.FindByUserAndNamePrefix(ctx, admin.ID, search)
	}
	if err != nil {
		return nil, pkgerrors.NewAppError(pkgerrors.ErrInternal, "failed to list official spells", err)
	}

	return dto.SpellsToDTOs(spells), nil
}
