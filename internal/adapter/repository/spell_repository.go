package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/adapter/mapper"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/repository"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/db/model"
)

type SpellRepositoryImpl struct {
	db *gorm.DB
}

// NewSpellRepository creates the GORM-backed spell repository.
func NewSpellRepository(db *gorm.DB) repository.SpellRepository {
	return &SpellRepositoryImpl{db: db}
}

// FindByID looks a spell up by id.
func (r *SpellRepositoryImpl) FindByID(ctx context.Context, id uint) (*entity.Spell, error) {
	var spellModel model.SpellModel

	if err := r.db.WithContext(ctx).First(&spellModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return mapper.SpellFromModel(&spellModel), nil
}

// Save inserts or updates a spell.
func (r *SpellRepositoryImpl) Save(ctx context.Context, spell *entity.Spell) error {
	spellModel := mapper.SpellToModel(spell)

	if err := r.db.WithContext(ctx).Save(spellModel).Error; err != nil {
		return err
	}

	spell.ID = spellModel.ID
	return nil
}

// Delete removes a spell row.
func (r *SpellRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SpellModel{}, id).Error
}

// FindByUser returns all spells owned by the user.
func (r *SpellRepositoryImpl) FindByUser(ctx context.Context, userID string) ([]*entity.Spell, error) {
	var spellModels []model.SpellModel

	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&spellModels).Error; err != nil {
		return nil, err
	}

	return mapper.SpellsFromModels(spellModels), nil
}

// FindByUserAndNamePrefix returns the user's spells whose name starts with
// the given prefix, case-insensitively.
func (r *SpellRepositoryImpl) FindByUserAndNamePrefix(ctx context.Context, userID string, prefix string) ([]*entity.Spell, error) {
	var spellModels []model.SpellModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND name ILIKE ?", userID, prefix+"%").
		Find(&spellModels).Error; err != nil {
		return nil, err
	}

	return mapper.SpellsFromModels(spellModels), nil
}

// FindPublic returns publicly visible spells, optionally filtered by name prefix.
func (r *SpellRepositoryImpl) FindPublic(ctx context.Context, prefix string) ([]*entity.Spell, error) {
	var spellModels []model.SpellModel

	query := r.db.WithContext(ctx).Where("public_visible = ?", true)
	if prefix != "" {
		query = query.Where("name ILIKE ?", prefix+"%")
	}

	if err := query.Find(&spellModels).Error; err != nil {
		return nil, err
	}

	return mapper.SpellsFromModels(spellModels), nil
}

// CountByUser returns the number of spells owned by the user.
func (r *SpellRepositoryImpl) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.SpellModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// ExistsByUserAndName reports whether the user already owns a spell with
// the given name.
func (r *SpellRepositoryImpl) ExistsByUserAndName(ctx context.Context, userID string, name string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.SpellModel{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// DeleteAllByUser removes every spell owned by the user.
func (r *SpellRepositoryImpl) DeleteAllByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.SpellModel{}).Error
}
