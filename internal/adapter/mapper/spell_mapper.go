package mapper

import (
	"gorm.io/datatypes"

	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/infrastructure/db/model"
)

// SpellToModel converts a spell entity into its DB model.
func SpellToModel(spell *entity.Spell) *model.SpellModel {
	if spell == nil {
		return nil
	}

	return &model.SpellModel{
		ID:            spell.ID,
		UserID:        spell.UserID,
		PublicVisible: spell.PublicVisible,
		Name:          spell.Name,
		Level:         spell.Level,
		School:        spell.School,
		CastTime:      spell.CastTime,
		CastRange:     spell.CastRange,
		Components:    spell.Components,
		Duration:      spell.Duration,
		Description:   spell.Description,
		Concentration: spell.Concentration,
		Ritual:        spell.Ritual,
		DamageType:    string(spell.DamageType),
		DamageByLevel: datatypes.NewJSONType(spell.DamageByLevel),
	}
}

// SpellFromModel converts a DB model into a spell entity.
func SpellFromModel(m *model.SpellModel) *entity.Spell {
	if m == nil {
		return nil
	}

	return &entity.Spell{
		ID:            m.ID,
		UserID:        m.UserID,
		PublicVisible: m.PublicVisible,
		Name:          m.Name,
		Level:         m.Level,
		School:        m.School,
		CastTime:      m.CastTime,
		CastRange:     m.CastRange,
		Components:    m.Components,
		Duration:      m.Duration,
		Description:   m.Description,
		Concentration: m.Concentration,
		Ritual:        m.Ritual,
		DamageType:    entity.SpellDamageType(m.DamageType),
		DamageByLevel: m.DamageByLevel.Data(),
	}
}

// SpellsFromModels converts a slice of DB models into spell entities.
func SpellsFromModels(models []model.SpellModel) []*entity.Spell {
	spells := make([]*entity.Spell, len(models))
	for i := range models {
		spells[i] = SpellFromModel(&models[i])
	}
	return spells
}
