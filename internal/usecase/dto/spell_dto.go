package dto

import (
	"github.com/Yago-Rueda-24/Datos-Dados-backend/internal/domain/entity"
)

// SpellDTO is the wire representation of a spell.
type SpellDTO struct {
	ID            uint           `json:"id,omitempty"`
	UserID        string         `json:"userId,omitempty"`
	PublicVisible bool           `json:"publicVisible"`
	Name          string         `json:"name" validate:"required,max=200"`
	Level         int            `json:"level" validate:"gte=0,lte=9"`
	School        string         `json:"school" validate:"max=100"`
	CastTime      string         `json:"castTime" validate:"max=100"`
	CastRange     string         `json:"castRange" validate:"max=100"`
	Components    string         `json:"components" validate:"max=250"`
	Duration      string         `json:"duration" validate:"max=100"`
	Description   string         `json:"description"`
	Concentration bool           `json:"concentration"`
	Ritual        bool           `json:"ritual"`
	DamageType    string         `json:"damageType,omitempty"`
	DamageByLevel map[int]string `json:"damageByLevel,omitempty"`
}

// ToEntity converts the DTO into a spell owned by the given user.
func (d *SpellDTO) ToEntity(user *entity.User) *entity.Spell {
	return &entity.Spell{
		ID:            d.ID,
		UserID:        user.ID,
		PublicVisible: d.PublicVisible,
		Name:          d.Name,
		Level:         d.Level,
		School:        d.School,
		CastTime:      d.CastTime,
		CastRange:     d.CastRange,
		Components:    d.Components,
		Duration:      d.Duration,
		Description:   d.Description,
		Concentration: d.Concentration,
		Ritual:        d.Ritual,
		DamageType:    entity.SpellDamageType(d.DamageType),
		DamageByLevel: d.DamageByLevel,
	}
}

// SpellToDTO converts a spell entity into its DTO.
func SpellToDTO(spell *entity.Spell) *SpellDTO {
	if spell == nil {
		return nil
	}

	return &SpellDTO{
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
		DamageByLevel: spell.DamageByLevel,
	}
}

// SpellsToDTOs converts a slice of spell entities into DTOs.
func SpellsToDTOs(spells []*entity.Spell) []*SpellDTO {
	dtos := make([]*SpellDTO, len(spells))
	for i, spell := range spells {
		dtos[i] = SpellToDTO(spell)
	}
	return dtos
}
