package model

import (
	"time"

	"gorm.io/datatypes"
)

// SpellModel is the database row for a spell. The per-slot damage map is
// stored as a JSON column.
type SpellModel struct {
	ID            uint                               `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        string                             `gorm:"size:36;index;not null" json:"user_id"`
	PublicVisible bool                               `gorm:"not null;default:false" json:"public_visible"`
	Name          string                             `gorm:"size:200;not null" json:"name"`
	Level         int                                `gorm:"not null;default:0" json:"level"`
	School        string                             `gorm:"size:100" json:"school"`
	CastTime      string                             `gorm:"size:100" json:"cast_time"`
	CastRange     string                             `gorm:"size:100" json:"cast_range"`
	Components    string                             `gorm:"size:250" json:"components"`
	Duration      string                             `gorm:"size:100" json:"duration"`
	Description   string                             `gorm:"type:text" json:"description"`
	Concentration bool                               `gorm:"not null;default:false" json:"concentration"`
	Ritual        bool                               `gorm:"not null;default:false" json:"ritual"`
	DamageType    string                             `gorm:"size:50" json:"damage_type"`
	DamageByLevel datatypes.JSONType[map[int]string] `json:"damage_by_level"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name.
func (SpellModel) TableName() string {
	return "spells"
}
