package model

import (
	"time"
)

// TokenModel is the database row for a session token.
//
// No soft-delete column: the purge sweep and logout physically remove
// rows, which is the contract the lifecycle manager relies on.
type TokenModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	TokenID   string    `gorm:"size:64;uniqueIndex;not null" json:"token_id"`
	UserID    string    `gorm:"size:36;index;not null" json:"user_id"`
	IssuedAt  time.Time `gorm:"not null" json:"issued_at"`
	ExpiresAt time.Time `gorm:"index;not null" json:"expires_at"`
	Expired   bool      `gorm:"not null;default:false" json:"expired"`
	Revoked   bool      `gorm:"not null;default:false" json:"revoked"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name.
func (TokenModel) TableName() string {
	return "tokens"
}
