package model

import (
	"time"
)

// UserModel is the database row for a user account.
type UserModel struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	Username   string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	SignupDate time.Time `gorm:"not null" json:"signup_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name.
func (UserModel) TableName() string {
	return "users"
}
