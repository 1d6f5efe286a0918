package model

import (
	"time"

	"gorm.io/gorm"
)

// Score is an append-only log of score changes. It is never rolled back up
// into User.Score; the running total is maintained on the user row itself.
type Score struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	Points    int            `json:"points" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
