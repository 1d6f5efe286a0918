package model

import (
	"time"

	"gorm.io/gorm"
)

type Question struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Category    string         `json:"category" gorm:"not null;index"`
	Question    string         `json:"question" gorm:"type:text;not null"`
	Answer      string         `json:"answer" gorm:"not null"`
	Difficulty  string         `json:"difficulty" gorm:"not null"` // "easy", "medium", "hard"
	Explanation *string        `json:"explanation,omitempty" gorm:"type:text"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
