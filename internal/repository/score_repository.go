package repository

import (
	"github.com/lshigami/Rotom/internal/model"
	"gorm.io/gorm"
)

// ScoreRepository persists the append-only score log.
type ScoreRepository interface {
	Create(score *model.Score) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Create(score *model.Score) error {
	return r.db.Create(score).Error
}
