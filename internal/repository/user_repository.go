package repository

import (
	"github.com/lshigami/Rotom/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByID(id uint) (*model.User, error)
	FindTopByScore(limit int) ([]model.User, error)
	IncrementScore(id uint, points int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindTopByScore(limit int) ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("score DESC").Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// IncrementScore adds points with a single UPDATE so concurrent updates
// cannot lose each other's increments.
func (r *userRepository) IncrementScore(id uint, points int) error {
	res := r.db.Model(&model.User{}).
		Where("id = ?", id).
		UpdateColumn("score", gorm.Expr("score + ?", points))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
