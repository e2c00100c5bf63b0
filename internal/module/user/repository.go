package user

import (
	"Quorum/models"
	"context"

	"gorm.io/gorm"
)

// Repository 接口定义
type Repository interface {
	FindByID(ctx context.Context, id uint64) (*models.Users, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*models.Users, error) {
	var u models.Users
	err := r.db.WithContext(ctx).First(&u, id).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}
