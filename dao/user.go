package dao

import (
	"Quorum/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

func (u *Users) Tx(tx *gorm.DB) *Users {
	return NewUsers(tx)
}

// IncrReputation 原子增减声望, 返回受影响行数, 0 表示用户不存在
func (u *Users) IncrReputation(ctx context.Context, userID uint64, amount int64) (int64, error) {
	result := incrReputation(u.Db.WithContext(ctx), userID, amount)
	return result.RowsAffected, result.Error
}

// incrReputation 单条 UPDATE, 由数据库完成加法, 不做读改写
func incrReputation(db *gorm.DB, userID uint64, amount int64) *gorm.DB {
	return db.Model(&models.Users{}).
		Where("id = ?", userID).
		UpdateColumn("reputation", gorm.Expr("reputation + ?", amount))
}

// GetReputation 当前声望
func (u *Users) GetReputation(ctx context.Context, userID uint64) (int64, error) {
	var user models.Users
	err := u.Db.WithContext(ctx).Select("id", "reputation").First(&user, userID).Error
	return user.Reputation, err
}

// BatchGetNames 批量查询昵称
func (u *Users) BatchGetNames(ctx context.Context, ids []uint64) (map[uint64]string, error) {
	result := make(map[uint64]string, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var users []*models.Users
	if err := u.Db.WithContext(ctx).Select("id", "name").Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, user := range users {
		result[user.ID] = user.Name
	}
	return result, nil
}
