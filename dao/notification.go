package dao

import (
	"Quorum/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationDAO struct {
	Repo[models.Notification]
}

func NewNotificationDAO(db *gorm.DB) *NotificationDAO {
	return &NotificationDAO{Repo: NewRepo[models.Notification](db)}
}

func (d *NotificationDAO) Tx(tx *gorm.DB) *NotificationDAO {
	return NewNotificationDAO(tx)
}

// InsertIgnore 按 dedup_key 去重写入, 返回是否真正写入
func (d *NotificationDAO) InsertIgnore(ctx context.Context, n *models.Notification) (bool, error) {
	res := d.Db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "dedup_key"}}, DoNothing: true}).
		Create(n)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ListByUser 按时间倒序分页
func (d *NotificationDAO) ListByUser(ctx context.Context, userID uint64, offset, limit int) ([]*models.Notification, error) {
	var list []*models.Notification
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Offset(offset).Limit(limit).
		Find(&list).Error
	return list, err
}

func (d *NotificationDAO) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := d.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkRead 只更新属于该用户的未读通知
func (d *NotificationDAO) MarkRead(ctx context.Context, id, userID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ? AND is_read = ?", id, userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// MarkAllRead 全部已读
func (d *NotificationDAO) MarkAllRead(ctx context.Context, userID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
