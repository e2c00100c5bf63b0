package dao

import (
	"Quorum/models"
	"context"

	"gorm.io/gorm"
)

type ReputationEventDAO struct {
	Repo[models.ReputationEvent]
}

func NewReputationEventDAO(db *gorm.DB) *ReputationEventDAO {
	return &ReputationEventDAO{Repo: NewRepo[models.ReputationEvent](db)}
}

func (d *ReputationEventDAO) Tx(tx *gorm.DB) *ReputationEventDAO {
	return NewReputationEventDAO(tx)
}

func (d *ReputationEventDAO) BatchCreate(ctx context.Context, events []*models.ReputationEvent) error {
	if len(events) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Create(&events).Error
}

// ListByUser 游标分页, cursor 为上一页最后一条的 id
func (d *ReputationEventDAO) ListByUser(ctx context.Context, userID uint64, cursor uint64, limit int) ([]*models.ReputationEvent, error) {
	var events []*models.ReputationEvent
	query := d.Db.WithContext(ctx).Where("user_id = ?", userID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&events).Error
	return events, err
}

// SumByUser 流水合计, 用于对账
func (d *ReputationEventDAO) SumByUser(ctx context.Context, userID uint64) (int64, error) {
	var sum int64
	err := d.Db.WithContext(ctx).Model(&models.ReputationEvent{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ?", userID).
		Scan(&sum).Error
	return sum, err
}
