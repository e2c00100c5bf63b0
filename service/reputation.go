package service

import (
	"Quorum/dao"
	"Quorum/models"
	"Quorum/pkg/snowflake"
	"Quorum/types"
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Delta 一次声望变更
type Delta struct {
	UserID     uint64
	Amount     int64
	Reason     string
	TargetKind string
	TargetID   uint64
	Meta       map[string]any
}

var _ IReputationService = (*ReputationService)(nil)

type IReputationService interface {
	// ApplyDelta 单独一次声望变更, 自带事务
	ApplyDelta(ctx context.Context, userID uint64, amount int64, reason string) error
	// Apply 在调用方事务内写入一组变更, 同一 actionID 归为一次动作
	Apply(ctx context.Context, tx *gorm.DB, actionID int64, deltas ...Delta) error
	GetReputation(ctx context.Context, userID uint64) (int64, error)
	History(ctx context.Context, userID uint64, cursor uint64, limit int) (*types.ReputationHistory, error)
}

// ReputationService users.reputation 的唯一修改入口
type ReputationService struct {
	DB       *gorm.DB
	UserDAO  *dao.Users
	EventDAO *dao.ReputationEventDAO
}

func (s *ReputationService) ApplyDelta(ctx context.Context, userID uint64, amount int64, reason string) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.Apply(ctx, tx, snowflake.GenActionID(), Delta{UserID: userID, Amount: amount, Reason: reason})
	})
	return storageErr(err)
}

func (s *ReputationService) Apply(ctx context.Context, tx *gorm.DB, actionID int64, deltas ...Delta) error {
	users := s.UserDAO.Tx(tx)
	events := make([]*models.ReputationEvent, 0, len(deltas))

	for _, d := range deltas {
		if d.Amount == 0 {
			continue
		}
		// 原子增减, 不做读改写
		rows, err := users.IncrReputation(ctx, d.UserID, d.Amount)
		if err != nil {
			return err
		}
		if rows == 0 {
			return ErrNotFound
		}

		ev := &models.ReputationEvent{
			UserID:     d.UserID,
			Amount:     d.Amount,
			Reason:     d.Reason,
			TargetKind: d.TargetKind,
			TargetID:   d.TargetID,
			ActionID:   actionID,
		}
		if len(d.Meta) > 0 {
			ev.Meta = datatypes.JSONMap(d.Meta)
		}
		events = append(events, ev)
	}

	return s.EventDAO.Tx(tx).BatchCreate(ctx, events)
}

func (s *ReputationService) GetReputation(ctx context.Context, userID uint64) (int64, error) {
	rep, err := s.UserDAO.GetReputation(ctx, userID)
	if err != nil {
		return 0, storageErr(err)
	}
	return rep, nil
}

func (s *ReputationService) History(ctx context.Context, userID uint64, cursor uint64, limit int) (*types.ReputationHistory, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	events, err := s.EventDAO.ListByUser(ctx, userID, cursor, limit+1)
	if err != nil {
		return nil, storageErr(err)
	}

	resp := &types.ReputationHistory{
		Items: make([]types.ReputationEventItem, 0, len(events)),
	}
	if len(events) > limit {
		resp.HasMore = true
		events = events[:limit]
		resp.NextCursor = events[len(events)-1].ID
	}

	for _, e := range events {
		resp.Items = append(resp.Items, types.ReputationEventItem{
			ID:         e.ID,
			Amount:     e.Amount,
			Reason:     e.Reason,
			TargetKind: e.TargetKind,
			TargetID:   e.TargetID,
			ActionID:   e.ActionID,
			CreatedAt:  e.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return resp, nil
}
