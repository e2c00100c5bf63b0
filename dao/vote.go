package dao

import (
	"Quorum/models"
	"context"

	"gorm.io/gorm"
)

// VoteDAO 投票账本, 每个 (voter, target) 最多一行
type VoteDAO struct {
	Repo[models.Vote]
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{Repo: NewRepo[models.Vote](db)}
}

// Tx 绑定到事务
func (d *VoteDAO) Tx(tx *gorm.DB) *VoteDAO {
	return NewVoteDAO(tx)
}

// GetState 查询当前投票类型, 未投票返回空串
func (d *VoteDAO) GetState(ctx context.Context, voterID uint64, kind string, targetID uint64) (string, error) {
	var item models.Vote
	err := d.Db.WithContext(ctx).
		Where("voter_id = ? AND target_kind = ? AND target_id = ?", voterID, kind, targetID).
		Limit(1).Find(&item).Error
	if err != nil {
		return "", err
	}
	if item.ID == 0 {
		return "", nil
	}
	return item.Type, nil
}

// Insert 新增投票, 唯一键冲突返回 ErrConflict
func (d *VoteDAO) Insert(ctx context.Context, voterID uint64, kind string, targetID uint64, voteType string) error {
	item := &models.Vote{
		VoterID:    voterID,
		TargetKind: kind,
		TargetID:   targetID,
		Type:       voteType,
	}
	err := d.Db.WithContext(ctx).Create(item).Error
	if IsDuplicateKey(err) {
		return ErrConflict
	}
	return err
}

// UpdateType 条件更新 from -> to, 未命中返回 ErrConflict
func (d *VoteDAO) UpdateType(ctx context.Context, voterID uint64, kind string, targetID uint64, from, to string) error {
	res := d.Db.WithContext(ctx).Model(&models.Vote{}).
		Where("voter_id = ? AND target_kind = ? AND target_id = ? AND type = ?", voterID, kind, targetID, from).
		Update("type", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

// DeleteIf 仅当当前类型为 expected 时删除, 未命中返回 ErrConflict
func (d *VoteDAO) DeleteIf(ctx context.Context, voterID uint64, kind string, targetID uint64, expected string) error {
	res := d.Db.WithContext(ctx).
		Where("voter_id = ? AND target_kind = ? AND target_id = ? AND type = ?", voterID, kind, targetID, expected).
		Delete(&models.Vote{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrConflict
	}
	return nil
}

// Delete 账本约定的无条件删除, 不存在时不报错; 投票流程使用 DeleteIf
func (d *VoteDAO) Delete(ctx context.Context, voterID uint64, kind string, targetID uint64) error {
	return d.Db.WithContext(ctx).
		Where("voter_id = ? AND target_kind = ? AND target_id = ?", voterID, kind, targetID).
		Delete(&models.Vote{}).Error
}

// BatchGetStates 批量查询投票类型, 未投票的 target 不在结果中
func (d *VoteDAO) BatchGetStates(ctx context.Context, voterID uint64, kind string, targetIDs []uint64) (map[uint64]string, error) {
	result := make(map[uint64]string, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	var votes []*models.Vote
	err := d.Db.WithContext(ctx).
		Select("target_id", "type").
		Where("voter_id = ? AND target_kind = ? AND target_id IN ?", voterID, kind, targetIDs).
		Find(&votes).Error
	if err != nil {
		return nil, err
	}

	for _, v := range votes {
		result[v.TargetID] = v.Type
	}
	return result, nil
}
