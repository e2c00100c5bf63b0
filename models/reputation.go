package models

import (
	"time"

	"gorm.io/datatypes"
)

// 声望变动原因
const (
	ReasonAsk         = "ask"
	ReasonAnswer      = "answer"
	ReasonCreateForum = "create_forum"
	ReasonJoinForum   = "join_forum"
	ReasonVoteCast    = "vote_cast"     // 投票人
	ReasonVoteReceive = "vote_received" // 内容作者
)

// ReputationEvent 声望流水, 只追加
// 与 users.reputation 的变更在同一事务内写入
type ReputationEvent struct {
	ID         uint64            `gorm:"primaryKey;column:id" json:"id"`
	UserID     uint64            `gorm:"column:user_id;not null;index:idx_user_id" json:"user_id"`
	Amount     int64             `gorm:"column:amount;not null" json:"amount"`
	Reason     string            `gorm:"column:reason;size:32;not null" json:"reason"`
	TargetKind string            `gorm:"column:target_kind;size:16" json:"target_kind,omitempty"`
	TargetID   uint64            `gorm:"column:target_id" json:"target_id,omitempty"`
	ActionID   int64             `gorm:"column:action_id;index:idx_action_id" json:"action_id"`
	Meta       datatypes.JSONMap `gorm:"column:meta" json:"meta,omitempty"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReputationEvent) TableName() string { return "reputation_events" }
