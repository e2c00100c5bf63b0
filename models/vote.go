package models

import "time"

const (
	TargetQuestion = "question"
	TargetAnswer   = "answer"

	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Vote 投票记录
// 唯一键: voter_id + target_kind + target_id, 每人对每个内容最多一票
// 行不存在表示未投票
type Vote struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"id"`
	VoterID    uint64    `gorm:"column:voter_id;not null;uniqueIndex:uk_vote_target,priority:1" json:"voter_id"`
	TargetKind string    `gorm:"column:target_kind;size:16;not null;uniqueIndex:uk_vote_target,priority:2" json:"target_kind"`
	TargetID   uint64    `gorm:"column:target_id;not null;uniqueIndex:uk_vote_target,priority:3" json:"target_id"`
	Type       string    `gorm:"column:type;size:16;not null" json:"type"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Vote) TableName() string { return "votes" }

func IsTargetKind(kind string) bool {
	return kind == TargetQuestion || kind == TargetAnswer
}
