package models

import "time"

const (
	NotificationAnswer        = "answer"
	NotificationForumQuestion = "forum_question"
)

// Notification 站内通知
// dedup_key 唯一, 同一事件对同一接收人只会写入一次
type Notification struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"id"`
	UserID     uint64    `gorm:"column:user_id;not null;index:idx_user_read,priority:1" json:"user_id"`
	Type       string    `gorm:"column:type;size:32;not null" json:"type"`
	Title      string    `gorm:"column:title;size:255;not null" json:"title"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	QuestionID *uint64   `gorm:"column:question_id" json:"question_id,omitempty"`
	AnswerID   *uint64   `gorm:"column:answer_id" json:"answer_id,omitempty"`
	ForumID    *uint64   `gorm:"column:forum_id" json:"forum_id,omitempty"`
	IsRead     bool      `gorm:"column:is_read;not null;default:false;index:idx_user_read,priority:2" json:"is_read"`
	DedupKey   string    `gorm:"column:dedup_key;size:128;not null;uniqueIndex:uk_dedup_key" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
