package types

import "time"

const DefaultPageSize = 20

type ListNotificationReq struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

type NotificationItem struct {
	ID         uint64    `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	QuestionID *uint64   `json:"question_id,omitempty"`
	AnswerID   *uint64   `json:"answer_id,omitempty"`
	ForumID    *uint64   `json:"forum_id,omitempty"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type NotificationList struct {
	Items   []NotificationItem `json:"items"`
	HasMore bool               `json:"has_more"`
}

// NoticeEvent 通知创建后投递到 MQ 的消息体
type NoticeEvent struct {
	NotificationID uint64    `json:"notification_id"`
	UserID         uint64    `json:"user_id"`
	Type           string    `json:"type"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
}
