package models

import "time"

type Question struct {
	ID        uint64    `gorm:"primaryKey;column:id" json:"id"`
	Title     string    `gorm:"column:title;size:255;not null" json:"title"`
	Content   string    `gorm:"column:content;type:text" json:"content"`
	AuthorID  uint64    `gorm:"column:author_id;not null;index" json:"author_id"`
	ForumID   *uint64   `gorm:"column:forum_id;index" json:"forum_id,omitempty"`
	Views     int64     `gorm:"column:views;not null;default:0" json:"views"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Question) TableName() string { return "questions" }

type Answer struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"id"`
	Content    string    `gorm:"column:content;type:text;not null" json:"content"`
	AuthorID   uint64    `gorm:"column:author_id;not null;index" json:"author_id"`
	QuestionID uint64    `gorm:"column:question_id;not null;index" json:"question_id"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Answer) TableName() string { return "answers" }
