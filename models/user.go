package models

import "time"

// Users 用户表, reputation 只允许通过声望流水入口修改
type Users struct {
	ID         uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name       string    `gorm:"column:name;size:64;not null" json:"name"`
	Username   string    `gorm:"column:username;size:64;index" json:"username"`
	Picture    string    `gorm:"column:picture;size:255" json:"picture"`
	Reputation int64     `gorm:"column:reputation;not null;default:0" json:"reputation"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string { return "users" }
