package models

import "time"

const (
	ForumRoleAdmin  = "admin"
	ForumRoleMember = "member"
)

type Forum struct {
	ID          uint64    `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"column:name;size:64;not null;uniqueIndex" json:"name"`
	Slug        string    `gorm:"column:slug;size:64;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Picture     string    `gorm:"column:picture;size:255" json:"picture"`
	CreatorID   uint64    `gorm:"column:creator_id;not null" json:"creator_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Forum) TableName() string { return "forums" }

// ForumMember 唯一键: forum_id + user_id
type ForumMember struct {
	ID       uint64    `gorm:"primaryKey;column:id" json:"id"`
	ForumID  uint64    `gorm:"column:forum_id;not null;uniqueIndex:uk_forum_user,priority:1" json:"forum_id"`
	UserID   uint64    `gorm:"column:user_id;not null;uniqueIndex:uk_forum_user,priority:2;index" json:"user_id"`
	Role     string    `gorm:"column:role;size:16;not null;default:member" json:"role"`
	JoinedAt time.Time `gorm:"column:joined_at;autoCreateTime" json:"joined_at"`
}

func (ForumMember) TableName() string { return "forum_members" }
