package dao

import (
	"Quorum/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ForumDAO struct {
	Repo[models.Forum]
}

func NewForumDAO(db *gorm.DB) *ForumDAO {
	return &ForumDAO{Repo: NewRepo[models.Forum](db)}
}

func (d *ForumDAO) Tx(tx *gorm.DB) *ForumDAO {
	return NewForumDAO(tx)
}

type ForumMemberDAO struct {
	Repo[models.ForumMember]
}

func NewForumMemberDAO(db *gorm.DB) *ForumMemberDAO {
	return &ForumMemberDAO{Repo: NewRepo[models.ForumMember](db)}
}

func (d *ForumMemberDAO) Tx(tx *gorm.DB) *ForumMemberDAO {
	return NewForumMemberDAO(tx)
}

// Add 加入论坛, 已是成员返回 ErrConflict
func (d *ForumMemberDAO) Add(ctx context.Context, forumID, userID uint64, role string) error {
	err := d.Db.WithContext(ctx).Create(&models.ForumMember{
		ForumID: forumID,
		UserID:  userID,
		Role:    role,
	}).Error
	if IsDuplicateKey(err) {
		return ErrConflict
	}
	return err
}

// Get 成员记录, 不是成员返回 nil
func (d *ForumMemberDAO) Get(ctx context.Context, forumID, userID uint64) (*models.ForumMember, error) {
	var m models.ForumMember
	err := d.Db.WithContext(ctx).
		Where("forum_id = ? AND user_id = ?", forumID, userID).
		Limit(1).Find(&m).Error
	if err != nil {
		return nil, err
	}
	if m.ID == 0 {
		return nil, nil
	}
	return &m, nil
}

// LockAdmins 锁定论坛管理员行, sqlite 下锁子句会被忽略
func (d *ForumMemberDAO) LockAdmins(ctx context.Context, forumID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.ForumMember{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("forum_id = ? AND role = ?", forumID, models.ForumRoleAdmin).
		Pluck("user_id", &ids).Error
	return ids, err
}

func (d *ForumMemberDAO) Remove(ctx context.Context, forumID, userID uint64) (int64, error) {
	res := d.Db.WithContext(ctx).
		Where("forum_id = ? AND user_id = ?", forumID, userID).
		Delete(&models.ForumMember{})
	return res.RowsAffected, res.Error
}

// MemberIDs 论坛全部成员
func (d *ForumMemberDAO) MemberIDs(ctx context.Context, forumID uint64) ([]uint64, error) {
	var ids []uint64
	err := d.Db.WithContext(ctx).Model(&models.ForumMember{}).
		Where("forum_id = ?", forumID).
		Order("id ASC").
		Pluck("user_id", &ids).Error
	return ids, err
}
