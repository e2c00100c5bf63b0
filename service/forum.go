package service

import (
	"Quorum/config"
	"Quorum/dao"
	"Quorum/models"
	"Quorum/pkg/snowflake"
	"context"
	"errors"
	"strings"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

var _ IForumService = (*ForumService)(nil)

type IForumService interface {
	CreateForum(ctx context.Context, creatorID uint64, name, forumSlug, description, picture string) (*models.Forum, error)
	JoinForum(ctx context.Context, userID, forumID uint64) error
	// LeaveForum 最后一个管理员不能退出
	LeaveForum(ctx context.Context, userID, forumID uint64) error
}

type ForumService struct {
	Config         *config.Config
	DB             *gorm.DB
	ForumDAO       *dao.ForumDAO
	ForumMemberDAO *dao.ForumMemberDAO
	Reputation     IReputationService
}

// CreateForum 创建者自动成为管理员
func (s *ForumService) CreateForum(ctx context.Context, creatorID uint64, name, forumSlug, description, picture string) (*models.Forum, error) {
	if creatorID == 0 {
		return nil, ErrUnauthenticated
	}
	name = strings.TrimSpace(name)
	if forumSlug == "" {
		// 非 ASCII 名称先转写再生成
		forumSlug = slug.Make(name)
	}
	if name == "" || forumSlug == "" {
		return nil, ErrInvalidArgument
	}

	forum := &models.Forum{
		Name:        name,
		Slug:        forumSlug,
		Description: description,
		Picture:     picture,
		CreatorID:   creatorID,
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.ForumDAO.Tx(tx).Create(ctx, forum); err != nil {
			if dao.IsDuplicateKey(err) {
				return ErrAlreadyExists
			}
			return err
		}
		if err := s.ForumMemberDAO.Tx(tx).Add(ctx, forum.ID, creatorID, models.ForumRoleAdmin); err != nil {
			return err
		}
		return s.Reputation.Apply(ctx, tx, snowflake.GenActionID(), Delta{
			UserID: creatorID,
			Amount: s.Config.Reputation.Rewards.CreateForum,
			Reason: models.ReasonCreateForum,
			Meta:   map[string]any{"forum_id": forum.ID},
		})
	})
	if err != nil {
		return nil, storageErr(err)
	}
	return forum, nil
}

func (s *ForumService) JoinForum(ctx context.Context, userID, forumID uint64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.ForumDAO.Tx(tx).FindById(ctx, forumID); err != nil {
			return err
		}
		if err := s.ForumMemberDAO.Tx(tx).Add(ctx, forumID, userID, models.ForumRoleMember); err != nil {
			if errors.Is(err, dao.ErrConflict) {
				return ErrAlreadyMember
			}
			return err
		}
		return s.Reputation.Apply(ctx, tx, snowflake.GenActionID(), Delta{
			UserID: userID,
			Amount: s.Config.Reputation.Rewards.JoinForum,
			Reason: models.ReasonJoinForum,
			Meta:   map[string]any{"forum_id": forumID},
		})
	})
	return storageErr(err)
}

func (s *ForumService) LeaveForum(ctx context.Context, userID, forumID uint64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		members := s.ForumMemberDAO.Tx(tx)
		m, err := members.Get(ctx, forumID, userID)
		if err != nil {
			return err
		}
		if m == nil {
			return ErrNotMember
		}
		if m.Role == models.ForumRoleAdmin {
			admins, err := members.LockAdmins(ctx, forumID)
			if err != nil {
				return err
			}
			if len(admins) <= 1 {
				return ErrLastAdmin
			}
		}
		_, err = members.Remove(ctx, forumID, userID)
		return err
	})
	return storageErr(err)
}
