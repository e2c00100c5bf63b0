package service

import (
	"Quorum/config"
	"Quorum/dao"
	"Quorum/models"
	"Quorum/pkg/log"
	"Quorum/pkg/metrics"
	"Quorum/pkg/snowflake"
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	_ IQuestionService = (*QuestionService)(nil)
	_ IAnswerService   = (*AnswerService)(nil)
)

type IQuestionService interface {
	CreateQuestion(ctx context.Context, authorID uint64, title, content string) (*models.Question, error)
	// AskInForum 在论坛内提问, 仅成员可提问, 并通知其他成员
	AskInForum(ctx context.Context, authorID, forumID uint64, title, content string) (*models.Question, error)
}

type QuestionService struct {
	Config         *config.Config
	DB             *gorm.DB
	QuestionDAO    *dao.QuestionDAO
	ForumDAO       *dao.ForumDAO
	ForumMemberDAO *dao.ForumMemberDAO
	Reputation     IReputationService
	Notification   INotificationService
}

func (s *QuestionService) CreateQuestion(ctx context.Context, authorID uint64, title, content string) (*models.Question, error) {
	return s.create(ctx, authorID, nil, title, content)
}

func (s *QuestionService) AskInForum(ctx context.Context, authorID, forumID uint64, title, content string) (*models.Question, error) {
	if forumID == 0 {
		return nil, ErrInvalidArgument
	}
	return s.create(ctx, authorID, &forumID, title, content)
}

func (s *QuestionService) create(ctx context.Context, authorID uint64, forumID *uint64, title, content string) (*models.Question, error) {
	if authorID == 0 {
		return nil, ErrUnauthenticated
	}
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(content) == "" {
		return nil, ErrInvalidArgument
	}

	q := &models.Question{Title: title, Content: content, AuthorID: authorID, ForumID: forumID}
	var notices []*models.Notification

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if forumID != nil {
			if _, err := s.ForumDAO.Tx(tx).FindById(ctx, *forumID); err != nil {
				return err
			}
			member, err := s.ForumMemberDAO.Tx(tx).Get(ctx, *forumID, authorID)
			if err != nil {
				return err
			}
			if member == nil {
				return ErrForbidden
			}
		}

		if err := s.QuestionDAO.Tx(tx).Create(ctx, q); err != nil {
			return err
		}
		err := s.Reputation.Apply(ctx, tx, snowflake.GenActionID(), Delta{
			UserID:     authorID,
			Amount:     s.Config.Reputation.Rewards.Ask,
			Reason:     models.ReasonAsk,
			TargetKind: models.TargetQuestion,
			TargetID:   q.ID,
		})
		if err != nil {
			return err
		}

		if forumID != nil {
			// 通知失败回滚到 savepoint, 不影响提问本身
			nerr := tx.Transaction(func(ntx *gorm.DB) error {
				var err error
				notices, err = s.Notification.NotifyForumMembersTx(ctx, ntx, q.ID, *forumID)
				return err
			})
			if nerr != nil {
				notices = nil
				metrics.NotificationFailures.WithLabelValues(models.NotificationForumQuestion).Inc()
				log.L.Error("notify forum members failed", zap.Uint64("question_id", q.ID), zap.Uint64("forum_id", *forumID), zap.Error(nerr))
			}
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	s.Notification.AfterCommit(ctx, notices)
	return q, nil
}

type IAnswerService interface {
	// CreateAnswer 回答问题并通知问题作者
	CreateAnswer(ctx context.Context, authorID, questionID uint64, content string) (*models.Answer, error)
}

type AnswerService struct {
	Config       *config.Config
	DB           *gorm.DB
	QuestionDAO  *dao.QuestionDAO
	AnswerDAO    *dao.AnswerDAO
	Reputation   IReputationService
	Notification INotificationService
}

func (s *AnswerService) CreateAnswer(ctx context.Context, authorID, questionID uint64, content string) (*models.Answer, error) {
	if authorID == 0 {
		return nil, ErrUnauthenticated
	}
	if questionID == 0 || strings.TrimSpace(content) == "" {
		return nil, ErrInvalidArgument
	}

	a := &models.Answer{Content: content, AuthorID: authorID, QuestionID: questionID}
	var notices []*models.Notification

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exist, err := s.QuestionDAO.Tx(tx).IsExist(ctx, "id = ?", questionID)
		if err != nil {
			return err
		}
		if !exist {
			return ErrNotFound
		}

		if err := s.AnswerDAO.Tx(tx).Create(ctx, a); err != nil {
			return err
		}
		err = s.Reputation.Apply(ctx, tx, snowflake.GenActionID(), Delta{
			UserID:     authorID,
			Amount:     s.Config.Reputation.Rewards.Answer,
			Reason:     models.ReasonAnswer,
			TargetKind: models.TargetAnswer,
			TargetID:   a.ID,
		})
		if err != nil {
			return err
		}

		// 通知失败回滚到 savepoint, 回答照常提交
		nerr := tx.Transaction(func(ntx *gorm.DB) error {
			var err error
			notices, err = s.Notification.NotifyAnswerAuthorTx(ctx, ntx, questionID, a.ID)
			return err
		})
		if nerr != nil {
			notices = nil
			metrics.NotificationFailures.WithLabelValues(models.NotificationAnswer).Inc()
			log.L.Error("notify answer author failed", zap.Uint64("question_id", questionID), zap.Uint64("answer_id", a.ID), zap.Error(nerr))
		}
		return nil
	})
	if err != nil {
		return nil, storageErr(err)
	}

	s.Notification.AfterCommit(ctx, notices)
	return a, nil
}
