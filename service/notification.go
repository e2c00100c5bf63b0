package service

import (
	"Quorum/config"
	"Quorum/dao"
	"Quorum/dao/cache"
	"Quorum/models"
	"Quorum/pkg/log"
	"Quorum/pkg/metrics"
	"Quorum/pkg/rocketmq"
	"Quorum/types"
	"context"
	"encoding/json"
	"fmt"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	answerNoticeTitle = "New Answer to Your Question"
	forumNoticeTitle  = "New Question in Forum"
	unknownUserName   = "Someone"
	publishWorkers    = 4
)

var _ INotificationService = (*NotificationService)(nil)

type INotificationService interface {
	// NotifyAnswerAuthor 通知问题作者有新回答, 同一 (回答, 接收人) 只写一次
	NotifyAnswerAuthor(ctx context.Context, questionID, answerID uint64) error
	NotifyAnswerAuthorTx(ctx context.Context, tx *gorm.DB, questionID, answerID uint64) ([]*models.Notification, error)
	// NotifyForumMembers 通知论坛其他成员有新问题
	NotifyForumMembers(ctx context.Context, questionID, forumID uint64) error
	NotifyForumMembersTx(ctx context.Context, tx *gorm.DB, questionID, forumID uint64) ([]*models.Notification, error)
	// AfterCommit 事务提交后清理未读缓存并投递事件
	AfterCommit(ctx context.Context, created []*models.Notification)

	MarkRead(ctx context.Context, notificationID, userID uint64) error
	MarkAllRead(ctx context.Context, userID uint64) error
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	List(ctx context.Context, userID uint64, page, pageSize int) (*types.NotificationList, error)
}

type NotificationService struct {
	Config          *config.Config
	DB              *gorm.DB
	NotificationDAO *dao.NotificationDAO
	QuestionDAO     *dao.QuestionDAO
	AnswerDAO       *dao.AnswerDAO
	UserDAO         *dao.Users
	ForumDAO        *dao.ForumDAO
	ForumMemberDAO  *dao.ForumMemberDAO
	Unread          *cache.UnreadStorage
	Publisher       rocketmq.Publisher
}

func (s *NotificationService) NotifyAnswerAuthor(ctx context.Context, questionID, answerID uint64) error {
	var created []*models.Notification
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = s.NotifyAnswerAuthorTx(ctx, tx, questionID, answerID)
		return err
	})
	if err != nil {
		return storageErr(err)
	}
	s.AfterCommit(ctx, created)
	return nil
}

func (s *NotificationService) NotifyAnswerAuthorTx(ctx context.Context, tx *gorm.DB, questionID, answerID uint64) ([]*models.Notification, error) {
	question, err := s.QuestionDAO.Tx(tx).FindById(ctx, questionID)
	if err != nil {
		return nil, storageErr(err)
	}
	answer, err := s.AnswerDAO.Tx(tx).FindById(ctx, answerID)
	if err != nil {
		return nil, storageErr(err)
	}
	if answer.QuestionID != question.ID {
		return nil, ErrInvalidArgument
	}
	// 自问自答不通知
	if answer.AuthorID == question.AuthorID {
		return nil, nil
	}

	names, err := s.UserDAO.Tx(tx).BatchGetNames(ctx, []uint64{answer.AuthorID})
	if err != nil {
		return nil, storageErr(err)
	}

	recipient := question.AuthorID
	n := &models.Notification{
		UserID:     recipient,
		Type:       models.NotificationAnswer,
		Title:      answerNoticeTitle,
		Content:    fmt.Sprintf(`%s answered your question: "%s"`, displayName(names, answer.AuthorID), question.Title),
		QuestionID: &question.ID,
		AnswerID:   &answer.ID,
		DedupKey:   fmt.Sprintf("answer:%d:%d", answer.ID, recipient),
	}
	return s.insert(ctx, tx, n)
}

func (s *NotificationService) NotifyForumMembers(ctx context.Context, questionID, forumID uint64) error {
	var created []*models.Notification
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		created, err = s.NotifyForumMembersTx(ctx, tx, questionID, forumID)
		return err
	})
	if err != nil {
		return storageErr(err)
	}
	s.AfterCommit(ctx, created)
	return nil
}

func (s *NotificationService) NotifyForumMembersTx(ctx context.Context, tx *gorm.DB, questionID, forumID uint64) ([]*models.Notification, error) {
	question, err := s.QuestionDAO.Tx(tx).FindById(ctx, questionID)
	if err != nil {
		return nil, storageErr(err)
	}
	// 只广播属于该论坛的问题
	if question.ForumID == nil || *question.ForumID != forumID {
		return nil, ErrInvalidArgument
	}
	forum, err := s.ForumDAO.Tx(tx).FindById(ctx, forumID)
	if err != nil {
		return nil, storageErr(err)
	}
	members, err := s.ForumMemberDAO.Tx(tx).MemberIDs(ctx, forumID)
	if err != nil {
		return nil, storageErr(err)
	}
	names, err := s.UserDAO.Tx(tx).BatchGetNames(ctx, []uint64{question.AuthorID})
	if err != nil {
		return nil, storageErr(err)
	}
	content := fmt.Sprintf(`%s posted a new question in %s: "%s"`, displayName(names, question.AuthorID), forum.Name, question.Title)

	created := make([]*models.Notification, 0, len(members))
	for _, uid := range members {
		if uid == question.AuthorID {
			continue
		}
		n := &models.Notification{
			UserID:     uid,
			Type:       models.NotificationForumQuestion,
			Title:      forumNoticeTitle,
			Content:    content,
			QuestionID: &question.ID,
			ForumID:    &forum.ID,
			DedupKey:   fmt.Sprintf("forum_question:%d:%d:%d", forum.ID, question.ID, uid),
		}
		list, err := s.insert(ctx, tx, n)
		if err != nil {
			return nil, err
		}
		created = append(created, list...)
	}
	return created, nil
}

// insert 去重写入, 已存在时返回空
func (s *NotificationService) insert(ctx context.Context, tx *gorm.DB, n *models.Notification) ([]*models.Notification, error) {
	ok, err := s.NotificationDAO.Tx(tx).InsertIgnore(ctx, n)
	if err != nil {
		return nil, storageErr(err)
	}
	if !ok {
		return nil, nil
	}
	return []*models.Notification{n}, nil
}

func (s *NotificationService) AfterCommit(ctx context.Context, created []*models.Notification) {
	if len(created) == 0 {
		return
	}

	recipients := make([]uint64, 0, len(created))
	for _, n := range created {
		recipients = append(recipients, n.UserID)
		metrics.NotificationsCreated.WithLabelValues(n.Type).Inc()
	}
	if err := s.Unread.Del(ctx, recipients...); err != nil {
		log.L.Warn("invalidate unread cache failed", zap.Uint64s("user_ids", recipients), zap.Error(err))
	}

	if s.Publisher == nil || !s.Config.RocketMQ.Enabled() {
		return
	}
	topic := s.Config.RocketMQ.NoticeTopic
	p := pool.New().WithMaxGoroutines(publishWorkers)
	for _, n := range created {
		p.Go(func() {
			body, err := json.Marshal(types.NoticeEvent{
				NotificationID: n.ID,
				UserID:         n.UserID,
				Type:           n.Type,
				Title:          n.Title,
				CreatedAt:      n.CreatedAt,
			})
			if err != nil {
				return
			}
			// 投递失败只记录, 通知已落库
			if err := s.Publisher.Publish(ctx, topic, body); err != nil {
				log.L.Warn("publish notice event failed", zap.Uint64("notification_id", n.ID), zap.Error(err))
			}
		})
	}
	p.Wait()
}

// MarkRead 只能标记自己的通知, 其他情况静默忽略
func (s *NotificationService) MarkRead(ctx context.Context, notificationID, userID uint64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if notificationID == 0 {
		return ErrInvalidArgument
	}
	rows, err := s.NotificationDAO.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return storageErr(err)
	}
	if rows > 0 {
		s.invalidate(ctx, userID)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uint64) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	rows, err := s.NotificationDAO.MarkAllRead(ctx, userID)
	if err != nil {
		return storageErr(err)
	}
	if rows > 0 {
		s.invalidate(ctx, userID)
	}
	return nil
}

// UnreadCount 先查缓存, 未命中回源数据库
func (s *NotificationService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	if userID == 0 {
		return 0, ErrUnauthenticated
	}
	n, hit, err := s.Unread.Get(ctx, userID)
	if err != nil {
		log.L.Warn("get unread cache failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
	if hit {
		return n, nil
	}

	var dbErr error
	n, err = s.Unread.Fill(ctx, userID, s.Config.Notification.UnreadCacheTTL, func() (int64, error) {
		count, err := s.NotificationDAO.CountUnread(ctx, userID)
		dbErr = err
		return count, err
	})
	if dbErr != nil {
		return 0, storageErr(dbErr)
	}
	if err != nil {
		log.L.Warn("fill unread cache failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
	return n, nil
}

func (s *NotificationService) List(ctx context.Context, userID uint64, page, pageSize int) (*types.NotificationList, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = types.DefaultPageSize
	}
	if pageSize > s.Config.Notification.MaxPageSize {
		pageSize = s.Config.Notification.MaxPageSize
	}

	list, err := s.NotificationDAO.ListByUser(ctx, userID, (page-1)*pageSize, pageSize+1)
	if err != nil {
		return nil, storageErr(err)
	}

	resp := &types.NotificationList{Items: make([]types.NotificationItem, 0, len(list))}
	if len(list) > pageSize {
		resp.HasMore = true
		list = list[:pageSize]
	}
	for _, n := range list {
		resp.Items = append(resp.Items, types.NotificationItem{
			ID:         n.ID,
			Type:       n.Type,
			Title:      n.Title,
			Content:    n.Content,
			QuestionID: n.QuestionID,
			AnswerID:   n.AnswerID,
			ForumID:    n.ForumID,
			IsRead:     n.IsRead,
			CreatedAt:  n.CreatedAt,
		})
	}
	return resp, nil
}

func (s *NotificationService) invalidate(ctx context.Context, userID uint64) {
	if err := s.Unread.Del(ctx, userID); err != nil {
		log.L.Warn("invalidate unread cache failed", zap.Uint64("user_id", userID), zap.Error(err))
	}
}

func displayName(names map[uint64]string, uid uint64) string {
	if name := names[uid]; name != "" {
		return name
	}
	return unknownUserName
}
