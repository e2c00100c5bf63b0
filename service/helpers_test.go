package service

import (
	"Quorum/config"
	"Quorum/dao"
	"Quorum/dao/cache"
	"Quorum/models"
	"Quorum/pkg/database"
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	conf  *config.Config
	db    *gorm.DB
	mr    *miniredis.Miniredis
	pub   *recordPublisher
	users *dao.Users

	reputation   *ReputationService
	votes        *VoteService
	notification *NotificationService
	questions    *QuestionService
	answers      *AnswerService
	forums       *ForumService
}

// recordPublisher 记录投递的消息
type recordPublisher struct {
	mu     sync.Mutex
	topics []string
	bodies [][]byte
}

func (p *recordPublisher) Publish(_ context.Context, topic string, body []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	p.bodies = append(p.bodies, body)
	return nil
}

func (p *recordPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.bodies)
}

func newTestEnv(t *testing.T, flipPolicy string) *testEnv {
	t.Helper()

	conf, err := config.Parse([]byte("app:\n  env: test\nrocketmq:\n  nameserver: [\"127.0.0.1:9876\"]\n  notice_topic: quorum_notice\n"))
	require.NoError(t, err)
	conf.Reputation.FlipPolicy = flipPolicy

	db, err := database.Open(&config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "quorum.db"),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })

	env := &testEnv{conf: conf, db: db, mr: mr, pub: &recordPublisher{}, users: dao.NewUsers(db)}

	env.reputation = &ReputationService{
		DB:       db,
		UserDAO:  env.users,
		EventDAO: dao.NewReputationEventDAO(db),
	}
	env.notification = &NotificationService{
		Config:          conf,
		DB:              db,
		NotificationDAO: dao.NewNotificationDAO(db),
		QuestionDAO:     dao.NewQuestionDAO(db),
		AnswerDAO:       dao.NewAnswerDAO(db),
		UserDAO:         env.users,
		ForumDAO:        dao.NewForumDAO(db),
		ForumMemberDAO:  dao.NewForumMemberDAO(db),
		Unread:          cache.NewUnreadStorage(rds),
		Publisher:       env.pub,
	}
	env.votes = &VoteService{
		Config:      conf,
		DB:          db,
		VoteDAO:     dao.NewVoteDAO(db),
		UserDAO:     env.users,
		QuestionDAO: dao.NewQuestionDAO(db),
		AnswerDAO:   dao.NewAnswerDAO(db),
		Reputation:  env.reputation,
	}
	env.questions = &QuestionService{
		Config:         conf,
		DB:             db,
		QuestionDAO:    dao.NewQuestionDAO(db),
		ForumDAO:       dao.NewForumDAO(db),
		ForumMemberDAO: dao.NewForumMemberDAO(db),
		Reputation:     env.reputation,
		Notification:   env.notification,
	}
	env.answers = &AnswerService{
		Config:       conf,
		DB:           db,
		QuestionDAO:  dao.NewQuestionDAO(db),
		AnswerDAO:    dao.NewAnswerDAO(db),
		Reputation:   env.reputation,
		Notification: env.notification,
	}
	env.forums = &ForumService{
		Config:         conf,
		DB:             db,
		ForumDAO:       dao.NewForumDAO(db),
		ForumMemberDAO: dao.NewForumMemberDAO(db),
		Reputation:     env.reputation,
	}
	return env
}

func (e *testEnv) newUser(t *testing.T, name string) uint64 {
	t.Helper()
	u := &models.Users{Name: name}
	require.NoError(t, e.users.Create(context.Background(), u))
	return u.ID
}

func (e *testEnv) rep(t *testing.T, uid uint64) int64 {
	t.Helper()
	r, err := e.reputation.GetReputation(context.Background(), uid)
	require.NoError(t, err)
	return r
}

// newQuestion 直接落库, 不计提问奖励
func (e *testEnv) newQuestion(t *testing.T, authorID uint64) uint64 {
	t.Helper()
	q := &models.Question{Title: "How to vote?", Content: "body", AuthorID: authorID}
	require.NoError(t, e.db.Create(q).Error)
	return q.ID
}

// newAnswer 直接落库, 不计回答奖励也不发通知
func (e *testEnv) newAnswer(t *testing.T, authorID, questionID uint64) uint64 {
	t.Helper()
	a := &models.Answer{Content: "answer", AuthorID: authorID, QuestionID: questionID}
	require.NoError(t, e.db.Create(a).Error)
	return a.ID
}

func (e *testEnv) voteCount(t *testing.T, voterID uint64, kind string, targetID uint64) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(&models.Vote{}).
		Where("voter_id = ? AND target_kind = ? AND target_id = ?", voterID, kind, targetID).
		Count(&n).Error)
	return n
}
