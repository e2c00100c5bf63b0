package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  env: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.App.Env)
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, DriverMySQL, conf.Database.Driver)
	assert.Equal(t, FlipCompound, conf.Reputation.FlipPolicy)
	assert.Equal(t, VoteWeights{VoterUp: 1, AuthorUp: 10, VoterDown: 2, AuthorDown: 10}, conf.Reputation.Question)
	assert.Equal(t, VoteWeights{VoterUp: 2, AuthorUp: 10, VoterDown: 2, AuthorDown: 10}, conf.Reputation.Answer)
	assert.Equal(t, int64(5), conf.Reputation.Rewards.Ask)
	assert.Equal(t, int64(20), conf.Reputation.Rewards.CreateForum)
	assert.Equal(t, 10*time.Minute, conf.Notification.UnreadCacheTTL)
	assert.False(t, conf.Redis.Enabled())
	assert.False(t, conf.RocketMQ.Enabled())
}

func TestParse_Overrides(t *testing.T) {
	raw := `
database:
  driver: sqlite
  path: /tmp/quorum.db
reputation:
  flip_policy: single
  answer:
    voter_up: 3
    author_up: 15
    voter_down: 1
    author_down: 5
notification:
  unread_cache_ttl: 30s
rocketmq:
  nameserver: ["127.0.0.1:9876"]
  notice_topic: quorum_notice
`
	conf, err := Parse([]byte(raw))
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, conf.Database.Driver)
	assert.Equal(t, FlipSingle, conf.Reputation.FlipPolicy)
	assert.Equal(t, int64(15), conf.Reputation.Answer.AuthorUp)
	// 未配置的部分仍使用默认值
	assert.Equal(t, int64(10), conf.Reputation.Question.AuthorUp)
	assert.Equal(t, 30*time.Second, conf.Notification.UnreadCacheTTL)
	assert.True(t, conf.RocketMQ.Enabled())
}

func TestParse_UnknownFlipPolicy(t *testing.T) {
	_, err := Parse([]byte("reputation:\n  flip_policy: triple\n"))
	require.Error(t, err)
}

func TestDatabase_Dsn(t *testing.T) {
	d := &Database{Host: "127.0.0.1", Port: 3306, Username: "root", Password: "pw", Name: "quorum"}
	assert.Equal(t, "root:pw@tcp(127.0.0.1:3306)/quorum?charset=utf8mb4&parseTime=True&loc=Local", d.Dsn())
}
