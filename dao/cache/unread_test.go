package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorage(t *testing.T) (*UnreadStorage, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rds := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rds.Close() })
	return NewUnreadStorage(rds), mr
}

func constant(n int64) func() (int64, error) {
	return func() (int64, error) { return n, nil }
}

func TestUnreadStorage_FillGetDel(t *testing.T) {
	ctx := context.Background()
	s, mr := newStorage(t)

	_, hit, err := s.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, hit)

	n, err := s.Fill(ctx, 7, time.Minute, constant(3))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, hit, err = s.Get(ctx, 7)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, int64(3), n)
	assert.True(t, mr.Exists("notice:unread:7"))

	require.NoError(t, s.Del(ctx, 7, 8))
	_, hit, err = s.Get(ctx, 7)
	require.NoError(t, err)
	assert.False(t, hit)

	ver, err := mr.Get("notice:unread:ver:7")
	require.NoError(t, err)
	assert.Equal(t, "1", ver)
}

// 回源期间发生写入, 旧值不能写回缓存
func TestUnreadStorage_FillSkippedWhenWrittenDuringLoad(t *testing.T) {
	ctx := context.Background()
	s, mr := newStorage(t)

	n, err := s.Fill(ctx, 7, time.Minute, func() (int64, error) {
		require.NoError(t, s.Del(ctx, 7))
		return 0, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	assert.False(t, mr.Exists("notice:unread:7"))

	// 没有并发写入时正常回填
	_, err = s.Fill(ctx, 7, time.Minute, constant(1))
	require.NoError(t, err)
	cached, err := mr.Get("notice:unread:7")
	require.NoError(t, err)
	assert.Equal(t, "1", cached)
}

func TestUnreadStorage_FillLoadError(t *testing.T) {
	ctx := context.Background()
	s, mr := newStorage(t)
	boom := errors.New("db down")

	_, err := s.Fill(ctx, 7, time.Minute, func() (int64, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("notice:unread:7"))
}

func TestUnreadStorage_TTL(t *testing.T) {
	ctx := context.Background()
	s, mr := newStorage(t)

	_, err := s.Fill(ctx, 1, time.Second, constant(5))
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	_, hit, err := s.Get(ctx, 1)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestUnreadStorage_Disabled(t *testing.T) {
	ctx := context.Background()
	s := NewUnreadStorage(nil)

	assert.False(t, s.Enabled())
	_, hit, err := s.Get(ctx, 1)
	assert.NoError(t, err)
	assert.False(t, hit)
	n, err := s.Fill(ctx, 1, time.Minute, constant(4))
	assert.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, s.Del(ctx, 1))
}
