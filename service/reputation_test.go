package service

import (
	"Quorum/config"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDelta(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.FlipCompound)
	u := env.newUser(t, "U")

	require.NoError(t, env.reputation.ApplyDelta(ctx, u, 15, "manual"))
	require.NoError(t, env.reputation.ApplyDelta(ctx, u, -40, "manual"))
	// 声望可以为负
	assert.Equal(t, int64(-25), env.rep(t, u))

	assert.ErrorIs(t, env.reputation.ApplyDelta(ctx, u+100, 1, "manual"), ErrNotFound)

	_, err := env.reputation.GetReputation(ctx, u+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestHistory_CursorPagination(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.FlipCompound)
	u := env.newUser(t, "U")
	for i := 1; i <= 5; i++ {
		require.NoError(t, env.reputation.ApplyDelta(ctx, u, int64(i), "manual"))
	}

	first, err := env.reputation.History(ctx, u, 0, 2)
	require.NoError(t, err)
	require.Len(t, first.Items, 2)
	assert.True(t, first.HasMore)
	assert.Equal(t, int64(5), first.Items[0].Amount)

	second, err := env.reputation.History(ctx, u, first.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, second.Items, 2)
	assert.Equal(t, int64(3), second.Items[0].Amount)

	last, err := env.reputation.History(ctx, u, second.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, last.Items, 1)
	assert.False(t, last.HasMore)
	assert.Equal(t, uint64(0), last.NextCursor)
}
