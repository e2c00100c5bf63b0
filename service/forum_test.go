package service

import (
	"Quorum/config"
	"Quorum/models"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateForum(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.FlipCompound)
	owner := env.newUser(t, "Owner")

	forum, err := env.forums.CreateForum(ctx, owner, "Go Lovers!", "", "all about go", "")
	require.NoError(t, err)
	assert.Equal(t, "go-lovers", forum.Slug)
	assert.Equal(t, int64(20), env.rep(t, owner))

	m, err := env.forums.ForumMemberDAO.Get(ctx, forum.ID, owner)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, models.ForumRoleAdmin, m.Role)

	_, err = env.forums.CreateForum(ctx, owner, "Go Lovers!", "other-slug", "", "")
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, int64(20), env.rep(t, owner))

	_, err = env.forums.CreateForum(ctx, 0, "x", "", "", "")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	_, err = env.forums.CreateForum(ctx, owner, "  ", "", "", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestJoinAndLeaveForum(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.FlipCompound)
	owner := env.newUser(t, "Owner")
	user := env.newUser(t, "User")

	forum, err := env.forums.CreateForum(ctx, owner, "Rustaceans", "", "", "")
	require.NoError(t, err)

	require.NoError(t, env.forums.JoinForum(ctx, user, forum.ID))
	assert.Equal(t, int64(2), env.rep(t, user))

	assert.ErrorIs(t, env.forums.JoinForum(ctx, user, forum.ID), ErrAlreadyMember)
	assert.Equal(t, int64(2), env.rep(t, user))
	assert.ErrorIs(t, env.forums.JoinForum(ctx, user, forum.ID+1), ErrNotFound)

	require.NoError(t, env.forums.LeaveForum(ctx, user, forum.ID))
	assert.ErrorIs(t, env.forums.LeaveForum(ctx, user, forum.ID), ErrNotMember)
	// 退出不扣声望
	assert.Equal(t, int64(2), env.rep(t, user))
}

func TestLeaveForum_LastAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.FlipCompound)
	owner := env.newUser(t, "Owner")
	second := env.newUser(t, "Second")

	forum, err := env.forums.CreateForum(ctx, owner, "Gophers", "", "", "")
	require.NoError(t, err)

	assert.ErrorIs(t, env.forums.LeaveForum(ctx, owner, forum.ID), ErrLastAdmin)

	require.NoError(t, env.forums.JoinForum(ctx, second, forum.ID))
	require.NoError(t, env.db.Model(&models.ForumMember{}).
		Where("forum_id = ? AND user_id = ?", forum.ID, second).
		Update("role", models.ForumRoleAdmin).Error)

	require.NoError(t, env.forums.LeaveForum(ctx, owner, forum.ID))
	assert.ErrorIs(t, env.forums.LeaveForum(ctx, second, forum.ID), ErrLastAdmin)
}

func TestCreateForum_DerivedSlug(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, config.FlipCompound)
	owner := env.newUser(t, "Owner")

	tests := []struct {
		name string
		want string
	}{
		{"Hello,  World!", "hello-world"},
		{"Go 1.24", "go-1-24"},
		{"Café Gophers", "cafe-gophers"},
	}
	for _, tt := range tests {
		forum, err := env.forums.CreateForum(ctx, owner, tt.name, "", "", "")
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, forum.Slug, tt.name)
	}

	// 名称无法生成 slug 时拒绝
	_, err := env.forums.CreateForum(ctx, owner, "!!!", "", "", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// 显式 slug 原样使用
	forum, err := env.forums.CreateForum(ctx, owner, "Explicit", "my-slug", "", "")
	require.NoError(t, err)
	assert.Equal(t, "my-slug", forum.Slug)
}
