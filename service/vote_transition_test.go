package service

import (
	"Quorum/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	questionWeights = config.VoteWeights{VoterUp: 1, AuthorUp: 10, VoterDown: 2, AuthorDown: 10}
	answerWeights   = config.VoteWeights{VoterUp: 2, AuthorUp: 10, VoterDown: 2, AuthorDown: 10}
)

func TestIntendedState(t *testing.T) {
	cases := []struct {
		action  string
		wasUp   bool
		wasDown bool
		want    VoteState
		wantErr bool
	}{
		{ActionUpvote, false, false, StateUpvoted, false},
		{ActionUpvote, true, false, StateNone, false},
		{ActionUpvote, false, true, StateUpvoted, false},
		{ActionDownvote, false, false, StateDownvoted, false},
		{ActionDownvote, false, true, StateNone, false},
		{ActionDownvote, true, false, StateDownvoted, false},
		{"sidevote", false, false, "", true},
	}
	for _, c := range cases {
		got, err := IntendedState(c.action, c.wasUp, c.wasDown)
		if c.wantErr {
			assert.ErrorIs(t, err, ErrInvalidArgument)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%s up=%v down=%v", c.action, c.wasUp, c.wasDown)
	}
}

func TestPlanTransition(t *testing.T) {
	cases := []struct {
		name     string
		from, to VoteState
		weights  config.VoteWeights
		policy   string
		write    WriteOp
		voter    int64
		author   int64
	}{
		{"question none->up", StateNone, StateUpvoted, questionWeights, config.FlipCompound, WriteInsert, 1, 10},
		{"question up->none", StateUpvoted, StateNone, questionWeights, config.FlipCompound, WriteDelete, -1, -10},
		{"question none->down", StateNone, StateDownvoted, questionWeights, config.FlipCompound, WriteInsert, -2, -10},
		{"question down->none", StateDownvoted, StateNone, questionWeights, config.FlipCompound, WriteDelete, 2, 10},
		{"question down->up compound", StateDownvoted, StateUpvoted, questionWeights, config.FlipCompound, WriteUpdate, 3, 20},
		{"question up->down compound", StateUpvoted, StateDownvoted, questionWeights, config.FlipCompound, WriteUpdate, -3, -20},
		{"question down->up single", StateDownvoted, StateUpvoted, questionWeights, config.FlipSingle, WriteUpdate, 1, 10},
		{"question up->down single", StateUpvoted, StateDownvoted, questionWeights, config.FlipSingle, WriteUpdate, -2, -10},
		{"answer none->up", StateNone, StateUpvoted, answerWeights, config.FlipCompound, WriteInsert, 2, 10},
		{"answer none->down", StateNone, StateDownvoted, answerWeights, config.FlipCompound, WriteInsert, -2, -10},
		{"answer down->up compound", StateDownvoted, StateUpvoted, answerWeights, config.FlipCompound, WriteUpdate, 4, 20},
		{"answer up->down single", StateUpvoted, StateDownvoted, answerWeights, config.FlipSingle, WriteUpdate, -2, -10},
		{"same state", StateUpvoted, StateUpvoted, answerWeights, config.FlipCompound, WriteNone, 0, 0},
		{"none to none", StateNone, StateNone, answerWeights, config.FlipSingle, WriteNone, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := PlanTransition(c.from, c.to, c.weights, c.policy)
			assert.Equal(t, c.write, got.Write)
			assert.Equal(t, c.voter, got.VoterDelta)
			assert.Equal(t, c.author, got.AuthorDelta)
		})
	}
}

// 插入后删除, 双方声望回到原值
func TestPlanTransition_Conservation(t *testing.T) {
	for _, w := range []config.VoteWeights{questionWeights, answerWeights} {
		for _, s := range []VoteState{StateUpvoted, StateDownvoted} {
			in := PlanTransition(StateNone, s, w, config.FlipCompound)
			out := PlanTransition(s, StateNone, w, config.FlipCompound)
			assert.Zero(t, in.VoterDelta+out.VoterDelta)
			assert.Zero(t, in.AuthorDelta+out.AuthorDelta)
		}
	}
}
