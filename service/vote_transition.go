package service

import (
	"Quorum/config"
	"Quorum/models"
)

// VoteState 某用户对某内容的投票状态
type VoteState string

const (
	StateNone      VoteState = "none"
	StateUpvoted   VoteState = "upvoted"
	StateDownvoted VoteState = "downvoted"
)

const (
	ActionUpvote   = "upvote"
	ActionDownvote = "downvote"
)

// WriteOp 投票账本需要执行的写操作
type WriteOp int

const (
	WriteNone WriteOp = iota
	WriteInsert
	WriteUpdate
	WriteDelete
)

func (op WriteOp) String() string {
	switch op {
	case WriteInsert:
		return "insert"
	case WriteUpdate:
		return "update"
	case WriteDelete:
		return "delete"
	default:
		return "none"
	}
}

// Transition 一次状态迁移的结果
type Transition struct {
	From        VoteState
	To          VoteState
	Write       WriteOp
	VoterDelta  int64
	AuthorDelta int64
}

func (t Transition) Changed() bool {
	return t.Write != WriteNone
}

func (t Transition) Label() string {
	return string(t.From) + "->" + string(t.To)
}

// IntendedState 由请求动作和调用方认为的当前状态得出目标状态
// 调用方状态只用于判断意图, 真实的旧状态在事务内重新读取
func IntendedState(action string, wasUpvoted, wasDownvoted bool) (VoteState, error) {
	switch action {
	case ActionUpvote:
		if wasUpvoted {
			return StateNone, nil
		}
		return StateUpvoted, nil
	case ActionDownvote:
		if wasDownvoted {
			return StateNone, nil
		}
		return StateDownvoted, nil
	default:
		return "", ErrInvalidArgument
	}
}

// PlanTransition 计算 from -> to 需要的写操作与双方声望变化
func PlanTransition(from, to VoteState, w config.VoteWeights, flipPolicy string) Transition {
	t := Transition{From: from, To: to}
	if from == to {
		return t
	}

	switch {
	case from == StateNone:
		t.Write = WriteInsert
	case to == StateNone:
		t.Write = WriteDelete
	default:
		t.Write = WriteUpdate
	}

	if t.Write == WriteUpdate && flipPolicy == config.FlipSingle {
		// 只计新方向一次, 旧票的分值不撤销
		t.VoterDelta, t.AuthorDelta = contribution(to, w)
		return t
	}

	newVoter, newAuthor := contribution(to, w)
	oldVoter, oldAuthor := contribution(from, w)
	t.VoterDelta = newVoter - oldVoter
	t.AuthorDelta = newAuthor - oldAuthor
	return t
}

// contribution 某状态对投票人和作者声望的贡献
func contribution(s VoteState, w config.VoteWeights) (voter, author int64) {
	switch s {
	case StateUpvoted:
		return w.VoterUp, w.AuthorUp
	case StateDownvoted:
		return -w.VoterDown, -w.AuthorDown
	default:
		return 0, 0
	}
}

func stateOf(voteType string) VoteState {
	switch voteType {
	case models.VoteUp:
		return StateUpvoted
	case models.VoteDown:
		return StateDownvoted
	default:
		return StateNone
	}
}

func voteTypeOf(s VoteState) string {
	switch s {
	case StateUpvoted:
		return models.VoteUp
	case StateDownvoted:
		return models.VoteDown
	default:
		return ""
	}
}
