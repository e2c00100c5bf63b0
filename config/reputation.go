package config

import "fmt"

const (
	// FlipCompound 反转投票时先撤销旧票再计新票
	FlipCompound = "compound"
	// FlipSingle 反转投票时只计新方向的单次分值
	FlipSingle = "single"
)

// VoteWeights 一类内容的投票分值
type VoteWeights struct {
	VoterUp    int64 `json:"voter_up" yaml:"voter_up"`
	AuthorUp   int64 `json:"author_up" yaml:"author_up"`
	VoterDown  int64 `json:"voter_down" yaml:"voter_down"`
	AuthorDown int64 `json:"author_down" yaml:"author_down"`
}

func (w VoteWeights) isZero() bool {
	return w == VoteWeights{}
}

// Rewards 内容创建奖励
type Rewards struct {
	Ask         int64 `json:"ask" yaml:"ask"`
	Answer      int64 `json:"answer" yaml:"answer"`
	CreateForum int64 `json:"create_forum" yaml:"create_forum"`
	JoinForum   int64 `json:"join_forum" yaml:"join_forum"`
}

// Reputation 声望规则
type Reputation struct {
	FlipPolicy string      `json:"flip_policy" yaml:"flip_policy"`
	Question   VoteWeights `json:"question" yaml:"question"`
	Answer     VoteWeights `json:"answer" yaml:"answer"`
	Rewards    *Rewards    `json:"rewards" yaml:"rewards"`
}

func DefaultReputation() *Reputation {
	r := &Reputation{}
	r.fill()
	return r
}

func (r *Reputation) fill() {
	if r.FlipPolicy == "" {
		r.FlipPolicy = FlipCompound
	}
	if r.Question.isZero() {
		r.Question = VoteWeights{VoterUp: 1, AuthorUp: 10, VoterDown: 2, AuthorDown: 10}
	}
	if r.Answer.isZero() {
		r.Answer = VoteWeights{VoterUp: 2, AuthorUp: 10, VoterDown: 2, AuthorDown: 10}
	}
	if r.Rewards == nil {
		r.Rewards = &Rewards{Ask: 5, Answer: 10, CreateForum: 20, JoinForum: 2}
	}
}

func (r *Reputation) Validate() error {
	switch r.FlipPolicy {
	case FlipCompound, FlipSingle:
		return nil
	default:
		return fmt.Errorf("unknown reputation.flip_policy %q", r.FlipPolicy)
	}
}
