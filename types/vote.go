package types

// VoteReq 投票请求, 投票人取自登录态
type VoteReq struct {
	TargetKind   string `json:"target_kind" binding:"required,oneof=question answer"`
	TargetID     uint64 `json:"target_id" binding:"required"`
	Action       string `json:"action" binding:"required,oneof=upvote downvote"`
	WasUpvoted   bool   `json:"was_upvoted"`
	WasDownvoted bool   `json:"was_downvoted"`
}

// VoteResult state 为服务端确认后的状态
type VoteResult struct {
	State       string `json:"state"`
	Changed     bool   `json:"changed"`
	VoterDelta  int64  `json:"voter_delta"`
	AuthorDelta int64  `json:"author_delta"`
}

type VoteStatusReq struct {
	TargetKind string `form:"target_kind" binding:"required,oneof=question answer"`
	TargetID   uint64 `form:"target_id" binding:"required"`
}

type BatchVoteStatusReq struct {
	TargetKind string   `json:"target_kind" binding:"required,oneof=question answer"`
	TargetIDs  []uint64 `json:"target_ids" binding:"required,max=100"`
}

type BatchVoteStatusResp struct {
	States map[uint64]string `json:"states"` // 未投票的 id 不返回
}
