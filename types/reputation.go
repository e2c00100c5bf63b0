package types

type ReputationEventItem struct {
	ID         uint64 `json:"id"`
	Amount     int64  `json:"amount"`
	Reason     string `json:"reason"`
	TargetKind string `json:"target_kind,omitempty"`
	TargetID   uint64 `json:"target_id,omitempty"`
	ActionID   int64  `json:"action_id,string"`
	CreatedAt  string `json:"created_at"`
}

// ReputationHistory 声望流水, 游标分页
type ReputationHistory struct {
	Items      []ReputationEventItem `json:"items"`
	NextCursor uint64                `json:"next_cursor"`
	HasMore    bool                  `json:"has_more"`
}
