package user

type ProfileResponse struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Picture    string `json:"picture"`
	Reputation int64  `json:"reputation"`
}

type HistoryRequest struct {
	Cursor uint64 `form:"cursor"`
	Limit  int    `form:"limit,default=20" binding:"max=100"`
}
