package types

import "time"

type CreateQuestionReq struct {
	Title   string `json:"title" binding:"required,max=255"`
	Content string `json:"content" binding:"required"`
}

type CreateAnswerReq struct {
	QuestionID uint64 `json:"question_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type CreateForumReq struct {
	Name        string `json:"name" binding:"required,max=64"`
	Slug        string `json:"slug" binding:"omitempty,max=64"`
	Description string `json:"description"`
	Picture     string `json:"picture"`
}

type QuestionItem struct {
	ID        uint64    `json:"id"`
	Title     string    `json:"title"`
	AuthorID  uint64    `json:"author_id"`
	ForumID   *uint64   `json:"forum_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AnswerItem struct {
	ID         uint64    `json:"id"`
	QuestionID uint64    `json:"question_id"`
	AuthorID   uint64    `json:"author_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ForumItem struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Picture     string    `json:"picture"`
	CreatedAt   time.Time `json:"created_at"`
}
