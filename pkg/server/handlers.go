package server

import (
	"Quorum/handler"
	"Quorum/internal/module/user"
)

type Handlers struct {
	Vote         *handler.Vote
	Answer       *handler.Answer
	Question     *handler.Question
	Forum        *handler.Forum
	Notification *handler.Notification
	User         *user.Handler
}
