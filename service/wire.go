package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ReputationService), "*"),
	wire.Bind(new(IReputationService), new(*ReputationService)),

	wire.Struct(new(VoteService), "*"),
	wire.Bind(new(IVoteService), new(*VoteService)),

	wire.Struct(new(NotificationService), "*"),
	wire.Bind(new(INotificationService), new(*NotificationService)),

	wire.Struct(new(QuestionService), "*"),
	wire.Bind(new(IQuestionService), new(*QuestionService)),

	wire.Struct(new(AnswerService), "*"),
	wire.Bind(new(IAnswerService), new(*AnswerService)),

	wire.Struct(new(ForumService), "*"),
	wire.Bind(new(IForumService), new(*ForumService)),
)
