//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewQuestionDAO,
	NewAnswerDAO,
	NewVoteDAO,
	NewReputationEventDAO,
	NewNotificationDAO,
	NewForumDAO,
	NewForumMemberDAO,
)
