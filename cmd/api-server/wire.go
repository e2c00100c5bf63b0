//go:build wireinject
// +build wireinject

package main

import (
	"Quorum/config"
	"Quorum/dao"
	"Quorum/dao/cache"
	"Quorum/handler"
	"Quorum/internal/module/user"
	"Quorum/pkg/client"
	"Quorum/pkg/database"
	"Quorum/pkg/rocketmq"
	"Quorum/pkg/server"
	"Quorum/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		client.NewRedisClient,
		rocketmq.NewPublisher,
		database.NewDB,
		server.NewGinEngine,
		cache.ProviderSet,
		dao.ProviderSet,
		service.ProviderSet,
		user.ProviderSet,

		wire.Struct(new(handler.Vote), "*"),
		wire.Struct(new(handler.Answer), "*"),
		wire.Struct(new(handler.Question), "*"),
		wire.Struct(new(handler.Forum), "*"),
		wire.Struct(new(handler.Notification), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
