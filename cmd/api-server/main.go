package main

import (
	"Quorum/config"
	"Quorum/models"
	"Quorum/pkg/database"
	"Quorum/pkg/log"
	"Quorum/pkg/server"
	"Quorum/pkg/snowflake"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.SetDebug(cfg.Debug())
	defer log.Sync()
	if err := snowflake.SetNode(cfg.App.NodeID); err != nil {
		log.L.Fatal("invalid app.node_id", zap.Int64("node_id", cfg.App.NodeID), zap.Error(err))
	}

	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider := InitServer(cfg)
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update tables",
				Action: func(ctx *cli.Context) error {
					db := database.NewDB(cfg)
					if err := db.WithContext(ctx.Context).AutoMigrate(models.All()...); err != nil {
						return err
					}
					log.L.Info("migrate success", zap.Int("tables", len(models.All())))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
