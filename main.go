package main

import (
	"context"
	"log"

	"github.com/Saleh-enab/Cinema-API/cmd"
	"github.com/Saleh-enab/Cinema-API/internal/data/repository"
	"github.com/Saleh-enab/Cinema-API/internal/events"
	"github.com/Saleh-enab/Cinema-API/internal/wire"
	"github.com/Saleh-enab/Cinema-API/migrations"
	"github.com/Saleh-enab/Cinema-API/pkg/database"
	"github.com/Saleh-enab/Cinema-API/pkg/middleware"
	"github.com/Saleh-enab/Cinema-API/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if err := migrations.Apply(context.Background(), db); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	// Optional collaborators; both degrade to no-ops when unconfigured.
	rdb := middleware.NewRedisClient(config.Redis, logger)
	publisher := events.NewPublisher(config.AMQP, logger)
	defer publisher.Close()

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, config, rdb, publisher, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
