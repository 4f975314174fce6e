package main

import (
	"context"
	"log"

	"github.com/plateful/plateful-backend/cmd/config"
	migration "github.com/plateful/plateful-backend/cmd/database/migrate"
	"github.com/plateful/plateful-backend/cmd/database/seed"
	"github.com/plateful/plateful-backend/internal/utils"
	"github.com/plateful/plateful-backend/internal/utils/logging"
	"github.com/plateful/plateful-backend/internal/utils/storage"
)

func main() {
	utils.LoadConfig()

	logger, err := logging.New(utils.GetConfig("APP_ENV"))
	if err != nil {
		log.Fatalf("error creating logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.ConnectDB()
	if err != nil {
		logger.Fatal("database connection failed", "error", err)
	}

	if err := migration.Migrate(db); err != nil {
		logger.Fatal("database migration failed", "error", err)
	}

	if err := seed.Run(context.Background(), db, storage.NewAwsS3(), logger); err != nil {
		logger.Fatal("ingredient seed failed", "error", err)
	}

	app, err := config.NewApp(db, logger)
	if err != nil {
		logger.Fatal("app initialization failed", "error", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
