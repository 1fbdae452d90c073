package main

import (
	"context"
	"log"

	"github.com/peoplecore/employee-records/internal/bootstrap"
	"github.com/peoplecore/employee-records/internal/config"
	"github.com/peoplecore/employee-records/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	logger.InfoLog(ctx, "Starting server on port %s", config.DefaultEnvConfig.APP_PORT)
	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "server stopped: %v", err)
		log.Fatal(err)
	}
}
