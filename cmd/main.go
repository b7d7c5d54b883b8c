package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mishpatech/lawdocs-backend/internal/app"
	"github.com/mishpatech/lawdocs-backend/internal/pkg/logger"
)

func main() {
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := context.Background()
	application, err := app.New(ctx, log)
	if err != nil {
		log.Fatal("app init failed", "error", err)
	}
	defer application.Close(ctx)

	if err := application.Run(); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
