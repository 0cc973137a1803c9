package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/cypu/rulebook-api/internal/app"
	"github.com/cypu/rulebook-api/internal/config"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	unsugared, err := createLogger(cfg)
	if err != nil {
		log.Fatal(err)
	}
	logger := unsugared.Sugar()
	defer func() { _ = logger.Sync() }()

	if err := app.Run(cfg, logger); err != nil {
		logger.Fatalw("server stopped", "error", err)
	}
}

func createLogger(cfg config.Config) (logger *zap.Logger, err error) {
	if cfg.Development {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return logger, nil
}
