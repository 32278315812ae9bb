package config

import (
	"log"

	"go.uber.org/zap"
)

var Log *zap.Logger

// InitLogger builds the process-wide structured logger.
func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	Log = logger
}
