package main

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/verdantcms/verdant"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	relay := verdant.NewRelay(verdant.EnvOr("UPLOADS_DIR", "uploads"), logger)
	addr := verdant.EnvOr("RELAY_ADDR", ":3001")
	logger.Info("upload relay listening", zap.String("addr", addr))
	if err := relay.Start(addr); err != nil {
		logger.Fatal("relay stopped", zap.Error(err))
	}
}
