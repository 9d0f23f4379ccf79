package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/verdantcms/verdant"
	"github.com/verdantcms/verdant/views"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cfg := verdant.SiteConfig{
		Name:          verdant.EnvOr("SITE_NAME", "Verdant"),
		URL:           verdant.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:   os.Getenv("SITE_DESCRIPTION"),
		Addr:          verdant.EnvOr("ADDR", ":3000"),
		DatabasePath:  verdant.EnvOr("DATABASE_PATH", "data/site.db"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		UploadsDir:    verdant.EnvOr("UPLOADS_DIR", "data/uploads"),
	}

	if os.Getenv("AWS_ACCESS_KEY_ID") != "" {
		cfg.S3 = &verdant.S3Config{
			Region:          verdant.EnvOr("AWS_REGION", "us-east-1"),
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        os.Getenv("S3_ENDPOINT"),
			DisableSSL:      os.Getenv("S3_DISABLE_SSL") == "true",
			BucketPrefix:    os.Getenv("S3_BUCKET_PREFIX"),
		}
	}

	app := verdant.New(cfg, views.Default(cfg), logger)
	logger.Info("starting site", zap.String("addr", cfg.Addr), zap.String("url", cfg.URL))
	if err := app.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
