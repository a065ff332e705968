package main

import (
	"fmt"
	"log"

	"hsatrack/internal/config"
	"hsatrack/internal/extract"
	"hsatrack/internal/extract/gemini"
	"hsatrack/internal/handler"
	"hsatrack/internal/port"
	"hsatrack/internal/repository/postgres"
	"hsatrack/internal/router"
	"hsatrack/internal/service"
	s3storage "hsatrack/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Gemini.APIKey == "" {
		log.Printf("warning: HSATRACK_GEMINI_API_KEY is not set; extraction requests will fail with a configuration error")
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	receiptRepo := postgres.NewReceiptRepo(db)
	gateway := gemini.NewClient(&cfg.Gemini)
	pipeline := extract.NewPipeline(gateway, receiptRepo)

	// Object storage is optional; archival is disabled without a bucket.
	var storage port.ObjectStorage
	if cfg.S3.Bucket != "" {
		storage, err = s3storage.NewS3Client(&cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	receiptSvc := service.NewReceiptService(receiptRepo, pipeline, storage, &cfg.Upload, &cfg.S3)

	receiptH := handler.NewReceiptHandler(receiptSvc)
	healthH := handler.NewHealthHandler(db)

	r := router.Setup(cfg, receiptH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
