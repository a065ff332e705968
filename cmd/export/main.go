// Command export dumps all stored receipts to an XLSX workbook without going
// through the HTTP server.
// Usage: go run ./cmd/export [output.xlsx]
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"hsatrack/internal/config"
	"hsatrack/internal/repository/postgres"
	"hsatrack/internal/xlsxexport"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outPath := fmt.Sprintf("receipts-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	repo := postgres.NewReceiptRepo(db)

	receipts, err := repo.ListAll(context.Background())
	if err != nil {
		return fmt.Errorf("loading receipts: %w", err)
	}

	data, err := xlsxexport.WriteReceipts(receipts)
	if err != nil {
		return fmt.Errorf("building workbook: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	log.Printf("Exported %d receipts to %s", len(receipts), outPath)
	return nil
}
