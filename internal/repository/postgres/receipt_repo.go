package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"hsatrack/internal/domain"
	"hsatrack/internal/port"
)

type receiptRepo struct {
	db *sqlx.DB
}

// NewReceiptRepo creates a new PostgreSQL-backed ReceiptRepository.
func NewReceiptRepo(db *sqlx.DB) port.ReceiptRepository {
	return &receiptRepo{db: db}
}

// Create inserts the three validated fields and reads back the row the sink
// assigned identity and timestamp to.
func (r *receiptRepo) Create(ctx context.Context, receipt *domain.Receipt) error {
	query := `INSERT INTO receipts (provider_name, service_date, cost)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`

	err := r.db.QueryRowxContext(ctx, query,
		receipt.Provider, receipt.ServiceDate, receipt.Cost,
	).Scan(&receipt.ID, &receipt.CreatedAt)
	if err != nil {
		return fmt.Errorf("receiptRepo.Create: %w", err)
	}
	return nil
}

func (r *receiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := r.db.GetContext(ctx, &receipt,
		"SELECT * FROM receipts WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("receiptRepo.GetByID: %w", err)
	}
	return &receipt, nil
}

func (r *receiptRepo) List(ctx context.Context, offset, limit int) ([]domain.Receipt, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM receipts")
	if err != nil {
		return nil, 0, fmt.Errorf("receiptRepo.List count: %w", err)
	}

	var receipts []domain.Receipt
	err = r.db.SelectContext(ctx, &receipts,
		`SELECT * FROM receipts ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("receiptRepo.List: %w", err)
	}
	return receipts, total, nil
}

func (r *receiptRepo) ListAll(ctx context.Context) ([]domain.Receipt, error) {
	var receipts []domain.Receipt
	err := r.db.SelectContext(ctx, &receipts,
		"SELECT * FROM receipts ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("receiptRepo.ListAll: %w", err)
	}
	return receipts, nil
}

func (r *receiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM receipts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("receiptRepo.Delete: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("receiptRepo.Delete rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReceiptNotFound
	}
	return nil
}
