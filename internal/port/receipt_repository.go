package port

import (
	"context"

	"github.com/google/uuid"

	"hsatrack/internal/domain"
)

// ReceiptRepository abstracts the persistence sink for validated receipts.
// Create submits a single insert and fills in the sink-assigned ID and
// CreatedAt on the passed receipt.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Receipt, error)
	List(ctx context.Context, offset, limit int) ([]domain.Receipt, int, error)
	ListAll(ctx context.Context) ([]domain.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
