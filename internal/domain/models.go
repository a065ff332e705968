package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sentinel is the literal the model uses to mark a field it could not determine.
const Sentinel = "Not Found"

// AcceptedContentType is the only upload media type the pipeline accepts.
const AcceptedContentType = "application/pdf"

// Receipt represents a persisted HSA receipt record. ID and CreatedAt are
// assigned by the database on insert; ServiceDate is stored verbatim as the
// string that survived validation.
type Receipt struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Provider    string    `db:"provider_name" json:"provider_name"`
	ServiceDate string    `db:"service_date" json:"service_date"`
	Cost        float64   `db:"cost" json:"cost"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
