package port

import (
	"context"
	"io"
)

// UploadInput carries the data needed for an object storage upload.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// UploadOutput contains the result of an object storage upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage abstracts object storage operations for original-document
// archival.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Download(ctx context.Context, bucket, key string) ([]byte, error)
	Delete(ctx context.Context, bucket, key string) error
}
