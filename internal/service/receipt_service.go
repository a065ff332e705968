package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"hsatrack/internal/config"
	"hsatrack/internal/domain"
	"hsatrack/internal/extract"
	"hsatrack/internal/port"
	"hsatrack/internal/xlsxexport"
)

// UploadInput is the DTO for receipt extraction requests.
type UploadInput struct {
	File   multipart.File
	Header *multipart.FileHeader
}

// ReceiptService defines the receipt management contract.
type ReceiptService interface {
	ExtractAndStore(ctx context.Context, input UploadInput) (*extract.Result, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Receipt, error)
	List(ctx context.Context, offset, limit int) ([]domain.Receipt, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type receiptService struct {
	receipts  port.ReceiptRepository
	pipeline  *extract.Pipeline
	storage   port.ObjectStorage // nil disables archival
	uploadCfg *config.UploadConfig
	s3Cfg     *config.S3Config
}

// NewReceiptService creates a new ReceiptService implementation. Pass a nil
// storage to disable original-document archival.
func NewReceiptService(
	receipts port.ReceiptRepository,
	pipeline *extract.Pipeline,
	storage port.ObjectStorage,
	uploadCfg *config.UploadConfig,
	s3Cfg *config.S3Config,
) ReceiptService {
	return &receiptService{
		receipts:  receipts,
		pipeline:  pipeline,
		storage:   storage,
		uploadCfg: uploadCfg,
		s3Cfg:     s3Cfg,
	}
}

// ExtractAndStore validates the upload, archives the original document, and
// runs the extraction pipeline. Upload validation happens before pipeline
// entry; wrong media types never reach the model.
func (s *receiptService) ExtractAndStore(ctx context.Context, input UploadInput) (*extract.Result, error) {
	declared := input.Header.Header.Get("Content-Type")
	if mediaType(declared) != domain.AcceptedContentType {
		return nil, domain.ErrUnsupportedFileType
	}

	maxBytes := s.uploadCfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	data, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading uploaded file: %w", err)
	}

	s.archive(ctx, data, input.Header.Filename)

	return s.pipeline.Run(ctx, data)
}

// archive stores the original PDF in object storage. Archival is best-effort:
// failures are logged but never block extraction.
func (s *receiptService) archive(ctx context.Context, data []byte, filename string) {
	if s.storage == nil || s.s3Cfg == nil || s.s3Cfg.Bucket == "" {
		return
	}
	key := fmt.Sprintf("receipts/%s/%s", uuid.New(), filename)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: domain.AcceptedContentType,
	})
	if err != nil {
		log.Printf("receiptService.archive: failed to archive %s: %v", key, err)
	}
}

func (s *receiptService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Receipt, error) {
	return s.receipts.GetByID(ctx, id)
}

func (s *receiptService) List(ctx context.Context, offset, limit int) ([]domain.Receipt, int, error) {
	return s.receipts.List(ctx, offset, limit)
}

func (s *receiptService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.receipts.Delete(ctx, id)
}

// ExportXLSX returns all stored receipts as an Excel workbook.
func (s *receiptService) ExportXLSX(ctx context.Context) ([]byte, error) {
	receipts, err := s.receipts.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return xlsxexport.WriteReceipts(receipts)
}

// mediaType strips any parameters from a Content-Type header value.
func mediaType(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(strings.ToLower(contentType))
}
