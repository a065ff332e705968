package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hsatrack/internal/config"
	"hsatrack/internal/domain"
	"hsatrack/internal/extract"
	"hsatrack/internal/port"
	"hsatrack/internal/service"
	"hsatrack/mocks"
)

// newUploadInput builds a real multipart upload the way a browser would send it.
func newUploadInput(t *testing.T, filename, contentType string, data []byte) service.UploadInput {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="pdfFile"; filename=%q`, filename))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/extract", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	file, header, err := req.FormFile("pdfFile")
	require.NoError(t, err)

	return service.UploadInput{File: file, Header: header}
}

func newTestService(gateway *mocks.MockModelGateway, repo *mocks.MockReceiptRepo, storage port.ObjectStorage, bucket string) service.ReceiptService {
	pipeline := extract.NewPipeline(gateway, repo)
	return service.NewReceiptService(
		repo,
		pipeline,
		storage,
		&config.UploadConfig{MaxFileSizeMB: 10},
		&config.S3Config{Bucket: bucket},
	)
}

func okGateway(modelText string) *mocks.MockModelGateway {
	gateway := new(mocks.MockModelGateway)
	gateway.On("Configured").Return(true)
	gateway.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return(&port.ModelResponse{StatusOK: true, HTTPStatus: 200, RawText: modelText}, nil)
	return gateway
}

func okRepo() *mocks.MockReceiptRepo {
	repo := new(mocks.MockReceiptRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Receipt")).
		Run(func(args mock.Arguments) {
			r := args.Get(1).(*domain.Receipt)
			r.ID = uuid.New()
			r.CreatedAt = time.Now().UTC()
		}).
		Return(nil)
	return repo
}

const validModelText = `{"provider_name":"Acme Clinic","date_of_service":"2024-03-01","cost_of_service":"$45.00"}`

func TestExtractAndStore_Success(t *testing.T) {
	svc := newTestService(okGateway(validModelText), okRepo(), nil, "")

	input := newUploadInput(t, "receipt.pdf", "application/pdf", []byte("%PDF-1.4 receipt"))
	result, err := svc.ExtractAndStore(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Acme Clinic", result.Receipt.Provider)
	assert.Equal(t, 45.0, result.Receipt.Cost)
}

func TestExtractAndStore_RejectsWrongMediaType(t *testing.T) {
	gateway := new(mocks.MockModelGateway)
	repo := new(mocks.MockReceiptRepo)
	svc := newTestService(gateway, repo, nil, "")

	input := newUploadInput(t, "notes.txt", "text/plain", []byte("not a pdf"))
	_, err := svc.ExtractAndStore(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	gateway.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractAndStore_AcceptsMediaTypeWithParameters(t *testing.T) {
	svc := newTestService(okGateway(validModelText), okRepo(), nil, "")

	input := newUploadInput(t, "receipt.pdf", "application/pdf; charset=binary", []byte("%PDF-1.4 receipt"))
	_, err := svc.ExtractAndStore(context.Background(), input)

	require.NoError(t, err)
}

func TestExtractAndStore_RejectsTooLarge(t *testing.T) {
	gateway := new(mocks.MockModelGateway)
	repo := new(mocks.MockReceiptRepo)
	pipeline := extract.NewPipeline(gateway, repo)
	svc := service.NewReceiptService(repo, pipeline, nil,
		&config.UploadConfig{MaxFileSizeMB: 1},
		&config.S3Config{})

	big := make([]byte, 2<<20)
	input := newUploadInput(t, "receipt.pdf", "application/pdf", big)
	_, err := svc.ExtractAndStore(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestExtractAndStore_ArchivesOriginal(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "hsatrack-archive" && in.ContentType == "application/pdf"
	})).Return(&port.UploadOutput{Location: "s3://hsatrack-archive/receipts/x"}, nil)

	svc := newTestService(okGateway(validModelText), okRepo(), storage, "hsatrack-archive")

	input := newUploadInput(t, "receipt.pdf", "application/pdf", []byte("%PDF-1.4 receipt"))
	_, err := svc.ExtractAndStore(context.Background(), input)

	require.NoError(t, err)
	storage.AssertExpectations(t)
}

func TestExtractAndStore_ArchiveFailureDoesNotBlock(t *testing.T) {
	storage := new(mocks.MockObjectStorage)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket gone"))

	svc := newTestService(okGateway(validModelText), okRepo(), storage, "hsatrack-archive")

	input := newUploadInput(t, "receipt.pdf", "application/pdf", []byte("%PDF-1.4 receipt"))
	result, err := svc.ExtractAndStore(context.Background(), input)

	require.NoError(t, err)
	assert.NotNil(t, result.Receipt)
}
