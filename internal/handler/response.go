package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hsatrack/internal/domain"
	"hsatrack/internal/extract"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response. The debug fields carry the
// exact prompt sent to the model and the exact raw text received back, and are
// populated only for failures that reached the model.
type APIError struct {
	Code             string `json:"code"`
	Message          string `json:"message"`
	DebugPrompt      string `json:"debug_prompt,omitempty"`
	DebugRawResponse string `json:"debug_raw_response,omitempty"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrReceiptNotFound):
		return http.StatusNotFound, "RECEIPT_NOT_FOUND", "receipt not found"
	case errors.Is(err, domain.ErrMissingFile):
		return http.StatusBadRequest, "MISSING_FILE", "no document supplied"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; only application/pdf is accepted"
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusBadRequest, "EMPTY_DOCUMENT", "uploaded document is empty"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrModelNotConfigured):
		return http.StatusInternalServerError, "SERVER_MISCONFIGURED", "model service credential is not configured"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// mapFailureKind translates a pipeline failure kind to an HTTP status and code.
func mapFailureKind(kind extract.FailureKind) (status int, code string) {
	switch kind {
	case extract.FailureConfig:
		return http.StatusInternalServerError, "SERVER_MISCONFIGURED"
	case extract.FailureInput:
		return http.StatusBadRequest, "INVALID_DOCUMENT"
	case extract.FailureService:
		return http.StatusBadGateway, "MODEL_SERVICE_ERROR"
	case extract.FailureParse:
		return http.StatusBadGateway, "MODEL_RESPONSE_UNPARSEABLE"
	case extract.FailureValidation:
		return http.StatusUnprocessableEntity, "VALIDATION_FAILED"
	case extract.FailurePersistence:
		return http.StatusInternalServerError, "PERSISTENCE_FAILED"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}

// HandleError maps a pipeline or domain error and sends the appropriate
// error response. Pipeline failures attach their diagnostics so callers can
// see what was sent to and received from the model.
func HandleError(c *gin.Context, err error) {
	if pe, ok := extract.AsPipelineError(err); ok {
		status, code := mapFailureKind(pe.Kind)
		if status >= 500 {
			requestID, _ := c.Get("request_id")
			log.Printf("[%s] pipeline error: %v", requestID, err)
		}
		c.JSON(status, APIResponse{
			Success: false,
			Error: &APIError{
				Code:             code,
				Message:          pe.Message,
				DebugPrompt:      pe.Diagnostics.Prompt,
				DebugRawResponse: pe.Diagnostics.RawModelText,
			},
		})
		return
	}

	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// parsePagination reads offset/limit query params with sane bounds.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset = queryInt(c, "offset", 0)
	limit = queryInt(c, "limit", 20)
	if offset < 0 {
		offset = 0
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return offset, limit
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
