package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hsatrack/internal/service"
)

// ReceiptHandler handles receipt extraction and management endpoints.
type ReceiptHandler struct {
	receiptService service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptService service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// extractResponse is the success payload for POST /extract. Diagnostics are
// deliberately absent here; they surface only in error responses.
type extractResponse struct {
	ExtractedData extractedData `json:"extracted_data"`
	Receipt       interface{}   `json:"receipt"`
}

type extractedData struct {
	ProviderName  string `json:"provider_name"`
	DateOfService string `json:"date_of_service"`
	CostOfService string `json:"cost_of_service"`
}

// Extract handles POST /extract. It accepts a single multipart PDF under the
// pdfFile field, runs the extraction pipeline, and returns either the stored
// receipt with the extracted fields or a classified failure with diagnostics.
func (h *ReceiptHandler) Extract(c *gin.Context) {
	file, header, err := c.Request.FormFile("pdfFile")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "pdfFile field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.receiptService.ExtractAndStore(c.Request.Context(), service.UploadInput{
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, extractResponse{
		ExtractedData: extractedData{
			ProviderName:  result.Fields.Provider,
			DateOfService: result.Fields.ServiceDate,
			CostOfService: result.Fields.Cost,
		},
		Receipt: result.Receipt,
	})
}

// List handles GET /api/v1/receipts with offset/limit pagination.
func (h *ReceiptHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	receipts, total, err := h.receiptService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, receipts, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/receipts/:id.
func (h *ReceiptHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, receipt)
}

// Delete handles DELETE /api/v1/receipts/:id.
func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid receipt ID")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"deleted": id})
}

// Export handles GET /api/v1/receipts/export, returning all stored receipts
// as an XLSX workbook.
func (h *ReceiptHandler) Export(c *gin.Context) {
	data, err := h.receiptService.ExportXLSX(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("receipts-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
