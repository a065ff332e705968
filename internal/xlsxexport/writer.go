package xlsxexport

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"hsatrack/internal/domain"
)

const sheet = "Receipts"

// headers defines the workbook header row.
var headers = []string{
	"Provider",
	"Service Date",
	"Cost",
	"Recorded At",
}

// WriteReceipts renders the given receipts as an XLSX workbook and returns its
// bytes. Service dates are written verbatim as stored.
func WriteReceipts(receipts []domain.Receipt) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell %d: %w", i, err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("writing header %q: %w", h, err)
		}
	}

	for row, r := range receipts {
		values := []interface{}{
			r.Provider,
			r.ServiceDate,
			r.Cost,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, fmt.Errorf("cell %d,%d: %w", col, row, err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("writing cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
