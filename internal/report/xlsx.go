// Package report renders a run ledger into the output artifacts.
package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
)

// Writer materializes the ledger as spreadsheet/CSV files in the output
// folder.
type Writer struct {
	logger *slog.Logger
}

func NewWriter(logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger}
}

// WorkbookBytes builds the results workbook (all extraction results) as
// XLSX bytes.
func (w *Writer) WorkbookBytes(ledger *entity.RunLedger) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		w.logger.Debug("report.xlsx.default_sheet", "error", err)
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Source File",
		"Proposed Name",
		"Target Path",
		"Invoice Number",
		"Invoice Date",
		"Total Amount",
		"Vendor",
		"Status",
		"Details",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range ledger.Entries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, e.Result.SourcePath)
		write(2, e.Action.TargetFileName)
		write(3, e.Action.TargetPath())
		write(4, e.Result.Fields.InvoiceNumberOr(""))
		write(5, e.Result.Fields.DateString())
		write(6, e.Result.Fields.TotalString())
		write(7, e.Result.Fields.VendorOr(""))
		write(8, string(e.Result.Status))
		write(9, e.Result.Reason)
		row++
	}

	// Widen the path and detail columns
	_ = f.SetColWidth(sheet, "A", "A", 48)
	_ = f.SetColWidth(sheet, "B", "C", 40)
	_ = f.SetColWidth(sheet, "D", "G", 18)
	_ = f.SetColWidth(sheet, "H", "H", 10)
	_ = f.SetColWidth(sheet, "I", "I", 40)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteWorkbook writes the results workbook into the output folder and
// returns its path. Dry runs get the Preview_ prefix.
func (w *Writer) WriteWorkbook(ledger *entity.RunLedger, outputFolder string) (string, error) {
	data, err := w.WorkbookBytes(ledger)
	if err != nil {
		return "", err
	}
	stamp := ledger.StartedAt.Format("20060102_1504")
	name := fmt.Sprintf("Invoices_Extracted_%s.xlsx", stamp)
	if ledger.Mode == entity.ModeDryRun {
		name = fmt.Sprintf("Preview_%s.xlsx", stamp)
	}
	path := filepath.Join(outputFolder, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write workbook: %w", err)
	}
	w.logger.Info("report.xlsx.ok", "path", path, "rows", ledger.Total())
	return path, nil
}
