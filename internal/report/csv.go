package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
)

// WritePreviewCSV writes preview.csv (planned destinations). Produced for
// dry runs only; the caller gates on the mode.
func (w *Writer) WritePreviewCSV(ledger *entity.RunLedger, outputFolder string) (string, error) {
	path := filepath.Join(outputFolder, "preview.csv")
	rows := [][]string{{"Original_Filename", "Proposed_Filename", "Target_Path", "Status"}}
	for _, e := range ledger.Entries {
		rows = append(rows, []string{
			filepath.Base(e.Result.SourcePath),
			e.Action.TargetFileName,
			e.Action.TargetPath(),
			string(e.Result.Status),
		})
	}
	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	w.logger.Info("report.preview.ok", "path", path, "rows", ledger.Total())
	return path, nil
}

// WriteSkippedCSV writes skipped_files.csv when any file was SKIPPED.
// Returns "" when there was nothing to report.
func (w *Writer) WriteSkippedCSV(ledger *entity.RunLedger, outputFolder string) (string, error) {
	skipped := ledger.SkippedEntries()
	if len(skipped) == 0 {
		return "", nil
	}
	path := filepath.Join(outputFolder, "skipped_files.csv")
	rows := [][]string{{"Filename", "Reason"}}
	for _, e := range skipped {
		rows = append(rows, []string{filepath.Base(e.Result.SourcePath), e.Result.Reason})
	}
	if err := writeCSV(path, rows); err != nil {
		return "", err
	}
	w.logger.Info("report.skipped.ok", "path", path, "rows", len(skipped))
	return path, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
