package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/invoice-organizer/internal/common"
	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
	"github.com/joseph-ayodele/invoice-organizer/internal/extract"
	"github.com/joseph-ayodele/invoice-organizer/internal/history"
	"github.com/joseph-ayodele/invoice-organizer/internal/ingest"
	"github.com/joseph-ayodele/invoice-organizer/internal/pdftext"
	"github.com/joseph-ayodele/invoice-organizer/internal/plan"
	"github.com/joseph-ayodele/invoice-organizer/internal/report"
	"github.com/joseph-ayodele/invoice-organizer/internal/run"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process a folder of PDF invoices",
	Long: `Run the extraction batch over every PDF in the input folder.

In dry-run mode (the default) planned destinations are computed and written
to preview.csv but nothing is copied. Pass --dry-run=false to copy files to
their planned destinations.

Examples:
  invfrog run --input ./invoices
  invfrog run --input ./invoices --output ./sorted --scheme vendor_name --organize-by-month
  invfrog run --input ./invoices --dry-run=false`,
	RunE: runBatch,
}

func init() {
	f := runCmd.Flags()
	f.StringP("input", "i", "", "folder containing PDF invoices (required)")
	f.StringP("output", "o", "", "output folder (default: input folder)")
	f.String("scheme", string(entity.SchemeInvoiceNumber),
		"naming scheme: invoice_number | vendor_name | original_filename")
	f.Bool("organize-by-month", false, "organize copies into YYYY-MM/vendor folders")
	f.Bool("dry-run", true, "preview only, copy nothing")
	f.BoolP("recursive", "r", false, "scan the input folder recursively")
	f.String("date-order", "", "date precedence: dayfirst | monthfirst")
	f.String("labels-file", "", "YAML file overriding the built-in label tables")
	f.String("history-db", "", "path of the run-history database")
	f.String("log-level", "", "log level: DEBUG | INFO | WARN | ERROR")

	bind := func(key string) {
		if err := vp.BindPFlag(key, f.Lookup(key)); err != nil {
			panic(err)
		}
	}
	for _, key := range []string{
		"input", "output", "scheme", "organize-by-month", "dry-run",
		"recursive", "date-order", "labels-file", "history-db", "log-level",
	} {
		bind(key)
	}
	// The scheme flag maps onto the naming-scheme config key.
	_ = vp.BindPFlag("naming-scheme", f.Lookup("scheme"))
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg := common.LoadConfig(vp)
	if err := cfg.Validate(); err != nil {
		return err
	}

	output := cfg.EffectiveOutput()
	if err := os.MkdirAll(output, 0755); err != nil {
		return common.NewAppError("OUTPUT_ERROR", "cannot create output folder", err)
	}

	logger, cleanup := common.SetupLogger(filepath.Join(output, "errors.log"), cfg.LogLevel)
	defer func() { _ = cleanup() }()

	tables, err := extract.LoadTables(cfg.LabelsFile, cfg.DateOrder)
	if err != nil {
		return common.NewAppError("CONFIG_ERROR", "invalid labels file", err)
	}

	scanner := ingest.Scanner{Recursive: cfg.Recursive, SkipHidden: cfg.SkipHidden}
	inputs, stats, err := scanner.Scan(cfg.InputFolder)
	if err != nil {
		return common.NewAppError("INPUT_ERROR", "cannot read input folder", err)
	}
	logger.Info("scan.complete", "scanned", stats.Scanned, "matched", stats.Matched, "failed", stats.Failed)
	if len(inputs) == 0 {
		fmt.Println("No PDF files found in the input folder.")
		return nil
	}

	names := plan.NewNamePlanner(tables)
	coordinator := run.NewCoordinator(
		run.Options{
			InputFolder:  cfg.InputFolder,
			OutputFolder: output,
			Scheme:       cfg.NamingScheme,
			DryRun:       cfg.DryRun,
		},
		pdftext.NewFitzSource(logger, cfg.MinTextLen),
		extract.NewExtractor(tables),
		names,
		plan.NewPathPlanner(names, cfg.OrganizeByMonth),
		run.FSCopier{},
		logger,
	)

	ledger, err := coordinator.Run(ctx, inputs)
	if err != nil {
		return err
	}

	writer := report.NewWriter(logger)
	xlsxPath, err := writer.WriteWorkbook(ledger, output)
	if err != nil {
		logger.Error("report.xlsx.failed", "error", err)
	}
	if ledger.Mode == entity.ModeDryRun {
		if _, err := writer.WritePreviewCSV(ledger, output); err != nil {
			logger.Error("report.preview.failed", "error", err)
		}
	}
	if _, err := writer.WriteSkippedCSV(ledger, output); err != nil {
		logger.Error("report.skipped.failed", "error", err)
	}

	recordHistory(ctx, cfg.HistoryDBPath, ledger, logger)

	if ledger.Mode == entity.ModeDryRun {
		fmt.Printf("Dry run complete: %d files previewed | OK: %d | Partial: %d | Skipped: %d | (no files copied)\n",
			ledger.Total(), ledger.OK, ledger.Partial, ledger.Skipped)
	} else {
		fmt.Printf("Processed %d files | OK: %d | Partial: %d | Skipped: %d | Copied: %d\n",
			ledger.Total(), ledger.OK, ledger.Partial, ledger.Skipped, ledger.Copied)
	}
	if xlsxPath != "" {
		fmt.Printf("Results: %s\n", xlsxPath)
	}
	return nil
}

// recordHistory appends the run summary. History is best-effort; a broken
// history database never fails a finished run.
func recordHistory(ctx context.Context, path string, ledger *entity.RunLedger, logger *slog.Logger) {
	store, err := history.Open(ctx, path, logger)
	if err != nil {
		logger.Warn("history.open.failed", "error", err)
		return
	}
	defer func() { _ = store.Close() }()
	if err := store.RecordRun(ctx, ledger); err != nil {
		logger.Warn("history.record.failed", "error", err)
	}
}
