// Package run drives one batch over the input files.
package run

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/invoice-organizer/constants"
	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
	"github.com/joseph-ayodele/invoice-organizer/internal/extract"
	"github.com/joseph-ayodele/invoice-organizer/internal/pdftext"
	"github.com/joseph-ayodele/invoice-organizer/internal/plan"
)

// Options fixes the per-run configuration of a Coordinator.
type Options struct {
	InputFolder  string
	OutputFolder string
	Scheme       entity.NamingScheme
	DryRun       bool
}

// Coordinator orchestrates TextSource, FieldExtractor, and the planners over
// a batch, accumulating the run ledger. Per-file failures are recorded and
// never abort the batch. The per-folder collision set and the ledger are the
// only mutable state, both owned here.
type Coordinator struct {
	opts      Options
	source    pdftext.Source
	extractor *extract.Extractor
	names     *plan.NamePlanner
	paths     *plan.PathPlanner
	copier    Copier
	logger    *slog.Logger
}

func NewCoordinator(opts Options, source pdftext.Source, extractor *extract.Extractor,
	names *plan.NamePlanner, paths *plan.PathPlanner, copier Copier, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		opts:      opts,
		source:    source,
		extractor: extractor,
		names:     names,
		paths:     paths,
		copier:    copier,
		logger:    logger,
	}
}

// Run processes the input files in the order given. Callers pass a sorted
// list so collision suffixes are reproducible across runs. A run may stop
// between files via ctx, never mid-file.
func (c *Coordinator) Run(ctx context.Context, inputs []string) (*entity.RunLedger, error) {
	mode := entity.ModeApply
	if c.opts.DryRun {
		mode = entity.ModeDryRun
	}
	ledger := entity.NewRunLedger(c.opts.InputFolder, c.opts.OutputFolder, c.opts.Scheme, mode)
	resolver := plan.NewCollisionResolver()

	for i, src := range inputs {
		if err := ctx.Err(); err != nil {
			ledger.Finalize()
			return ledger, err
		}
		c.logger.Info("run.file", "index", i+1, "total", len(inputs), "path", src)

		res, act := c.processFile(ctx, src, resolver, mode)
		if act.Mode == entity.ModeApply && res.Status != constants.StatusSkipped && act.TargetFileName != "" {
			dst := filepath.Join(c.opts.OutputFolder, filepath.FromSlash(act.TargetFolderPath), act.TargetFileName)
			if err := c.copier.Copy(ctx, src, dst); err != nil {
				c.logger.Error("run.copy.failed", "path", src, "target", dst, "error", err)
				res.Status = constants.StatusSkipped
				res.Reason = joinReason(res.Reason, copyFailureReason(err))
			} else {
				ledger.Copied++
				c.logger.Debug("run.copy.ok", "path", src, "target", dst)
			}
		}

		ledger.Append(res, act)
	}

	ledger.Finalize()
	c.logger.Info("run.complete",
		"run_id", ledger.RunID,
		"mode", ledger.Mode,
		"total", ledger.Total(),
		"ok", ledger.OK,
		"partial", ledger.Partial,
		"skipped", ledger.Skipped,
		"copied", ledger.Copied,
	)
	return ledger, nil
}

// processFile produces the (result, action) pair for one file. A file whose
// text layer cannot be read gets no planned destination.
func (c *Coordinator) processFile(ctx context.Context, src string, resolver *plan.CollisionResolver, mode entity.RunMode) (entity.ExtractionResult, entity.PlannedAction) {
	lines, err := c.source.GetLines(ctx, src)
	if err != nil {
		reason := constants.ReasonCorrupted
		var ue *pdftext.UnreadableError
		if errors.As(err, &ue) {
			reason = ue.Kind.Reason()
		}
		c.logger.Warn("run.unreadable", "path", src, "reason", reason, "error", err)
		return entity.ExtractionResult{
			SourcePath: src,
			Status:     constants.StatusSkipped,
			Reason:     reason,
		}, entity.PlannedAction{Mode: mode}
	}

	fields, status, reason := c.extractor.Extract(lines)
	name := c.names.PlanName(fields, c.opts.Scheme, filepath.Base(src))
	folder := c.paths.PlanPath(fields)
	final := resolver.Reserve(folder, name)

	return entity.ExtractionResult{
			SourcePath: src,
			Fields:     fields,
			Status:     status,
			Reason:     reason,
		}, entity.PlannedAction{
			TargetFileName:   final,
			TargetFolderPath: folder,
			Mode:             mode,
		}
}

func copyFailureReason(err error) string {
	if errors.Is(err, os.ErrPermission) {
		return "Copy failed: Permission denied"
	}
	return "Copy failed: " + err.Error()
}

func joinReason(existing, added string) string {
	if existing == "" {
		return added
	}
	return existing + "; " + added
}
