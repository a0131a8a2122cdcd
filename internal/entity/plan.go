package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-organizer/constants"
)

// RunMode distinguishes a preview from a real copy pass.
type RunMode string

const (
	ModeDryRun RunMode = "DRY_RUN"
	ModeApply  RunMode = "APPLY"
)

// NamingScheme selects how target file names are derived. Fixed per run.
type NamingScheme string

const (
	SchemeInvoiceNumber    NamingScheme = "invoice_number"
	SchemeVendorName       NamingScheme = "vendor_name"
	SchemeOriginalFilename NamingScheme = "original_filename"
)

// PlannedAction is the destination derived for one processed file.
// TargetFileName is unique within TargetFolderPath for the whole run.
// Both are empty for SKIPPED files, for which no destination exists.
type PlannedAction struct {
	TargetFileName   string  `json:"target_file_name"`
	TargetFolderPath string  `json:"target_folder_path"`
	Mode             RunMode `json:"mode"`
}

// TargetPath joins folder and file name; empty when nothing was planned.
func (a PlannedAction) TargetPath() string {
	if a.TargetFileName == "" {
		return ""
	}
	if a.TargetFolderPath == "" {
		return a.TargetFileName
	}
	return a.TargetFolderPath + "/" + a.TargetFileName
}

// LedgerEntry pairs a file's extraction result with its planned destination.
type LedgerEntry struct {
	Result ExtractionResult `json:"result"`
	Action PlannedAction    `json:"action"`
}

// RunLedger is the ordered, process-scoped record of one batch. It is
// created at run start, appended to per file, and finalized at run end;
// it is never persisted or merged across runs.
type RunLedger struct {
	RunID        uuid.UUID     `json:"run_id"`
	StartedAt    time.Time     `json:"started_at"`
	FinishedAt   time.Time     `json:"finished_at"`
	InputFolder  string        `json:"input_folder"`
	OutputFolder string        `json:"output_folder"`
	Scheme       NamingScheme  `json:"scheme"`
	Mode         RunMode       `json:"mode"`
	Entries      []LedgerEntry `json:"entries"`

	OK      int `json:"ok"`
	Partial int `json:"partial"`
	Skipped int `json:"skipped"`
	Copied  int `json:"copied"`
}

// NewRunLedger starts an empty ledger for one batch.
func NewRunLedger(input, output string, scheme NamingScheme, mode RunMode) *RunLedger {
	return &RunLedger{
		RunID:        uuid.New(),
		StartedAt:    time.Now().UTC(),
		InputFolder:  input,
		OutputFolder: output,
		Scheme:       scheme,
		Mode:         mode,
	}
}

// Append records one processed file and bumps the status counters.
func (l *RunLedger) Append(res ExtractionResult, act PlannedAction) {
	l.Entries = append(l.Entries, LedgerEntry{Result: res, Action: act})
	switch res.Status {
	case constants.StatusOK:
		l.OK++
	case constants.StatusPartial:
		l.Partial++
	case constants.StatusSkipped:
		l.Skipped++
	}
}

// Finalize stamps the end time. Entries are immutable afterwards.
func (l *RunLedger) Finalize() {
	l.FinishedAt = time.Now().UTC()
}

// SkippedEntries returns the SKIPPED subset in ledger order.
func (l *RunLedger) SkippedEntries() []LedgerEntry {
	var out []LedgerEntry
	for _, e := range l.Entries {
		if e.Result.Status == constants.StatusSkipped {
			out = append(out, e)
		}
	}
	return out
}

// Total returns the number of processed files.
func (l *RunLedger) Total() int {
	return len(l.Entries)
}
