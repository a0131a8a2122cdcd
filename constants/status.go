package constants

// ExtractionStatus is the canonical per-file outcome of a run.
type ExtractionStatus string

// Stable values (these exact strings appear in the XLSX/CSV outputs).
const (
	StatusOK      ExtractionStatus = "OK"      // all primary fields extracted
	StatusPartial ExtractionStatus = "PARTIAL" // some primary fields missing or in conflict
	StatusSkipped ExtractionStatus = "SKIPPED" // no text layer, or the copy failed
)

// Skip reasons for unreadable sources. Stable, user-facing.
const (
	ReasonImagePDF   = "Scanned/Image PDF"
	ReasonEncrypted  = "Protected / Encrypted PDF"
	ReasonCorrupted  = "Corrupted PDF"
	ReasonPermission = "Permission denied"
)

// ReasonMultipleTotals marks the ambiguous-totals conflict.
const ReasonMultipleTotals = "Multiple totals detected"
