package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/invoice-organizer/constants"
)

// ExtractedFields holds the fields inferred from one invoice's text layer.
// A nil field was not found; absence is meaningful and is never replaced by
// a guessed value downstream.
type ExtractedFields struct {
	InvoiceNumber *string          `json:"invoice_number,omitempty"`
	InvoiceDate   *time.Time       `json:"invoice_date,omitempty"`
	TotalAmount   *decimal.Decimal `json:"total_amount,omitempty"`
	VendorName    *string          `json:"vendor_name,omitempty"`
}

// ExtractionResult is the terminal per-file outcome. One per input file,
// immutable once produced.
type ExtractionResult struct {
	SourcePath string                     `json:"source_path"`
	Fields     ExtractedFields            `json:"fields"`
	Status     constants.ExtractionStatus `json:"status"`
	Reason     string                     `json:"reason,omitempty"`
}

// InvoiceNumberOr returns the invoice number or the given fallback.
func (f ExtractedFields) InvoiceNumberOr(fallback string) string {
	if f.InvoiceNumber != nil {
		return *f.InvoiceNumber
	}
	return fallback
}

// VendorOr returns the vendor name or the given fallback.
func (f ExtractedFields) VendorOr(fallback string) string {
	if f.VendorName != nil {
		return *f.VendorName
	}
	return fallback
}

// DateToken formats the invoice date as YYYYMMDD, or returns the fallback.
func (f ExtractedFields) DateToken(fallback string) string {
	if f.InvoiceDate == nil {
		return fallback
	}
	return f.InvoiceDate.Format("20060102")
}

// TotalString renders the total for reporting; empty when unset.
func (f ExtractedFields) TotalString() string {
	if f.TotalAmount == nil {
		return ""
	}
	return f.TotalAmount.StringFixed(2)
}

// DateString renders the date for reporting; empty when unset.
func (f ExtractedFields) DateString() string {
	if f.InvoiceDate == nil {
		return ""
	}
	return f.InvoiceDate.Format("2006-01-02")
}
