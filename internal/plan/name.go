// Package plan derives target file names and folder paths from extracted
// fields. Planning is pure and deterministic: identical inputs always yield
// identical strings, independent of processing order.
package plan

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/joseph-ayodele/invoice-organizer/constants"
	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
	"github.com/joseph-ayodele/invoice-organizer/internal/extract"
)

const unknownToken = "unknown"

var (
	reIllegal    = regexp.MustCompile(`[\\/:*?"<>|]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Sanitize replaces characters illegal in file names, collapses whitespace
// runs to a single underscore, and caps the length.
func Sanitize(name string) string {
	if strings.TrimSpace(name) == "" {
		return unknownToken
	}
	name = reIllegal.ReplaceAllString(name, "_")
	name = reWhitespace.ReplaceAllString(strings.TrimSpace(name), "_")
	return truncate(name)
}

// truncate caps the byte length without splitting a multi-byte rune.
func truncate(name string) string {
	if len(name) <= constants.MaxFilenameLength {
		return name
	}
	cut := constants.MaxFilenameLength
	for cut > 0 && !utf8.RuneStart(name[cut]) {
		cut--
	}
	return name[:cut]
}

// collapse removes all whitespace from a sanitized token; vendor name parts
// become a single word (e.g. "Acme Corp" -> "AcmeCorp").
func collapse(name string) string {
	name = reIllegal.ReplaceAllString(name, "_")
	name = reWhitespace.ReplaceAllString(strings.TrimSpace(name), "")
	return truncate(name)
}

// NamePlanner derives canonical target file names per the naming scheme.
type NamePlanner struct {
	tables *Tables
}

// Tables aliases the extraction tables; the planner shares the company
// suffix list to split vendor names.
type Tables = extract.Tables

func NewNamePlanner(tables *Tables) *NamePlanner {
	return &NamePlanner{tables: tables}
}

// vendorFileToken is the vendor's name part with whitespace removed, the
// token used inside file names ("Acme Corp LLC" -> "AcmeCorp").
func (p *NamePlanner) vendorFileToken(fields entity.ExtractedFields) string {
	if fields.VendorName == nil {
		return ""
	}
	name, _ := p.tables.SplitVendor(*fields.VendorName)
	if name == "" {
		// Suffix-only vendor; fall back to the whole string.
		name = *fields.VendorName
	}
	return collapse(name)
}

// VendorFolderSegment is the folder form of the vendor: collapsed name part
// joined to the suffix with an underscore ("Acme Corp LLC" ->
// "AcmeCorp_LLC"), or Unknown_Vendor when absent.
func (p *NamePlanner) VendorFolderSegment(fields entity.ExtractedFields) string {
	if fields.VendorName == nil {
		return "Unknown_Vendor"
	}
	name, suffix := p.tables.SplitVendor(*fields.VendorName)
	if suffix == "" {
		return Sanitize(*fields.VendorName)
	}
	if name == "" {
		return Sanitize(suffix)
	}
	return collapse(name) + "_" + Sanitize(suffix)
}

// PlanName derives the target file name for one file. The extension is the
// source's own, case-normalized. Deterministic and side-effect free.
func (p *NamePlanner) PlanName(fields entity.ExtractedFields, scheme entity.NamingScheme, originalFileName string) string {
	ext := strings.ToLower(filepath.Ext(originalFileName))
	if ext == "" {
		ext = ".pdf"
	}
	base := strings.TrimSuffix(filepath.Base(originalFileName), filepath.Ext(originalFileName))

	dateTok := fields.DateToken(unknownToken)

	switch scheme {
	case entity.SchemeVendorName:
		vendorTok := p.vendorFileToken(fields)
		if vendorTok == "" {
			vendorTok = "Unknown"
		}
		numberTok := unknownToken
		if fields.InvoiceNumber != nil {
			numberTok = Sanitize(*fields.InvoiceNumber)
		}
		return vendorTok + "_INV_" + numberTok + "_" + dateTok + ext

	case entity.SchemeOriginalFilename:
		return dateTok + "_" + Sanitize(base) + ext

	default: // SchemeInvoiceNumber
		if fields.InvoiceNumber == nil {
			return "INV_unknown_" + Sanitize(base) + ext
		}
		return "INV_" + Sanitize(*fields.InvoiceNumber) + "_" + dateTok + ext
	}
}
