package extract

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/joseph-ayodele/invoice-organizer/constants"
	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
)

// Extractor scans an ordered line sequence and produces the candidate field
// set plus the per-file status. Pure function of the lines and the tables;
// no side effects.
type Extractor struct {
	tables *Tables
}

func NewExtractor(tables *Tables) *Extractor {
	if tables == nil {
		tables = DefaultTables(constants.DateOrderDayFirst)
	}
	return &Extractor{tables: tables}
}

// reserved tokens that a sloppy label match could capture instead of a
// real invoice number.
var reservedNumberTokens = map[string]struct{}{
	"date": {}, "no": {}, "number": {}, "id": {},
}

var (
	reNumericDate = regexp.MustCompile(`\b(\d{1,2}[./\-]\d{1,2}[./\-]\d{2,4})\b`)
	reISODate     = regexp.MustCompile(`\b(\d{4}[./\-]\d{1,2}[./\-]\d{1,2})\b`)
	reMonthFirst  = regexp.MustCompile(`\b([A-Za-z]{3,9}\s+\d{1,2},?\s+\d{4})\b`)
	reDayFirst    = regexp.MustCompile(`\b(\d{1,2}\s+[A-Za-z]{3,9},?\s+\d{4})\b`)

	reDecimalAmount = regexp.MustCompile(`\d[\d,]*\.\d{2}`)
	reAmount        = regexp.MustCompile(`\d[\d,]*(?:\.\d{1,2})?`)
)

// Extract infers the field set from the line sequence and derives the
// status. Vendor absence alone never downgrades status below OK.
func (e *Extractor) Extract(lines []string) (entity.ExtractedFields, constants.ExtractionStatus, string) {
	var fields entity.ExtractedFields

	fields.InvoiceNumber = e.findInvoiceNumber(lines)
	fields.InvoiceDate = e.findDate(lines)
	var totalsConflict bool
	fields.TotalAmount, totalsConflict = e.findTotal(lines)
	fields.VendorName = e.findVendor(lines)

	var missing []string
	if fields.InvoiceNumber == nil {
		missing = append(missing, "invoice number")
	}
	if fields.InvoiceDate == nil {
		missing = append(missing, "date")
	}
	if fields.TotalAmount == nil && !totalsConflict {
		missing = append(missing, "total")
	}

	switch {
	case totalsConflict:
		reason := constants.ReasonMultipleTotals
		if len(missing) > 0 {
			reason += "; Missing: " + strings.Join(missing, ", ")
		}
		return fields, constants.StatusPartial, reason
	case len(missing) > 0:
		return fields, constants.StatusPartial, "Missing: " + strings.Join(missing, ", ")
	default:
		return fields, constants.StatusOK, ""
	}
}

// findInvoiceNumber searches the whole document for a labeled candidate
// first; the bare "# 12345" form is a fallback used only when no labeled
// match exists anywhere.
func (e *Extractor) findInvoiceNumber(lines []string) *string {
	for _, line := range lines {
		for _, re := range e.tables.invoiceRes {
			if m := re.FindStringSubmatch(line); m != nil {
				val := strings.TrimSpace(m[1])
				if _, reserved := reservedNumberTokens[strings.ToLower(val)]; !reserved {
					return &val
				}
			}
		}
	}
	for _, line := range lines {
		if m := e.tables.bareNumberRe.FindStringSubmatch(line); m != nil {
			val := m[1]
			return &val
		}
	}
	return nil
}

// findDate accepts only label-adjacent tokens; unlabeled numeric runs are
// never treated as dates.
func (e *Extractor) findDate(lines []string) *time.Time {
	for _, line := range lines {
		for _, re := range e.tables.dateRes {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			if d := e.parseDateToken(m[1]); d != nil {
				return d
			}
		}
	}
	return nil
}

// parseDateToken pulls a date-like token out of the label remainder and
// tries the precedence-ordered layout list, accepting the first layout that
// yields a valid calendar date.
func (e *Extractor) parseDateToken(rest string) *time.Time {
	rest = strings.TrimSpace(rest)
	var token string
	for _, re := range []*regexp.Regexp{reNumericDate, reISODate, reMonthFirst, reDayFirst} {
		if m := re.FindStringSubmatch(rest); m != nil {
			token = m[1]
			break
		}
	}
	if token == "" {
		return nil
	}
	for _, layout := range e.tables.layouts {
		t, err := time.Parse(layout, token)
		if err != nil {
			continue
		}
		// A 2-digit token against a 4-digit layout parses into antiquity.
		if t.Year() < 1900 || t.Year() > 2099 {
			continue
		}
		return &t
	}
	return nil
}

// findTotal collects one candidate per qualifying label line: the last
// decimal-formatted amount, or the last bare integer when the line has no
// decimal amount. Exactly one distinct value is accepted; several distinct
// values are a conflict and the field stays unset.
func (e *Extractor) findTotal(lines []string) (*decimal.Decimal, bool) {
	var candidates []decimal.Decimal
	for _, line := range lines {
		if !containsAnyFold(line, e.tables.TotalLabels) {
			continue
		}
		if containsAnyFold(line, e.tables.TotalExclusions) {
			continue
		}
		amounts := reDecimalAmount.FindAllString(line, -1)
		if len(amounts) == 0 {
			amounts = reAmount.FindAllString(line, -1)
		}
		if len(amounts) == 0 {
			continue
		}
		raw := strings.ReplaceAll(amounts[len(amounts)-1], ",", "")
		d, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		candidates = append(candidates, d)
	}
	if len(candidates) == 0 {
		return nil, false
	}
	distinct := map[string]struct{}{}
	for _, c := range candidates {
		distinct[c.String()] = struct{}{}
	}
	if len(distinct) > 1 {
		return nil, true
	}
	return &candidates[0], false
}

// findVendor applies the strict policy: a vendor needs both a label and a
// company-suffix token. A labeled line without a suffix sets nothing.
func (e *Extractor) findVendor(lines []string) *string {
	for _, line := range lines {
		for _, re := range e.tables.vendorRes {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			rest := strings.TrimSpace(strings.TrimRight(strings.TrimSpace(m[1]), ".,;:"))
			toks := strings.Fields(rest)
			if len(toks) == 0 {
				continue
			}
			if e.tables.HasSuffix(toks[len(toks)-1]) {
				vendor := strings.Join(toks, " ")
				return &vendor
			}
		}
	}
	return nil
}

func containsAnyFold(line string, needles []string) bool {
	lower := strings.ToLower(line)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
