// Package extract infers structured invoice fields from a PDF's text lines.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/joseph-ayodele/invoice-organizer/constants"
)

// Tables is the immutable pattern configuration driving extraction.
// Build once per run with NewTables; the compiled form is shared by every
// file in the batch.
type Tables struct {
	InvoiceNumberLabels []string
	DateLabels          []string
	TotalLabels         []string
	TotalExclusions     []string
	VendorLabels        []string
	CompanySuffixes     []string
	DateOrder           constants.DateOrder

	invoiceRes   []*regexp.Regexp
	bareNumberRe *regexp.Regexp
	dateRes      []*regexp.Regexp
	vendorRes    []*regexp.Regexp
	suffixSet    map[string]struct{}
	layouts      []string
}

// DefaultTables returns the built-in label tables compiled for the given
// date-order precedence.
func DefaultTables(order constants.DateOrder) *Tables {
	t := &Tables{
		InvoiceNumberLabels: constants.InvoiceNumberLabels,
		DateLabels:          constants.DateLabels,
		TotalLabels:         constants.TotalLabels,
		TotalExclusions:     constants.TotalExclusions,
		VendorLabels:        constants.VendorLabels,
		CompanySuffixes:     constants.CompanySuffixes,
		DateOrder:           order,
	}
	t.compile()
	return t
}

// NewTables compiles an explicit table set (used after merging overrides).
func NewTables(t Tables) *Tables {
	out := t
	out.compile()
	return &out
}

func (t *Tables) compile() {
	if t.DateOrder == "" {
		t.DateOrder = constants.DateOrderDayFirst
	}
	t.invoiceRes = t.invoiceRes[:0]
	for _, lbl := range t.InvoiceNumberLabels {
		t.invoiceRes = append(t.invoiceRes,
			regexp.MustCompile(`(?i)`+labelPattern(lbl)+`[\s:#.]*([A-Za-z0-9][A-Za-z0-9\-_/]+)`))
	}
	t.bareNumberRe = regexp.MustCompile(`#\s*(\d{4,})`)

	t.dateRes = t.dateRes[:0]
	for _, lbl := range t.DateLabels {
		t.dateRes = append(t.dateRes,
			regexp.MustCompile(`(?i)`+labelPattern(lbl)+`[\s:.]*(.+)$`))
	}

	t.vendorRes = t.vendorRes[:0]
	for _, lbl := range t.VendorLabels {
		t.vendorRes = append(t.vendorRes,
			regexp.MustCompile(`(?i)`+labelPattern(lbl)+`\s*(.+)$`))
	}

	t.suffixSet = make(map[string]struct{}, len(t.CompanySuffixes))
	for _, s := range t.CompanySuffixes {
		t.suffixSet[strings.ToLower(s)] = struct{}{}
	}

	t.layouts = constants.DateLayouts(t.DateOrder)
}

// labelPattern quotes a label, loosens its internal whitespace, and anchors
// its trailing edge on a word boundary so "Invoice No" cannot swallow the
// head of "Invoice Number".
func labelPattern(label string) string {
	quoted := regexp.QuoteMeta(label)
	quoted = strings.ReplaceAll(quoted, `\ `, `\s+`)
	quoted = strings.ReplaceAll(quoted, " ", `\s+`)
	last, _ := lastRune(label)
	if unicode.IsLetter(last) || unicode.IsDigit(last) {
		quoted += `\b`
	}
	return quoted
}

func lastRune(s string) (rune, bool) {
	var r rune
	var ok bool
	for _, c := range s {
		r, ok = c, true
	}
	return r, ok
}

// HasSuffix reports whether the token, stripped of trailing punctuation,
// is a known company suffix.
func (t *Tables) HasSuffix(token string) bool {
	token = strings.ToLower(strings.TrimRight(token, ".,;:"))
	_, ok := t.suffixSet[token]
	return ok
}

// SplitVendor separates a vendor string into its name part and company
// suffix. The suffix is empty when the last token is not a known suffix.
func (t *Tables) SplitVendor(vendor string) (name, suffix string) {
	toks := strings.Fields(vendor)
	if len(toks) == 0 {
		return "", ""
	}
	last := strings.TrimRight(toks[len(toks)-1], ".,;:")
	if _, ok := t.suffixSet[strings.ToLower(last)]; ok {
		return strings.Join(toks[:len(toks)-1], " "), last
	}
	return strings.Join(toks, " "), ""
}
