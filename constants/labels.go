package constants

// Label tables driving field extraction. Modeled as ordered data rather than
// scattered conditionals so the extractor can be table-driven and a user can
// extend them via a custom labels file.

// InvoiceNumberLabels precede the invoice number token, in match order.
var InvoiceNumberLabels = []string{
	"Invoice No",
	"Invoice Number",
	"Invoice #",
	"Invoice ID",
}

// DateLabels precede the invoice date token, in match order.
var DateLabels = []string{
	"Invoice Date",
	"Date:",
	"Dated:",
	"Issue Date",
}

// TotalLabels mark candidate total lines.
var TotalLabels = []string{
	"Invoice Total",
	"Total Due",
	"Balance Due",
	"Amount Due",
}

// TotalExclusions disqualify a total line; they denote adjacent but
// non-final amounts (wire instructions, A/R references, net terms).
var TotalExclusions = []string{
	"Wire",
	"A/R",
	"Reference",
	"Net",
	"Contract",
	"Terms",
}

// VendorLabels precede a vendor name.
var VendorLabels = []string{
	"Company:",
	"Vendor:",
	"From:",
	"Seller:",
	"Remit To:",
}

// CompanySuffixes qualify a labeled token sequence as a vendor name.
// A vendor is never accepted without one (strict label+suffix policy).
var CompanySuffixes = []string{
	"LLC", "Inc", "Corp", "Ltd", "GmbH", "Co", "PLC", "LLP", "LP", "AG",
}

// DateOrder selects the precedence between day-first and month-first
// numeric date layouts.
type DateOrder string

const (
	DateOrderDayFirst   DateOrder = "dayfirst"
	DateOrderMonthFirst DateOrder = "monthfirst"
)

// DayFirstLayouts and MonthFirstLayouts are the numeric layouts tried for a
// label-adjacent date token, in precedence order. Textual-month layouts are
// unambiguous and shared.
var (
	DayFirstLayouts = []string{
		"02/01/2006", "02-01-2006", "02.01.2006", "02/01/06",
	}
	MonthFirstLayouts = []string{
		"01/02/2006", "01-02-2006", "01.02.2006", "01/02/06",
	}
	ISOLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
	}
	TextualLayouts = []string{
		"2 January 2006", "2 Jan 2006",
		"January 2, 2006", "January 2 2006",
		"Jan 2, 2006", "Jan 2 2006",
	}
)

// DateLayouts returns the full precedence-ordered layout list for an order.
func DateLayouts(order DateOrder) []string {
	var numeric []string
	if order == DateOrderMonthFirst {
		numeric = append(append([]string{}, MonthFirstLayouts...), DayFirstLayouts...)
	} else {
		numeric = append(append([]string{}, DayFirstLayouts...), MonthFirstLayouts...)
	}
	out := make([]string, 0, len(numeric)+len(ISOLayouts)+len(TextualLayouts))
	out = append(out, numeric...)
	out = append(out, ISOLayouts...)
	out = append(out, TextualLayouts...)
	return out
}
