package plan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
)

func TestPlanPath_VendorSegmentOnly(t *testing.T) {
	p := NewPathPlanner(newPlanner(), false)
	fields := entity.ExtractedFields{
		VendorName:  strp("Acme Corp LLC"),
		InvoiceDate: timep(2024, time.January, 15),
	}
	assert.Equal(t, "AcmeCorp_LLC", p.PlanPath(fields))
}

func TestPlanPath_OrganizeByMonth(t *testing.T) {
	p := NewPathPlanner(newPlanner(), true)
	fields := entity.ExtractedFields{
		VendorName:  strp("Acme Corp LLC"),
		InvoiceDate: timep(2024, time.January, 15),
	}
	assert.Equal(t, "2024-01/AcmeCorp_LLC", p.PlanPath(fields))
}

func TestPlanPath_MonthSegmentOmittedWithoutDate(t *testing.T) {
	p := NewPathPlanner(newPlanner(), true)
	fields := entity.ExtractedFields{VendorName: strp("Acme Corp LLC")}
	assert.Equal(t, "AcmeCorp_LLC", p.PlanPath(fields))
}

func TestPlanPath_UnknownVendor(t *testing.T) {
	p := NewPathPlanner(newPlanner(), false)
	assert.Equal(t, "Unknown_Vendor", p.PlanPath(entity.ExtractedFields{}))
}

func TestCollisionResolver_SuffixesInReservationOrder(t *testing.T) {
	r := NewCollisionResolver()
	assert.Equal(t, "INV_unknown_invoice.pdf", r.Reserve("Unknown_Vendor", "INV_unknown_invoice.pdf"))
	assert.Equal(t, "INV_unknown_invoice_1.pdf", r.Reserve("Unknown_Vendor", "INV_unknown_invoice.pdf"))
	assert.Equal(t, "INV_unknown_invoice_2.pdf", r.Reserve("Unknown_Vendor", "INV_unknown_invoice.pdf"))
}

func TestCollisionResolver_CaseInsensitive(t *testing.T) {
	r := NewCollisionResolver()
	assert.Equal(t, "file.pdf", r.Reserve("Vendor", "file.pdf"))
	assert.Equal(t, "FILE_1.PDF", r.Reserve("vendor", "FILE.PDF"))
}

func TestCollisionResolver_FoldersAreIndependent(t *testing.T) {
	r := NewCollisionResolver()
	assert.Equal(t, "a.pdf", r.Reserve("VendorOne", "a.pdf"))
	assert.Equal(t, "a.pdf", r.Reserve("VendorTwo", "a.pdf"))
}

func TestCollisionResolver_NeverReturnsDuplicatePaths(t *testing.T) {
	r := NewCollisionResolver()
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		final := r.Reserve("V", "inv.pdf")
		if _, dup := seen[final]; dup {
			t.Fatalf("duplicate reservation %q", final)
		}
		seen[final] = struct{}{}
	}
}
