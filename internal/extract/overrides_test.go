package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-organizer/constants"
)

func writeLabelsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTables_EmptyPathUsesDefaults(t *testing.T) {
	tables, err := LoadTables("", constants.DateOrderDayFirst)
	require.NoError(t, err)
	assert.Equal(t, constants.InvoiceNumberLabels, tables.InvoiceNumberLabels)
	assert.Equal(t, constants.DateOrderDayFirst, tables.DateOrder)
}

func TestLoadTables_OverridesReplaceTablesWholesale(t *testing.T) {
	path := writeLabelsFile(t, `
total_labels:
  - "Grand Total"
date_order: monthfirst
`)
	tables, err := LoadTables(path, constants.DateOrderDayFirst)
	require.NoError(t, err)

	assert.Equal(t, []string{"Grand Total"}, tables.TotalLabels)
	assert.Equal(t, constants.DateOrderMonthFirst, tables.DateOrder)
	// lists absent from the file keep their defaults
	assert.Equal(t, constants.VendorLabels, tables.VendorLabels)

	e := NewExtractor(tables)
	fields, _, _ := e.Extract([]string{"Grand Total: $42.00"})
	require.NotNil(t, fields.TotalAmount)

	fields, _, _ = e.Extract([]string{"Invoice Total: $42.00"})
	assert.Nil(t, fields.TotalAmount, "replaced table must not keep built-in labels")
}

func TestLoadTables_RejectsUnknownKeys(t *testing.T) {
	path := writeLabelsFile(t, `
totls:
  - "Grand Total"
`)
	_, err := LoadTables(path, constants.DateOrderDayFirst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoadTables_RejectsBadDateOrder(t *testing.T) {
	path := writeLabelsFile(t, `date_order: weekfirst`)
	_, err := LoadTables(path, constants.DateOrderDayFirst)
	require.Error(t, err)
}

func TestLoadTables_RejectsNonStringListEntries(t *testing.T) {
	path := writeLabelsFile(t, `
total_labels:
  - 42
`)
	_, err := LoadTables(path, constants.DateOrderDayFirst)
	require.Error(t, err)
}

func TestLoadTables_MissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "absent.yaml"), constants.DateOrderDayFirst)
	require.Error(t, err)
}

func TestSplitVendor(t *testing.T) {
	tables := DefaultTables(constants.DateOrderDayFirst)

	name, suffix := tables.SplitVendor("Acme Corp LLC")
	assert.Equal(t, "Acme Corp", name)
	assert.Equal(t, "LLC", suffix)

	name, suffix = tables.SplitVendor("Widget Works Inc.")
	assert.Equal(t, "Widget Works", name)
	assert.Equal(t, "Inc", suffix)

	name, suffix = tables.SplitVendor("John Smith")
	assert.Equal(t, "John Smith", name)
	assert.Empty(t, suffix)
}
