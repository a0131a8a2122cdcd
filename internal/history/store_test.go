package history

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-organizer/constants"
	"github.com/joseph-ayodele/invoice-organizer/internal/entity"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(context.Background(), path, testLogger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func ledgerAt(t *testing.T, started time.Time) *entity.RunLedger {
	t.Helper()
	ledger := entity.NewRunLedger("/in", "/out", entity.SchemeInvoiceNumber, entity.ModeApply)
	ledger.StartedAt = started
	ledger.Append(entity.ExtractionResult{SourcePath: "/in/a.pdf", Status: constants.StatusOK},
		entity.PlannedAction{TargetFileName: "INV_1001_20240115.pdf", Mode: entity.ModeApply})
	ledger.Append(entity.ExtractionResult{SourcePath: "/in/b.pdf", Status: constants.StatusSkipped,
		Reason: constants.ReasonCorrupted}, entity.PlannedAction{Mode: entity.ModeApply})
	ledger.Copied = 1
	ledger.Finalize()
	return ledger
}

func TestStore_RecordAndListRoundTrip(t *testing.T) {
	s := openStore(t, ":memory:")
	ctx := context.Background()

	started := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	ledger := ledgerAt(t, started)
	require.NoError(t, s.RecordRun(ctx, ledger))

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	r := runs[0]
	assert.Equal(t, ledger.RunID.String(), r.ID)
	assert.True(t, r.StartedAt.Equal(started))
	assert.Equal(t, "/in", r.InputFolder)
	assert.Equal(t, "/out", r.OutputFolder)
	assert.Equal(t, string(entity.SchemeInvoiceNumber), r.Scheme)
	assert.Equal(t, string(entity.ModeApply), r.Mode)
	assert.Equal(t, 2, r.Total)
	assert.Equal(t, 1, r.OK)
	assert.Equal(t, 0, r.Partial)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 1, r.Copied)
}

func TestStore_ListNewestFirstAndLimited(t *testing.T) {
	s := openStore(t, ":memory:")
	ctx := context.Background()

	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		ledger := ledgerAt(t, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, s.RecordRun(ctx, ledger))
		ids = append(ids, ledger.RunID.String())
	}

	runs, err := s.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, ids[1], runs[1].ID)
}

func TestStore_OpenCreatesParentFolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.db")
	s := openStore(t, path)

	runs, err := s.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}
