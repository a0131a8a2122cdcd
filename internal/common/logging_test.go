package common

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerWithWriters_FansOutToBothHandlers(t *testing.T) {
	var stderr, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stderr, &file, slog.LevelInfo)

	logger.Warn("run.unreadable", "path", "/in/a.pdf", "reason", "Corrupted PDF")

	assert.Contains(t, stderr.String(), "run.unreadable")
	assert.Contains(t, stderr.String(), "/in/a.pdf")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(file.Bytes(), &rec))
	assert.Equal(t, "run.unreadable", rec["msg"])
	assert.Equal(t, "/in/a.pdf", rec["path"])
}

func TestSetupLogger_FileGetsWarningsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	logger, cleanup := SetupLogger(path, slog.LevelDebug)

	logger.Info("scan.complete", "matched", 3)
	logger.Warn("run.copy.failed", "path", "/in/a.pdf")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "run.copy.failed")
	assert.False(t, strings.Contains(content, "scan.complete"))
}
