package common

import (
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// SetupLogger creates a dual-output logger: text to stderr for the user,
// JSON into errors.log in the output folder for the technical failure
// detail the run leaves behind. Returns the logger and a cleanup function.
func SetupLogger(errorLogPath string, level slog.Level) (*slog.Logger, func() error) {
	stderrHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	file, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		slog.Error("failed to open errors.log, using stderr only", "error", err, "file", errorLogPath)
		return slog.New(stderrHandler), func() error { return nil }
	}

	// The file gets warnings and errors only; routine progress stays on stderr.
	fileLevel := level
	if fileLevel < slog.LevelWarn {
		fileLevel = slog.LevelWarn
	}
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: fileLevel,
	})

	logger := slog.New(slogmulti.Fanout(stderrHandler, fileHandler))

	cleanup := func() error {
		return file.Close()
	}
	return logger, cleanup
}

// SetupLoggerWithWriters creates a logger with custom writers (for testing).
func SetupLoggerWithWriters(stderr, file io.Writer, level slog.Level) *slog.Logger {
	stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})
	fileHandler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(slogmulti.Fanout(stderrHandler, fileHandler))
}
