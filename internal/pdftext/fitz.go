package pdftext

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// FitzSource reads the text layer through MuPDF (go-fitz).
type FitzSource struct {
	logger *slog.Logger

	// MinTextLen is the minimum amount of extracted text (in bytes, after
	// trimming) below which a PDF is treated as image-only.
	MinTextLen int
}

func NewFitzSource(logger *slog.Logger, minTextLen int) *FitzSource {
	if logger == nil {
		logger = slog.Default()
	}
	if minTextLen <= 0 {
		minTextLen = 20
	}
	return &FitzSource{logger: logger, MinTextLen: minTextLen}
}

// GetLines extracts and normalizes the text of every page. It returns an
// *UnreadableError classified as encrypted, corrupted, permission-denied,
// or image-only; it never mutates the source file.
func (s *FitzSource) GetLines(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, &UnreadableError{Kind: FailureCorrupted, Path: path, Err: err}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		kind := FailureCorrupted
		if os.IsPermission(err) {
			kind = FailurePermissionDenied
		}
		s.logger.Warn("pdftext.read.failed", "path", path, "kind", kind, "error", err)
		return nil, &UnreadableError{Kind: kind, Path: path, Err: err}
	}

	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		kind := FailureCorrupted
		if looksEncrypted(err) {
			kind = FailureEncrypted
		}
		s.logger.Warn("pdftext.open.failed", "path", path, "kind", kind, "error", err)
		return nil, &UnreadableError{Kind: kind, Path: path, Err: err}
	}
	defer func() {
		if cerr := doc.Close(); cerr != nil {
			s.logger.Warn("pdftext.close.failed", "path", path, "error", cerr)
		}
	}()

	var b strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			s.logger.Warn("pdftext.page.failed", "path", path, "page", page+1, "error", err)
			continue
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	normalized := Normalize(b.String())
	if len(normalized) < s.MinTextLen {
		s.logger.Info("pdftext.image_only", "path", path, "text_len", len(normalized))
		return nil, &UnreadableError{Kind: FailureImagePDF, Path: path}
	}

	lines := strings.Split(normalized, "\n")
	s.logger.Debug("pdftext.ok", "path", path, "pages", doc.NumPage(), "lines", len(lines))
	return lines, nil
}

// looksEncrypted matches MuPDF's password/encryption open failures.
func looksEncrypted(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "password") || strings.Contains(msg, "encrypt")
}
