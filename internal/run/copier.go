package run

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joseph-ayodele/invoice-organizer/internal/common"
)

// Copier places a source file at a planned destination. Implementations
// never delete or move the source.
type Copier interface {
	Copy(ctx context.Context, sourcePath, destinationPath string) error
}

// FSCopier copies on the local filesystem, creating target directories as
// needed and preserving the source's modification time.
type FSCopier struct{}

func (FSCopier) Copy(ctx context.Context, sourcePath, destinationPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(destinationPath), 0755); err != nil {
		return fmt.Errorf("create target folder: %w: %w", common.ErrDestinationWrite, err)
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("open source: %w: %w", common.ErrUnreadableSource, err)
	}
	defer func() { _ = src.Close() }()

	dst, err := os.Create(destinationPath)
	if err != nil {
		return fmt.Errorf("create destination: %w: %w", common.ErrDestinationWrite, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("copy: %w: %w", common.ErrDestinationWrite, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("close destination: %w: %w", common.ErrDestinationWrite, err)
	}

	if info, err := os.Stat(sourcePath); err == nil {
		_ = os.Chtimes(destinationPath, info.ModTime(), info.ModTime())
	}
	return nil
}
