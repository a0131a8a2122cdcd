// Package ingest enumerates the input folder into a deterministic batch.
package ingest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joseph-ayodele/invoice-organizer/constants"
)

// ScanStats summarizes a directory scan.
type ScanStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// Scanner lists the PDF files of an input folder. The returned paths are
// absolute and sorted lexicographically; collision-suffix determinism
// depends on this fixed ordering, not on directory-listing order.
type Scanner struct {
	Recursive  bool
	SkipHidden bool
}

// Scan enumerates the input folder. An unreadable root is the only fatal
// error; unreadable entries inside it are counted and skipped.
func (s *Scanner) Scan(root string) ([]string, ScanStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, ScanStats{}, errors.New("input folder is required")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, ScanStats{}, err
	}

	var paths []string
	var stats ScanStats

	if s.Recursive {
		err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, walkErr error) error {
			stats.Scanned++
			if walkErr != nil {
				if path == abs {
					return walkErr
				}
				stats.Failed++
				return nil
			}
			if s.SkipHidden && IsHidden(path) && path != abs {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if allowedExt(path) {
				stats.Matched++
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, stats, err
		}
	} else {
		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil, stats, err
		}
		for _, e := range entries {
			stats.Scanned++
			if e.IsDir() {
				continue
			}
			if s.SkipHidden && strings.HasPrefix(e.Name(), ".") {
				continue
			}
			if allowedExt(e.Name()) {
				stats.Matched++
				paths = append(paths, filepath.Join(abs, e.Name()))
			}
		}
	}

	sort.Strings(paths)
	return paths, stats, nil
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	return strings.HasPrefix(filepath.Base(path), ".")
}

func allowedExt(path string) bool {
	ext := constants.NormalizeExt(filepath.Ext(path))
	_, ok := constants.AllowedExtensions[ext]
	return ok
}
