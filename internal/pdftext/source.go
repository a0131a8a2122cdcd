// Package pdftext provides the text-layer access for machine-generated PDFs.
package pdftext

import (
	"context"
	"fmt"

	"github.com/joseph-ayodele/invoice-organizer/constants"
	"github.com/joseph-ayodele/invoice-organizer/internal/common"
)

// FailureKind classifies why a PDF's text layer could not be obtained.
type FailureKind string

const (
	FailureImagePDF         FailureKind = "IMAGE_PDF"
	FailureEncrypted        FailureKind = "ENCRYPTED"
	FailureCorrupted        FailureKind = "CORRUPTED"
	FailurePermissionDenied FailureKind = "PERMISSION_DENIED"
)

// Reason maps the failure kind to the user-facing skip reason.
func (k FailureKind) Reason() string {
	switch k {
	case FailureImagePDF:
		return constants.ReasonImagePDF
	case FailureEncrypted:
		return constants.ReasonEncrypted
	case FailurePermissionDenied:
		return constants.ReasonPermission
	default:
		return constants.ReasonCorrupted
	}
}

// UnreadableError is the terminal per-file failure of a text source.
type UnreadableError struct {
	Kind FailureKind
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Path)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// Is places every unreadable-source failure under the
// common.ErrUnreadableSource sentinel.
func (e *UnreadableError) Is(target error) bool {
	return target == common.ErrUnreadableSource
}

// Source yields a PDF's extractable text as an ordered line sequence.
// Failures are always *UnreadableError.
type Source interface {
	GetLines(ctx context.Context, path string) ([]string, error)
}
