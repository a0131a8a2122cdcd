package pdftext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joseph-ayodele/invoice-organizer/constants"
	"github.com/joseph-ayodele/invoice-organizer/internal/common"
)

func TestUnreadableError_MatchesSentinel(t *testing.T) {
	err := &UnreadableError{Kind: FailureEncrypted, Path: "/in/locked.pdf"}
	assert.True(t, errors.Is(err, common.ErrUnreadableSource))

	wrapped := common.WrapError(err, "get lines")
	assert.True(t, errors.Is(wrapped, common.ErrUnreadableSource))
}

func TestFailureKind_Reason(t *testing.T) {
	tests := []struct {
		kind FailureKind
		want string
	}{
		{FailureImagePDF, constants.ReasonImagePDF},
		{FailureEncrypted, constants.ReasonEncrypted},
		{FailureCorrupted, constants.ReasonCorrupted},
		{FailurePermissionDenied, constants.ReasonPermission},
		{FailureKind("SOMETHING_ELSE"), constants.ReasonCorrupted},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.Reason())
	}
}
