package pdftext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "Invoice\r\nTotal", "Invoice\nTotal"},
		{"bare cr", "Invoice\rTotal", "Invoice\nTotal"},
		{"form feed", "Page1\fPage2", "Page1\nPage2"},
		{"tabs become one space", "Invoice\t\tNumber:\t12345", "Invoice Number: 12345"},
		{"space runs collapse", "Total:    $250.00", "Total: $250.00"},
		{"blank run collapses", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces trimmed", "Invoice Total: $250.00   \nnext", "Invoice Total: $250.00\nnext"},
		{"outer whitespace trimmed", "\n\n  Invoice  \n\n", "Invoice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
