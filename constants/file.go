package constants

import "strings"

// AllowedExtensions holds the file extensions the batch will pick up.
// Only machine-generated PDFs are supported.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// MaxFilenameLength caps sanitized name tokens.
const MaxFilenameLength = 200

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
