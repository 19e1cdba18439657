package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxTextLength bounds titles, instructions and single words. Anything longer
// does not fit on a page at the smallest font size we use.
const maxTextLength = 200

// ValidateText validates a free-text form field such as a title.
//
// Validation rules:
//   - Maximum length of 200 characters
//   - No control characters (newlines included; the backends draw single lines)
//
// Empty values are accepted here; callers decide whether a field is required.
func ValidateText(field, value string) error {
	if len([]rune(value)) > maxTextLength {
		return New(ErrCodeInvalidInput, "%s too long (max %d characters)", field, maxTextLength)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	return nil
}

// ValidateRequired validates a required free-text field.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidInput, "please enter a %s", field)
	}
	return ValidateText(field, value)
}

// ValidateOutputPath validates a user supplied output path.
// "-" is accepted and means standard output.
func ValidateOutputPath(path string) error {
	if path == "" || path == "-" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}
	if filepath.Base(path) == "." || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidInput, "output path must name a file, got %q", path)
	}
	return nil
}
