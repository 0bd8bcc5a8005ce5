package errors

import (
	"path/filepath"
	"slices"
	"strings"
	"unicode"
)

// ValidateFormat checks that format is one of the allowed output formats.
// Matching is case-sensitive; callers normalize first.
func ValidateFormat(format string, allowed ...string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateLimit checks that a user-supplied bound is within [0, max].
// Zero means "no limit" for the callers in this module.
func ValidateLimit(name string, n, max int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative (got %d)", name, n)
	}
	if max > 0 && n > max {
		return New(ErrCodeLimitExceeded, "%s %d exceeds maximum %d", name, n, max)
	}
	return nil
}

// ValidatePuzzleFilename validates the name of a puzzle definition file.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
//   - Extension must be .toml
func ValidatePuzzleFilename(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "puzzle file path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "puzzle file path contains invalid characters")
		}
	}

	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return New(ErrCodeInvalidPath, "puzzle file must have a .toml extension: %q", filepath.Base(path))
	}

	return nil
}
