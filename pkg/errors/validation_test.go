package errors

import (
	"testing"
)

func TestValidateFormat(t *testing.T) {
	allowed := []string{"text", "json", "dot", "svg"}
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"text", "text", false},
		{"svg", "svg", false},

		{"empty", "", true},
		{"unknown", "png", true},
		{"wrong case", "JSON", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.input, allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateLimit(t *testing.T) {
	tests := []struct {
		name     string
		n, max   int
		wantCode Code
	}{
		{"zero", 0, 10, ""},
		{"within", 5, 10, ""},
		{"at max", 10, 10, ""},
		{"no max", 1 << 20, 0, ""},
		{"negative", -1, 10, ErrCodeInvalidInput},
		{"over max", 11, 10, ErrCodeLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLimit("depth", tt.n, tt.max)
			if got := GetCode(err); got != tt.wantCode {
				t.Errorf("ValidateLimit(%d, %d) code = %q, want %q", tt.n, tt.max, got, tt.wantCode)
			}
		})
	}
}

func TestValidatePuzzleFilename(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "puzzle.toml", false},
		{"nested", "puzzles/five.toml", false},
		{"absolute", "/tmp/puzzle.toml", false},
		{"upper ext", "PUZZLE.TOML", false},

		{"empty", "", true},
		{"wrong ext", "puzzle.json", true},
		{"no ext", "puzzle", true},
		{"control char", "puz\x01zle.toml", true},
		{"null byte", "puzzle\x00.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePuzzleFilename(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePuzzleFilename(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidState,
		ErrCodeInvalidMove,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeLimitExceeded,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
