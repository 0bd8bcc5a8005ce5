package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	perrors "github.com/matzehuels/pants/pkg/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"interrupted", fmt.Errorf("walk: %w", context.Canceled), 130},
		{"bad state", perrors.New(perrors.ErrCodeInvalidState, "pointer 9 out of range"), 2},
		{"missing file", perrors.New(perrors.ErrCodeFileNotFound, "puzzle.toml"), 2},
		{"limit", perrors.New(perrors.ErrCodeLimitExceeded, "depth"), 1},
		{"plain", errors.New("graphviz crashed"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
