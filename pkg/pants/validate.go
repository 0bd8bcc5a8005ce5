package pants

import (
	"github.com/matzehuels/pants/pkg/errors"
)

// Validate checks that the state is well formed: the sequence is not empty,
// the pointer is in range and no value appears twice.
//
// States produced by moves from a valid state are always valid. Validate is
// meant for states built from user input.
func (s State[T]) Validate() error {
	if len(s.values) == 0 {
		return errors.New(errors.ErrCodeInvalidState, "value sequence is empty")
	}
	if s.pointer < 0 || s.pointer >= len(s.values) {
		return errors.New(errors.ErrCodeInvalidState, "pointer %d out of range [0, %d)", s.pointer, len(s.values))
	}
	seen := make(map[T]int, len(s.values))
	for i, v := range s.values {
		if j, dup := seen[v]; dup {
			return errors.New(errors.ErrCodeInvalidState, "value %v appears at index %d and %d", v, j, i)
		}
		seen[v] = i
	}
	return nil
}
