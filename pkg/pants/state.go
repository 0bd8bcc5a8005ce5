package pants

import (
	"fmt"
	"slices"
	"strings"
)

// State is one puzzle configuration: a pointer into an ordered sequence of
// values. The zero value is not usable; build states with [NewState].
//
// A State is immutable. Moves return new states and never touch the
// receiver's backing storage.
type State[T comparable] struct {
	pointer int
	values  []T
}

// NewState creates a state with the pointer at the given index.
// The values are copied, so later changes to the caller's slice do not
// affect the state.
//
// The pointer must satisfy 0 <= pointer < len(values); NewState does not
// check this. Use [State.Validate] when the input comes from outside the
// program.
func NewState[T comparable](pointer int, values ...T) State[T] {
	return State[T]{pointer: pointer, values: slices.Clone(values)}
}

// Pointer returns the index of the value currently held.
func (s State[T]) Pointer() int { return s.pointer }

// Len returns the number of values in the sequence.
func (s State[T]) Len() int { return len(s.values) }

// At returns the value at index i.
func (s State[T]) At(i int) T { return s.values[i] }

// Current returns the value under the pointer.
func (s State[T]) Current() T { return s.values[s.pointer] }

// Values returns a copy of the value sequence.
func (s State[T]) Values() []T { return slices.Clone(s.values) }

// Equal reports whether both states have the same pointer and the same
// values in the same order.
func (s State[T]) Equal(other State[T]) bool {
	return s.pointer == other.pointer && slices.Equal(s.values, other.values)
}

// MovePointerLeft moves the pointer two slots left, jumping over its left
// neighbour. The values are unchanged. It fails when the pointer is at
// index 0 or 1.
func (s State[T]) MovePointerLeft() (State[T], bool) {
	if s.pointer-2 < 0 {
		return State[T]{}, false
	}
	return State[T]{pointer: s.pointer - 2, values: s.values}, true
}

// MovePointerRight moves the pointer two slots right. It fails when the
// pointer is on the last or second to last index.
func (s State[T]) MovePointerRight() (State[T], bool) {
	if s.pointer+2 > len(s.values)-1 {
		return State[T]{}, false
	}
	return State[T]{pointer: s.pointer + 2, values: s.values}, true
}

// SwapLeft exchanges the pointer value with its left neighbour. The pointer
// follows its value, so it ends up one slot further left.
func (s State[T]) SwapLeft() (State[T], bool) {
	if s.pointer-1 < 0 {
		return State[T]{}, false
	}
	return s.swap(s.pointer - 1), true
}

// SwapRight exchanges the pointer value with its right neighbour and moves
// the pointer one slot right.
func (s State[T]) SwapRight() (State[T], bool) {
	if s.pointer+1 > len(s.values)-1 {
		return State[T]{}, false
	}
	return s.swap(s.pointer + 1), true
}

// swap returns a copy of s with values[pointer] and values[to] exchanged
// and the pointer moved to to.
func (s State[T]) swap(to int) State[T] {
	values := slices.Clone(s.values)
	values[s.pointer], values[to] = values[to], values[s.pointer]
	return State[T]{pointer: to, values: values}
}

// Apply performs the given move. Unknown moves are reported as illegal.
func (s State[T]) Apply(m Move) (State[T], bool) {
	switch m {
	case MovePointerLeft:
		return s.MovePointerLeft()
	case MovePointerRight:
		return s.MovePointerRight()
	case MoveSwapLeft:
		return s.SwapLeft()
	case MoveSwapRight:
		return s.SwapRight()
	}
	return State[T]{}, false
}

// String renders the state as its values joined by spaces with the pointer
// value marked by a leading '*', e.g. "[3 5 *2 1 4]". Distinct states can
// render alike when values contain spaces; use [State.Key] to identify them.
func (s State[T]) String() string { return s.format("%v") }

// Key identifies s among all states of the same value type. Values are
// written in Go syntax, so strings are quoted: [*"a" "b c"] and
// [*"a b" "c"] differ. For integer values Key equals String.
func (s State[T]) Key() string { return s.format("%#v") }

func (s State[T]) format(verb string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range s.values {
		if i > 0 {
			b.WriteByte(' ')
		}
		if i == s.pointer {
			b.WriteByte('*')
		}
		fmt.Fprintf(&b, verb, v)
	}
	b.WriteByte(']')
	return b.String()
}
