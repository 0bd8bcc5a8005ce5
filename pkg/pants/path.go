package pants

import (
	"iter"
	"slices"
	"strings"
)

// Path is the ordered history of states from a search origin (First) to the
// current frontier state (Last). Consecutive states of paths produced by
// [Path.Children] are always one legal move apart.
//
// A Path is immutable; extending it allocates a new state slice.
type Path[T comparable] struct {
	states []State[T]
}

// NewPath creates a path from the given states. The slice is copied.
// At least one state is required.
func NewPath[T comparable](states ...State[T]) Path[T] {
	return Path[T]{states: slices.Clone(states)}
}

// Len returns the number of states on the path.
func (p Path[T]) Len() int { return len(p.states) }

// First returns the search origin.
func (p Path[T]) First() State[T] { return p.states[0] }

// Last returns the current frontier state.
func (p Path[T]) Last() State[T] { return p.states[len(p.states)-1] }

// States returns a copy of the states on the path, origin first.
func (p Path[T]) States() []State[T] { return slices.Clone(p.states) }

// Depth returns the number of moves made along the path.
func (p Path[T]) Depth() int { return len(p.states) - 1 }

// Contains reports whether a state equal to s is already on the path.
func (p Path[T]) Contains(s State[T]) bool {
	return slices.ContainsFunc(p.states, s.Equal)
}

// Equal reports whether both paths hold equal states in the same order.
func (p Path[T]) Equal(other Path[T]) bool {
	return slices.EqualFunc(p.states, other.states, State[T].Equal)
}

// extend returns a new path with s appended. The result never shares its
// backing array with p, so sibling children stay independent.
func (p Path[T]) extend(s State[T]) Path[T] {
	states := make([]State[T], len(p.states), len(p.states)+1)
	copy(states, p.states)
	return Path[T]{states: append(states, s)}
}

// Successors lazily yields each legal move from the last state together with
// the path extended by its result. Moves are evaluated in the order returned
// by [Moves]; a move is skipped when it is illegal or when its result is
// already on the path.
//
// The sequence can be ranged over any number of times. Stopping early skips
// evaluation of the remaining moves.
func (p Path[T]) Successors() iter.Seq2[Move, Path[T]] {
	return func(yield func(Move, Path[T]) bool) {
		last := p.Last()
		for _, m := range Moves() {
			next, ok := last.Apply(m)
			if !ok || p.Contains(next) {
				continue
			}
			if !yield(m, p.extend(next)) {
				return
			}
		}
	}
}

// Children lazily yields the paths reachable by one more legal move that
// does not revisit a state on the path. See [Path.Successors] for ordering.
func (p Path[T]) Children() iter.Seq[Path[T]] {
	return func(yield func(Path[T]) bool) {
		for _, child := range p.Successors() {
			if !yield(child) {
				return
			}
		}
	}
}

// String renders the states joined by " -> ".
func (p Path[T]) String() string {
	parts := make([]string, len(p.states))
	for i, s := range p.states {
		parts[i] = s.String()
	}
	return strings.Join(parts, " -> ")
}
