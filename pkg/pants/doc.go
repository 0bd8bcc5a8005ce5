// Package pants models the "pants puzzle": a sequence of distinct values
// with one designated pointer position, mutated by four legal moves.
//
// # States
//
// A [State] is an immutable configuration: a pointer index plus the value
// sequence. Every move returns a new state, or reports that the move is
// illegal from the current position:
//
//	s := pants.NewState(2, 1, 2, 3, 4, 5)
//	if next, ok := s.SwapRight(); ok {
//	    fmt.Println(next) // [1 2 4 *3 5]
//	}
//
// The two pointer moves jump two slots and need a two-slot margin on their
// side; the two swaps exchange the pointer value with its neighbour and need
// only a one-slot margin. An illegal move is an expected outcome, not an
// error, and is reported through the boolean result.
//
// # Paths
//
// A [Path] is the ordered history of states from a search origin to the
// current frontier state. [Path.Children] lazily yields one extended path per
// legal move from the last state, in the fixed order move-left, move-right,
// swap-left, swap-right, skipping any move that would revisit a state
// already on the path:
//
//	root := pants.NewPath(pants.NewState(0, 1, 2, 3, 4, 5))
//	for child := range root.Children() {
//	    fmt.Println(child.Last())
//	}
//
// States and paths are never mutated after construction, so they can be
// shared read-only between goroutines without locking.
package pants
