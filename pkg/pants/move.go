package pants

import (
	"strings"

	"github.com/matzehuels/pants/pkg/errors"
)

// Move identifies one of the four legal puzzle moves.
type Move int

const (
	// MovePointerLeft moves the pointer two slots left.
	MovePointerLeft Move = iota
	// MovePointerRight moves the pointer two slots right.
	MovePointerRight
	// MoveSwapLeft swaps the pointer value with its left neighbour.
	MoveSwapLeft
	// MoveSwapRight swaps the pointer value with its right neighbour.
	MoveSwapRight
)

var moveNames = [...]string{
	MovePointerLeft:  "move-left",
	MovePointerRight: "move-right",
	MoveSwapLeft:     "swap-left",
	MoveSwapRight:    "swap-right",
}

// Moves returns all moves in the order successors are evaluated.
func Moves() []Move {
	return []Move{MovePointerLeft, MovePointerRight, MoveSwapLeft, MoveSwapRight}
}

func (m Move) String() string {
	if m < 0 || int(m) >= len(moveNames) {
		return "unknown"
	}
	return moveNames[m]
}

// ParseMove returns the move with the given name. Names are matched
// case-insensitively.
func ParseMove(name string) (Move, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range moveNames {
		if n == name {
			return Move(i), nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidMove, "unknown move %q (want one of %s)", name, strings.Join(moveNames[:], ", "))
}
