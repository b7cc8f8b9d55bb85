package ring

import "fmt"

// Direction selects which ring neighbor a particle tries to move to.
type Direction int

// The two directions on a ring.
const (
	Left  Direction = 0
	Right Direction = 1
)

// Valid reports whether d is Left or Right.
func (d Direction) Valid() bool {
	return d == Left || d == Right
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// NeighborIndex returns the index of node i's neighbor on a ring of n nodes:
// (i+1) mod n to the right and (i-1) mod n to the left. On a ring of one node
// the node is its own neighbor.
func NeighborIndex(i, n int, d Direction) int {
	if n < 1 {
		panic(fmt.Sprintf("ring: neighbor on a ring of %d nodes", n))
	}

	switch d {
	case Right:
		return (i + 1) % n
	case Left:
		return ((i-1)%n + n) % n
	default:
		panic(fmt.Sprintf("ring: invalid direction %d", int(d)))
	}
}
