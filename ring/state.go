package ring

import "fmt"

// State is the occupancy of every node on the ring, indexed by node.
type State []int

// Initialize creates the starting state of a run: numNodes nodes each holding
// initialOccupancy particles.
func Initialize(numNodes, initialOccupancy, capacity int) (State, error) {
	if numNodes < 1 {
		return nil, configErrorf("num_nodes", numNodes,
			"node count must be >= 1")
	}

	if initialOccupancy < 1 {
		return nil, configErrorf("initial_occupancy", initialOccupancy,
			"particle count must be >= 1")
	}

	if initialOccupancy > capacity {
		return nil, configErrorf("initial_occupancy", initialOccupancy,
			"initial occupancy exceeds capacity n_max=%d", capacity)
	}

	s := make(State, numNodes)
	for i := range s {
		s[i] = initialOccupancy
	}

	return s, nil
}

// Len returns the number of nodes.
func (s State) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s State) Clone() State {
	if s == nil {
		return nil
	}

	c := make(State, len(s))
	copy(c, s)

	return c
}

// Sum returns the total number of particles.
func (s State) Sum() int {
	total := 0
	for _, n := range s {
		total += n
	}

	return total
}

// Max returns the largest occupancy, or 0 for an empty state.
func (s State) Max() int {
	if len(s) == 0 {
		return 0
	}

	m := s[0]
	for _, n := range s[1:] {
		if n > m {
			m = n
		}
	}

	return m
}

// Min returns the smallest occupancy, or 0 for an empty state.
func (s State) Min() int {
	if len(s) == 0 {
		return 0
	}

	m := s[0]
	for _, n := range s[1:] {
		if n < m {
			m = n
		}
	}

	return m
}

// Equal reports whether both states hold the same occupancy at every node.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}

	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

func (s State) String() string {
	return fmt.Sprint([]int(s))
}
