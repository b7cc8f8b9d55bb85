package analysis

import "github.com/sarchlab/ringwalk/ring"

// Summary condenses a History into the quantities checked after a run.
type Summary struct {
	Snapshots    int
	Nodes        int
	Particles    int
	Conserved    bool
	MinOccupancy int
	MaxOccupancy int

	// OverCapacity counts node readings above capacity across all
	// snapshots.
	OverCapacity int

	Mean     float64
	Variance float64
}

// Summarize inspects every snapshot of h against the given capacity.
func Summarize(h *ring.History, capacity int) Summary {
	snaps := h.Snapshots()
	s := Summary{
		Snapshots: len(snaps),
		Conserved: true,
	}

	if len(snaps) == 0 {
		return s
	}

	s.Nodes = len(snaps[0])
	s.Particles = snaps[0].Sum()
	s.MinOccupancy = snaps[0].Min()
	s.MaxOccupancy = snaps[0].Max()

	for _, snap := range snaps {
		if snap.Sum() != s.Particles || len(snap) != s.Nodes {
			s.Conserved = false
		}

		s.MinOccupancy = min(s.MinOccupancy, snap.Min())
		s.MaxOccupancy = max(s.MaxOccupancy, snap.Max())

		for _, n := range snap {
			if n > capacity {
				s.OverCapacity++
			}
		}
	}

	hist := NewHistogram(h.Flatten())
	s.Mean = hist.Mean()
	s.Variance = hist.Variance()

	return s
}
