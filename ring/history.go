package ring

// History is the ordered list of snapshots recorded by one run. The first
// snapshot is always the state right after initialization; later ones are
// only accepted past the collection time.
type History struct {
	collectionTime int
	snapshots      []State
}

// NewHistory starts a History from the initial state.
func NewHistory(baseline State, collectionTime int) *History {
	return &History{
		collectionTime: collectionTime,
		snapshots:      []State{baseline.Clone()},
	}
}

// HistoryFromSnapshots rebuilds a History from stored snapshots, the first
// of which is taken as the baseline.
func HistoryFromSnapshots(collectionTime int, snapshots []State) *History {
	h := &History{collectionTime: collectionTime}
	for _, s := range snapshots {
		h.snapshots = append(h.snapshots, s.Clone())
	}

	return h
}

// record appends a copy of s if tick t lies past the collection time. It
// reports whether the snapshot was kept. Only schedulers record; a History is
// read-only once returned from Run.
func (h *History) record(t int, s State) bool {
	if t <= h.collectionTime {
		return false
	}

	h.snapshots = append(h.snapshots, s.Clone())

	return true
}

// CollectionTime returns the warm-up horizon.
func (h *History) CollectionTime() int {
	return h.collectionTime
}

// Len returns the number of snapshots including the baseline.
func (h *History) Len() int {
	return len(h.snapshots)
}

// At returns a copy of the i-th snapshot.
func (h *History) At(i int) State {
	return h.snapshots[i].Clone()
}

// Last returns a copy of the most recent snapshot.
func (h *History) Last() State {
	return h.At(len(h.snapshots) - 1)
}

// Snapshots returns copies of all snapshots in order.
func (h *History) Snapshots() []State {
	out := make([]State, len(h.snapshots))
	for i, s := range h.snapshots {
		out[i] = s.Clone()
	}

	return out
}

// Flatten concatenates every snapshot into one slice of occupancy values.
func (h *History) Flatten() []int {
	total := 0
	for _, s := range h.snapshots {
		total += len(s)
	}

	out := make([]int, 0, total)
	for _, s := range h.snapshots {
		out = append(out, s...)
	}

	return out
}
