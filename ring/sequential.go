package ring

// SequentialScheduler visits nodes in index order and applies each move
// immediately, so node i sees the moves of nodes 0..i-1 from the same tick.
// Occupancy never exceeds capacity.
type SequentialScheduler struct {
	*tickingScheduler
}

// NewSequentialScheduler creates a SequentialScheduler.
func NewSequentialScheduler(
	cfg Config,
	source DirectionSource,
) *SequentialScheduler {
	s := &SequentialScheduler{
		tickingScheduler: newTickingScheduler(cfg, Sequential, source),
	}
	s.self = s
	s.tickFn = s.tick

	return s
}

// Strategy returns UpdateInPlace.
func (s *SequentialScheduler) Strategy() UpdateStrategy {
	return UpdateInPlace
}

func (s *SequentialScheduler) tick(t int) error {
	state := s.state
	n := len(state)

	for i := 0; i < n; i++ {
		d, err := s.nextDirection()
		if err != nil {
			return err
		}

		nb := NeighborIndex(i, n, d)
		moved := Move(state, state, i, nb, s.cfg.Capacity)
		s.reportMove(t, i, nb, d, moved)

		if s.cadence == CadencePerMove {
			s.history.record(t, state)
		}
	}

	if s.cadence == CadencePerTick && s.cfg.Sampled(t) {
		s.history.record(t, state)
	}

	return nil
}

var _ Scheduler = (*SequentialScheduler)(nil)
