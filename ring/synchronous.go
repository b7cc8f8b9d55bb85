package ring

// SynchronousScheduler lets every node decide against the same start-of-tick
// snapshot and applies all moves together. Two nodes may push into the same
// neighbor in one tick, which can leave it one particle above capacity until
// it sheds the surplus.
type SynchronousScheduler struct {
	*tickingScheduler
}

// NewSynchronousScheduler creates a SynchronousScheduler.
func NewSynchronousScheduler(
	cfg Config,
	source DirectionSource,
) *SynchronousScheduler {
	s := &SynchronousScheduler{
		tickingScheduler: newTickingScheduler(cfg, Synchronous, source),
	}
	s.self = s
	s.tickFn = s.tick

	return s
}

// Strategy returns UpdateBatched.
func (s *SynchronousScheduler) Strategy() UpdateStrategy {
	return UpdateBatched
}

func (s *SynchronousScheduler) tick(t int) error {
	prev := s.state
	next := prev.Clone()
	n := len(prev)

	for i := 0; i < n; i++ {
		d, err := s.nextDirection()
		if err != nil {
			return err
		}

		nb := NeighborIndex(i, n, d)
		moved := Move(prev, next, i, nb, s.cfg.Capacity)
		s.reportMove(t, i, nb, d, moved)
	}

	s.state = next

	if s.cfg.Sampled(t) {
		s.history.record(t, s.state)
	}

	return nil
}

var _ Scheduler = (*SynchronousScheduler)(nil)
