package ring

import "math/rand"

// A DirectionSource produces the direction of the next move decision. The
// schedulers only rely on every value being Left or Right.
type DirectionSource interface {
	Next() Direction
}

// DirectionSourceFunc adapts a function into a DirectionSource.
type DirectionSourceFunc func() Direction

// Next calls f.
func (f DirectionSourceFunc) Next() Direction {
	return f()
}

// RandomDirectionSource draws Left and Right with equal probability from its
// own generator, so runs with the same seed replay exactly.
type RandomDirectionSource struct {
	rng *rand.Rand
}

// NewRandomDirectionSource creates a RandomDirectionSource seeded with seed.
func NewRandomDirectionSource(seed int64) *RandomDirectionSource {
	return &RandomDirectionSource{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Next returns a uniformly random direction.
func (s *RandomDirectionSource) Next() Direction {
	return Direction(s.rng.Intn(2))
}

// FixedDirectionSource always returns the same direction.
type FixedDirectionSource Direction

// Next returns the fixed direction.
func (s FixedDirectionSource) Next() Direction {
	return Direction(s)
}

// SequenceDirectionSource replays a list of directions, starting over when
// the list is exhausted.
type SequenceDirectionSource struct {
	dirs []Direction
	pos  int
}

// NewSequenceDirectionSource creates a source replaying dirs. It panics if
// dirs is empty.
func NewSequenceDirectionSource(dirs ...Direction) *SequenceDirectionSource {
	if len(dirs) == 0 {
		panic("ring: empty direction sequence")
	}

	return &SequenceDirectionSource{dirs: append([]Direction(nil), dirs...)}
}

// Next returns the next direction of the sequence.
func (s *SequenceDirectionSource) Next() Direction {
	d := s.dirs[s.pos]
	s.pos = (s.pos + 1) % len(s.dirs)

	return d
}
