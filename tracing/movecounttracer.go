package tracing

import (
	"sync"

	"github.com/sarchlab/ringwalk/hooking"
	"github.com/sarchlab/ringwalk/ring"
)

// MoveCountTracer counts move attempts and accepted moves, and the ticks
// that ended with a node above capacity.
type MoveCountTracer struct {
	lock     sync.Mutex
	capacity int

	ticks          uint64
	attempts       uint64
	moves          uint64
	overshootTicks uint64
	nodeMoves      map[int]uint64
}

// NewMoveCountTracer creates a MoveCountTracer for nodes of the given
// capacity.
func NewMoveCountTracer(capacity int) *MoveCountTracer {
	return &MoveCountTracer{
		capacity:  capacity,
		nodeMoves: make(map[int]uint64),
	}
}

// Func updates the counters.
func (t *MoveCountTracer) Func(ctx hooking.HookCtx) {
	t.lock.Lock()
	defer t.lock.Unlock()

	switch ctx.Pos {
	case ring.HookPosMove:
		attempt := ctx.Item.(ring.MoveAttempt)

		t.attempts++
		if attempt.Moved {
			t.moves++
			t.nodeMoves[attempt.Node]++
		}
	case ring.HookPosAfterTick:
		t.ticks++

		if s, ok := ctx.Detail.(ring.State); ok && s.Max() > t.capacity {
			t.overshootTicks++
		}
	}
}

// Ticks returns the number of completed ticks.
func (t *MoveCountTracer) Ticks() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.ticks
}

// Attempts returns the number of node-level move attempts.
func (t *MoveCountTracer) Attempts() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.attempts
}

// Moves returns the number of attempts that moved a particle.
func (t *MoveCountTracer) Moves() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.moves
}

// NodeMoves returns how many particles left the given node.
func (t *MoveCountTracer) NodeMoves(node int) uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.nodeMoves[node]
}

// OvershootTicks returns the number of ticks that ended with at least one
// node above capacity.
func (t *MoveCountTracer) OvershootTicks() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.overshootTicks
}

// AcceptanceRate returns moves over attempts, or 0 before any attempt.
func (t *MoveCountTracer) AcceptanceRate() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.attempts == 0 {
		return 0
	}

	return float64(t.moves) / float64(t.attempts)
}
