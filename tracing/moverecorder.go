package tracing

import (
	"github.com/sarchlab/ringwalk/datarecording"
	"github.com/sarchlab/ringwalk/hooking"
	"github.com/sarchlab/ringwalk/ring"
)

// MoveRecorder stores every move attempt of a run in the moves table.
type MoveRecorder struct {
	runID    string
	backend  datarecording.DataRecorder
	fromTick int
}

// NewMoveRecorder creates a MoveRecorder that writes rows tagged with runID.
// Attempts at or before fromTick are skipped.
func NewMoveRecorder(
	runID string,
	backend datarecording.DataRecorder,
	fromTick int,
) *MoveRecorder {
	backend.CreateTable(datarecording.MoveTable, datarecording.MoveEntry{})

	return &MoveRecorder{
		runID:    runID,
		backend:  backend,
		fromTick: fromTick,
	}
}

// Func records move attempts.
func (r *MoveRecorder) Func(ctx hooking.HookCtx) {
	if ctx.Pos != ring.HookPosMove {
		return
	}

	attempt := ctx.Item.(ring.MoveAttempt)
	if attempt.Tick <= r.fromTick {
		return
	}

	r.backend.InsertData(datarecording.MoveTable, datarecording.MoveEntry{
		RunID:     r.runID,
		Tick:      attempt.Tick,
		Node:      attempt.Node,
		Neighbor:  attempt.Neighbor,
		Direction: int(attempt.Direction),
		Moved:     attempt.Moved,
	})
}
