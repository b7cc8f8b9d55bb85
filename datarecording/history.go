package datarecording

import (
	"context"
	"fmt"

	"github.com/sarchlab/ringwalk/ring"
)

// Table names used for ring simulation results.
const (
	RunTable      = "runs"
	SnapshotTable = "snapshots"
	MoveTable     = "moves"
)

// RunEntry is one row of the runs table.
type RunEntry struct {
	RunID            string
	Dynamics         string
	NumNodes         int
	InitialOccupancy int
	Capacity         int
	TimeSteps        int
	CollectionTime   int
	Cadence          string
	SampleInterval   int
	Seed             int64
	Snapshots        int
}

// SnapshotEntry holds the occupancy of one node in one recorded snapshot.
type SnapshotEntry struct {
	RunID     string
	Snapshot  int
	Node      int
	Occupancy int
}

// MoveEntry is one node-level move attempt.
type MoveEntry struct {
	RunID     string
	Tick      int
	Node      int
	Neighbor  int
	Direction int
	Moved     bool
}

// MakeRunEntry describes a run of cfg that produced h.
func MakeRunEntry(runID string, cfg ring.Config, h *ring.History) RunEntry {
	cadence, _ := cfg.EffectiveCadence()

	return RunEntry{
		RunID:            runID,
		Dynamics:         string(cfg.Dynamics),
		NumNodes:         cfg.NumNodes,
		InitialOccupancy: cfg.InitialOccupancy,
		Capacity:         cfg.Capacity,
		TimeSteps:        cfg.TimeSteps,
		CollectionTime:   cfg.CollectionTime,
		Cadence:          string(cadence),
		SampleInterval:   cfg.SampleInterval,
		Seed:             cfg.Seed,
		Snapshots:        h.Len(),
	}
}

// WriteHistory stores the run description and every snapshot of h. Rows are
// buffered; call Flush or Close on the recorder to persist them.
func WriteHistory(rec DataRecorder, run RunEntry, h *ring.History) {
	rec.CreateTable(RunTable, RunEntry{})
	rec.CreateTable(SnapshotTable, SnapshotEntry{})

	run.Snapshots = h.Len()
	rec.InsertData(RunTable, run)

	for i, snap := range h.Snapshots() {
		for node, occupancy := range snap {
			rec.InsertData(SnapshotTable, SnapshotEntry{
				RunID:     run.RunID,
				Snapshot:  i,
				Node:      node,
				Occupancy: occupancy,
			})
		}
	}
}

// MapTables registers the ring result tables with a reader.
func MapTables(r DataReader) {
	r.MapTable(RunTable, RunEntry{})
	r.MapTable(SnapshotTable, SnapshotEntry{})
	r.MapTable(MoveTable, MoveEntry{})
}

// ListRuns returns every stored run.
func ListRuns(ctx context.Context, r DataReader) ([]RunEntry, error) {
	rows, _, err := r.Query(ctx, RunTable, QueryParams{OrderBy: "RunID"})
	if err != nil {
		return nil, err
	}

	runs := make([]RunEntry, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, *row.(*RunEntry))
	}

	return runs, nil
}

// ReadHistory loads the run with the given ID and rebuilds its History.
func ReadHistory(
	ctx context.Context,
	r DataReader,
	runID string,
) (RunEntry, *ring.History, error) {
	rows, _, err := r.Query(ctx, RunTable, QueryParams{
		Where: "RunID = ?",
		Args:  []any{runID},
	})
	if err != nil {
		return RunEntry{}, nil, err
	}

	if len(rows) == 0 {
		return RunEntry{}, nil, fmt.Errorf("datarecording: run %q not found", runID)
	}

	run := *rows[0].(*RunEntry)

	cells, _, err := r.Query(ctx, SnapshotTable, QueryParams{
		Where:   "RunID = ?",
		Args:    []any{runID},
		OrderBy: "Snapshot, Node",
	})
	if err != nil {
		return RunEntry{}, nil, err
	}

	snapshots := make([]ring.State, run.Snapshots)
	for i := range snapshots {
		snapshots[i] = make(ring.State, run.NumNodes)
	}

	for _, row := range cells {
		cell := row.(*SnapshotEntry)
		if cell.Snapshot >= run.Snapshots || cell.Node >= run.NumNodes {
			return RunEntry{}, nil, fmt.Errorf(
				"datarecording: run %q has cell (%d, %d) outside %dx%d",
				runID, cell.Snapshot, cell.Node, run.Snapshots, run.NumNodes)
		}

		snapshots[cell.Snapshot][cell.Node] = cell.Occupancy
	}

	return run, ring.HistoryFromSnapshots(run.CollectionTime, snapshots), nil
}
