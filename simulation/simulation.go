// Package simulation assembles a ring run from its configuration, direction
// source, tracers and data recorder.
package simulation

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/sarchlab/ringwalk/analysis"
	"github.com/sarchlab/ringwalk/datarecording"
	"github.com/sarchlab/ringwalk/ring"
	"github.com/sarchlab/ringwalk/tracing"
)

// A Simulation is one configured run of the ring process.
type Simulation struct {
	id           string
	cfg          ring.Config
	scheduler    ring.Scheduler
	counter      *tracing.MoveCountTracer
	dataRecorder datarecording.DataRecorder
	logger       *slog.Logger

	started bool
	history *ring.History
}

// ID returns the run ID.
func (s *Simulation) ID() string {
	return s.id
}

// Config returns the run parameters.
func (s *Simulation) Config() ring.Config {
	return s.cfg
}

// Scheduler returns the scheduler driving the run.
func (s *Simulation) Scheduler() ring.Scheduler {
	return s.scheduler
}

// Counter returns the move counter attached to the scheduler.
func (s *Simulation) Counter() *tracing.MoveCountTracer {
	return s.counter
}

// GetDataRecorder returns the data recorder, or nil when results are not
// stored.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// History returns the History of the last Run, or nil before the first run.
func (s *Simulation) History() *ring.History {
	return s.history
}

// Run initializes the ring, runs the scheduler to the last tick and stores
// the History if a data recorder is set. A Simulation runs once; build a new
// one for another run.
func (s *Simulation) Run() (*ring.History, error) {
	if s.started {
		return nil, fmt.Errorf("simulation: run %s already started", s.id)
	}

	s.started = true

	initial, err := ring.Initialize(
		s.cfg.NumNodes, s.cfg.InitialOccupancy, s.cfg.Capacity)
	if err != nil {
		return nil, err
	}

	s.logger.Info("run started",
		slog.String("run", s.id),
		slog.String("dynamics", string(s.cfg.Dynamics)),
		slog.Int("nodes", s.cfg.NumNodes),
		slog.Int("particles_per_node", s.cfg.InitialOccupancy),
		slog.Int("n_max", s.cfg.Capacity),
		slog.Int("time_steps", s.cfg.TimeSteps),
		slog.Int("collection_time", s.cfg.CollectionTime),
	)

	start := time.Now()

	h, err := s.scheduler.Run(initial)
	if err != nil {
		return nil, err
	}

	s.history = h

	if s.dataRecorder != nil {
		datarecording.WriteHistory(s.dataRecorder,
			datarecording.MakeRunEntry(s.id, s.cfg, h), h)
		s.dataRecorder.Flush()
	}

	summary := analysis.Summarize(h, s.cfg.Capacity)
	s.logger.Info("run finished",
		slog.String("run", s.id),
		slog.Int("snapshots", h.Len()),
		slog.Uint64("attempts", s.counter.Attempts()),
		slog.Uint64("moves", s.counter.Moves()),
		slog.Float64("acceptance", s.counter.AcceptanceRate()),
		slog.Bool("conserved", summary.Conserved),
		slog.Int("max_occupancy", summary.MaxOccupancy),
		slog.Duration("elapsed", time.Since(start)),
	)

	return h, nil
}

// Terminate flushes and closes the data recorder.
func (s *Simulation) Terminate() error {
	if s.dataRecorder == nil {
		return nil
	}

	return s.dataRecorder.Close()
}
