package simulation

import (
	"log/slog"

	"github.com/sarchlab/ringwalk/datarecording"
	"github.com/sarchlab/ringwalk/idgen"
	"github.com/sarchlab/ringwalk/ring"
	"github.com/sarchlab/ringwalk/tracing"
)

// Builder can be used to build a simulation.
type Builder struct {
	cfg         ring.Config
	source      ring.DirectionSource
	recorder    datarecording.DataRecorder
	recordMoves bool
	logger      *slog.Logger
	idGen       idgen.Generator
	runID       string
}

// MakeBuilder creates a new builder.
func MakeBuilder() Builder {
	return Builder{
		idGen: idgen.NewXID(),
	}
}

// WithConfig sets the run parameters.
func (b Builder) WithConfig(cfg ring.Config) Builder {
	b.cfg = cfg
	return b
}

// WithDirectionSource replaces the seeded random direction source.
func (b Builder) WithDirectionSource(source ring.DirectionSource) Builder {
	b.source = source
	return b
}

// WithDataRecorder sets where the History is stored after the run.
func (b Builder) WithDataRecorder(recorder datarecording.DataRecorder) Builder {
	b.recorder = recorder
	return b
}

// WithMoveRecording also stores every move attempt after the collection
// time. It requires a data recorder.
func (b Builder) WithMoveRecording() Builder {
	b.recordMoves = true
	return b
}

// WithLogger sets the logger for run progress. Per-tick records are emitted
// at debug level.
func (b Builder) WithLogger(logger *slog.Logger) Builder {
	b.logger = logger
	return b
}

// WithIDGenerator sets how the run ID is generated.
func (b Builder) WithIDGenerator(g idgen.Generator) Builder {
	b.idGen = g
	return b
}

// WithRunID fixes the run ID.
func (b Builder) WithRunID(id string) Builder {
	b.runID = id
	return b
}

func (b Builder) parametersMustBeValid() {
	if b.recordMoves && b.recorder == nil {
		panic("move recording requires a data recorder")
	}
}

// Build validates the configuration and assembles the simulation.
func (b Builder) Build() (*Simulation, error) {
	b.parametersMustBeValid()

	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}

	source := b.source
	if source == nil {
		source = ring.NewRandomDirectionSource(b.cfg.Seed)
	}

	scheduler, err := ring.NewScheduler(b.cfg, source)
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		id:           b.runID,
		cfg:          b.cfg,
		scheduler:    scheduler,
		dataRecorder: b.recorder,
		logger:       b.logger,
	}

	if s.id == "" {
		s.id = b.idGen.Generate()
	}

	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}

	s.counter = tracing.NewMoveCountTracer(b.cfg.Capacity)
	scheduler.AcceptHook(s.counter)
	scheduler.AcceptHook(tracing.NewLogHook(s.logger.With("run", s.id)))

	if b.recordMoves {
		scheduler.AcceptHook(tracing.NewMoveRecorder(
			s.id, b.recorder, b.cfg.CollectionTime))
	}

	return s, nil
}
