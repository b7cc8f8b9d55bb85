package ring

import (
	"fmt"
	"strings"
)

// Dynamics names an update discipline.
type Dynamics string

// Supported dynamics.
const (
	Synchronous Dynamics = "synchronous"
	Sequential  Dynamics = "sequential"
)

// ParseDynamics accepts "synchronous"/"parallel" and
// "sequential"/"one_step"/"one-step", case-insensitively.
func ParseDynamics(s string) (Dynamics, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "synchronous", "parallel":
		return Synchronous, nil
	case "sequential", "one_step", "one-step":
		return Sequential, nil
	default:
		return "", configErrorf("dynamics_type", s,
			"must be %q or %q", Synchronous, Sequential)
	}
}

// Strategy returns how the dynamics writes moves into the state.
func (d Dynamics) Strategy() UpdateStrategy {
	if d == Sequential {
		return UpdateInPlace
	}

	return UpdateBatched
}

// UpdateStrategy tells which buffer a tick reads its move checks from.
type UpdateStrategy int

const (
	// UpdateBatched checks every move against the start-of-tick snapshot and
	// writes into a separate next-state buffer.
	UpdateBatched UpdateStrategy = iota

	// UpdateInPlace checks and writes the single working buffer.
	UpdateInPlace
)

func (u UpdateStrategy) String() string {
	switch u {
	case UpdateBatched:
		return "batched"
	case UpdateInPlace:
		return "in-place"
	default:
		return fmt.Sprintf("UpdateStrategy(%d)", int(u))
	}
}

// Cadence controls how often a run appends a snapshot to its History.
type Cadence string

const (
	// CadenceDefault picks per-tick for synchronous dynamics and per-move for
	// sequential dynamics.
	CadenceDefault Cadence = ""

	// CadencePerTick records once at the end of every tick.
	CadencePerTick Cadence = "per-tick"

	// CadencePerMove records after every node-level move attempt. Only the
	// sequential dynamics supports it.
	CadencePerMove Cadence = "per-move"
)

// ParseCadence accepts "", "per-tick"/"tick" and "per-move"/"move".
func ParseCadence(s string) (Cadence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return CadenceDefault, nil
	case "per-tick", "per_tick", "tick":
		return CadencePerTick, nil
	case "per-move", "per_move", "move":
		return CadencePerMove, nil
	default:
		return "", configErrorf("cadence", s,
			"must be %q or %q", CadencePerTick, CadencePerMove)
	}
}

// Config holds the parameters of one run.
type Config struct {
	NumNodes         int
	InitialOccupancy int
	Capacity         int
	TimeSteps        int
	CollectionTime   int
	Dynamics         Dynamics
	Cadence          Cadence

	// SampleInterval keeps only ticks that are a multiple of it when
	// recording per tick. 0 and 1 keep every tick.
	SampleInterval int

	Seed int64
}

// Validate checks every parameter and returns the first ConfigurationError
// found.
func (c Config) Validate() error {
	if _, err := Initialize(c.NumNodes, c.InitialOccupancy, c.Capacity); err != nil {
		return err
	}

	if err := c.validateHorizon(); err != nil {
		return err
	}

	if c.Dynamics != Synchronous && c.Dynamics != Sequential {
		return configErrorf("dynamics_type", c.Dynamics,
			"must be %q or %q", Synchronous, Sequential)
	}

	cadence, err := c.EffectiveCadence()
	if err != nil {
		return err
	}

	return c.validateSampling(cadence)
}

func (c Config) validateSampling(cadence Cadence) error {
	if c.SampleInterval < 0 {
		return configErrorf("sample_interval", c.SampleInterval,
			"must be >= 0")
	}

	if c.SampleInterval > 1 && cadence != CadencePerTick {
		return configErrorf("sample_interval", c.SampleInterval,
			"sampling requires %q recording, got %q",
			CadencePerTick, cadence)
	}

	return nil
}

// Sampled tells whether tick t is kept under the sample interval.
func (c Config) Sampled(t int) bool {
	return c.SampleInterval <= 1 || t%c.SampleInterval == 0
}

// EffectiveCadence resolves CadenceDefault against the dynamics.
func (c Config) EffectiveCadence() (Cadence, error) {
	switch c.Cadence {
	case CadenceDefault:
		if c.Dynamics == Sequential {
			return CadencePerMove, nil
		}

		return CadencePerTick, nil
	case CadencePerTick:
		return CadencePerTick, nil
	case CadencePerMove:
		if c.Dynamics != Sequential {
			return "", configErrorf("cadence", c.Cadence,
				"per-move recording requires %q dynamics, got %q",
				Sequential, c.Dynamics)
		}

		return CadencePerMove, nil
	default:
		return "", configErrorf("cadence", c.Cadence,
			"must be %q or %q", CadencePerTick, CadencePerMove)
	}
}

func (c Config) validateHorizon() error {
	if c.TimeSteps < 1 {
		return configErrorf("time_steps", c.TimeSteps, "must be >= 1")
	}

	if c.CollectionTime < 0 {
		return configErrorf("collection_time", c.CollectionTime,
			"must be >= 0")
	}

	if c.CollectionTime >= c.TimeSteps {
		return configErrorf("collection_time", c.CollectionTime,
			"must be less than time_steps=%d", c.TimeSteps)
	}

	return nil
}
