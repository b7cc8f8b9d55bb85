// Package config loads ring simulation settings from YAML files, .env files
// and RINGWALK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sarchlab/ringwalk/ring"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RINGWALK_"

// File mirrors the YAML configuration file.
type File struct {
	Simulation SimulationSection `yaml:"simulation"`
	Output     OutputSection     `yaml:"output"`
	Logging    LoggingSection    `yaml:"logging"`
}

// SimulationSection holds the run parameters.
type SimulationSection struct {
	NumNodes         int    `yaml:"num_nodes"`
	InitialParticles int    `yaml:"initial_particles"`
	NMax             int    `yaml:"n_max"`
	NumTimeSteps     int    `yaml:"num_time_steps"`
	CollectionTime   int    `yaml:"collection_time"`
	DynamicsType     string `yaml:"dynamics_type"`

	// Cadence is "per-tick" or "per-move"; empty picks the default of the
	// dynamics.
	Cadence string `yaml:"cadence,omitempty"`

	// SampleInterval keeps one per-tick snapshot every that many ticks.
	SampleInterval int `yaml:"sample_interval,omitempty"`

	// Seed fixes the direction source. Nil asks the caller to pick one.
	Seed *int64 `yaml:"seed,omitempty"`
}

// OutputSection controls where results go.
type OutputSection struct {
	// Database is the SQLite file name without the .sqlite3 suffix. Empty
	// derives a name from the run ID.
	Database string `yaml:"database,omitempty"`

	// RecordMoves also stores every move attempt past the collection time.
	RecordMoves bool `yaml:"record_moves,omitempty"`
}

// LoggingSection selects the slog handler.
type LoggingSection struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// Default returns the parameters of the reference experiment.
func Default() *File {
	return &File{
		Simulation: SimulationSection{
			NumNodes:         20,
			InitialParticles: 2,
			NMax:             20,
			NumTimeSteps:     1000,
			CollectionTime:   0,
			DynamicsType:     string(ring.Synchronous),
		},
		Logging: LoggingSection{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path on top of Default, then applies a .env file sitting next
// to it (if any) and RINGWALK_* environment variables, and validates the
// result. An empty path skips the YAML step.
func Load(path string) (*File, error) {
	f := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, f); err != nil {
			return nil, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	if err := f.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func loadDotEnv(path string) error {
	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: loading %s: %w", path, err)
	}

	return nil
}

// ApplyEnv overrides fields from variables found by lookup.
func (f *File) ApplyEnv(lookup func(string) (string, bool)) error {
	ints := map[string]*int{
		"NUM_NODES":         &f.Simulation.NumNodes,
		"INITIAL_PARTICLES": &f.Simulation.InitialParticles,
		"N_MAX":             &f.Simulation.NMax,
		"NUM_TIME_STEPS":    &f.Simulation.NumTimeSteps,
		"COLLECTION_TIME":   &f.Simulation.CollectionTime,
		"SAMPLE_INTERVAL":   &f.Simulation.SampleInterval,
	}

	for key, dst := range ints {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			continue
		}

		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s%s=%q: %w", EnvPrefix, key, v, err)
		}

		*dst = n
	}

	strs := map[string]*string{
		"DYNAMICS_TYPE": &f.Simulation.DynamicsType,
		"CADENCE":       &f.Simulation.Cadence,
		"DATABASE":      &f.Output.Database,
		"LOG_LEVEL":     &f.Logging.Level,
		"LOG_FORMAT":    &f.Logging.Format,
	}

	for key, dst := range strs {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("config: %sSEED=%q: %w", EnvPrefix, v, err)
		}

		f.Simulation.Seed = &seed
	}

	if v, ok := lookup(EnvPrefix + "RECORD_MOVES"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sRECORD_MOVES=%q: %w", EnvPrefix, v, err)
		}

		f.Output.RecordMoves = b
	}

	return nil
}

// RingConfig converts the simulation section. The seed is left at zero when
// none is configured.
func (f *File) RingConfig() (ring.Config, error) {
	s := f.Simulation

	dynamics, err := ring.ParseDynamics(s.DynamicsType)
	if err != nil {
		return ring.Config{}, err
	}

	cadence, err := ring.ParseCadence(s.Cadence)
	if err != nil {
		return ring.Config{}, err
	}

	cfg := ring.Config{
		NumNodes:         s.NumNodes,
		InitialOccupancy: s.InitialParticles,
		Capacity:         s.NMax,
		TimeSteps:        s.NumTimeSteps,
		CollectionTime:   s.CollectionTime,
		Dynamics:         dynamics,
		Cadence:          cadence,
		SampleInterval:   s.SampleInterval,
	}

	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}

	return cfg, nil
}

// Validate checks the simulation parameters and the logging options.
func (f *File) Validate() error {
	cfg, err := f.RingConfig()
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if _, err := parseLevel(f.Logging.Level); err != nil {
		return err
	}

	switch strings.ToLower(f.Logging.Format) {
	case "", "text", "json":
		return nil
	default:
		return fmt.Errorf("config: unknown log format %q", f.Logging.Format)
	}
}

// NewLogger builds the slog logger described by the logging section.
func (l LoggingSection) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(l.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("config: unknown log level %q", s)
	}
}

// Marshal renders f as YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}
