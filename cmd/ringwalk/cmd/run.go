package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/sarchlab/ringwalk/analysis"
	"github.com/sarchlab/ringwalk/config"
	"github.com/sarchlab/ringwalk/datarecording"
	"github.com/sarchlab/ringwalk/idgen"
	"github.com/sarchlab/ringwalk/simulation"
	"github.com/spf13/cobra"
	"github.com/syifan/goseth"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and store its occupancy history.",
		RunE:  runSimulation,
	}

	cmd.Flags().String("config", "", "YAML configuration file")
	cmd.Flags().String("db", "",
		"SQLite file name without the .sqlite3 suffix")
	cmd.Flags().Int64("seed", 0, "Seed of the random direction source")
	cmd.Flags().Bool("record-moves", false,
		"Also store every move attempt after the collection time")
	cmd.Flags().Bool("dump", false,
		"Print the scheduler state after the run")
	cmd.Flags().Int("width", 50, "Width of the histogram bars")

	return cmd
}

func runSimulation(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")

	f, err := config.Load(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		f.Simulation.Seed = &seed
	}

	if cmd.Flags().Changed("db") {
		f.Output.Database, _ = cmd.Flags().GetString("db")
	}

	if recordMoves, _ := cmd.Flags().GetBool("record-moves"); recordMoves {
		f.Output.RecordMoves = true
	}

	logger := f.Logging.NewLogger(cmd.ErrOrStderr())

	if f.Simulation.Seed == nil {
		seed := time.Now().UnixNano()
		f.Simulation.Seed = &seed
		logger.Info("no seed configured", slog.Int64("seed", seed))
	}

	cfg, err := f.RingConfig()
	if err != nil {
		return err
	}

	runID := idgen.NewXID().Generate()

	dbName := f.Output.Database
	if dbName == "" {
		dbName = "ringwalk_" + runID
	}

	recorder, err := datarecording.New(dbName)
	if err != nil {
		return err
	}

	b := simulation.MakeBuilder().
		WithConfig(cfg).
		WithRunID(runID).
		WithDataRecorder(recorder).
		WithLogger(logger)
	if f.Output.RecordMoves {
		b = b.WithMoveRecording()
	}

	sim, err := b.Build()
	if err != nil {
		return closeAfter(err, recorder.Close)
	}

	h, err := sim.Run()
	if err != nil {
		return closeAfter(err, sim.Terminate)
	}

	if err := sim.Terminate(); err != nil {
		return err
	}

	logger.Info("results stored",
		slog.String("run", runID),
		slog.String("database", dbName+".sqlite3"))

	out := cmd.OutOrStdout()
	width, _ := cmd.Flags().GetInt("width")

	printSummary(out, sim.ID(), analysis.Summarize(h, cfg.Capacity))

	if err := analysis.NewHistogram(h.Flatten()).Render(out, width); err != nil {
		return err
	}

	if dump, _ := cmd.Flags().GetBool("dump"); dump {
		if err := dumpScheduler(out, sim); err != nil {
			return err
		}
	}

	reportResources(logger)

	return nil
}

// closeAfter releases a resource after err and reports both failures.
func closeAfter(err error, closeFn func() error) error {
	return errors.Join(err, closeFn())
}

func printSummary(w io.Writer, runID string, s analysis.Summary) {
	fmt.Fprintf(w, "run %s: %d snapshots of %d nodes, %d particles\n",
		runID, s.Snapshots, s.Nodes, s.Particles)
	fmt.Fprintf(w, "conserved=%t min=%d max=%d over_capacity=%d\n",
		s.Conserved, s.MinOccupancy, s.MaxOccupancy, s.OverCapacity)
	fmt.Fprintf(w, "mean=%.4f variance=%.4f\n", s.Mean, s.Variance)
}

func dumpScheduler(w io.Writer, sim *simulation.Simulation) error {
	serializer := goseth.NewSerializer()
	serializer.SetRoot(sim.Scheduler())
	serializer.SetMaxDepth(1)

	if err := serializer.Serialize(w); err != nil {
		return fmt.Errorf("dumping scheduler: %w", err)
	}

	fmt.Fprintln(w)

	return nil
}

func reportResources(logger *slog.Logger) {
	usage, err := currentResources(os.Getpid())
	if err != nil {
		logger.Warn("resource usage unavailable", slog.Any("err", err))
		return
	}

	logger.Info("resources",
		slog.Float64("cpu_percent", usage.CPUPercent),
		slog.Uint64("memory_rss", usage.MemorySize),
	)
}
