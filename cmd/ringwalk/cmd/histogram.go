package cmd

import (
	"fmt"

	"github.com/sarchlab/ringwalk/analysis"
	"github.com/sarchlab/ringwalk/datarecording"
	"github.com/spf13/cobra"
)

func newHistogramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "histogram",
		Short: "Render the occupancy histogram of a stored run.",
		Long: "Loads a run from a database written by `run` and draws the " +
			"histogram of all recorded node occupancies. Without --run, the " +
			"stored runs are listed.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbFile, _ := cmd.Flags().GetString("db")
			runID, _ := cmd.Flags().GetString("run")
			width, _ := cmd.Flags().GetInt("width")

			if dbFile == "" {
				return fmt.Errorf("--db is required")
			}

			reader, err := datarecording.NewReader(dbFile)
			if err != nil {
				return err
			}
			defer reader.Close()

			datarecording.MapTables(reader)

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if runID == "" {
				runs, err := datarecording.ListRuns(ctx, reader)
				if err != nil {
					return err
				}

				for _, r := range runs {
					fmt.Fprintf(out, "%s\t%s\t%d nodes\t%d snapshots\tseed %d\n",
						r.RunID, r.Dynamics, r.NumNodes, r.Snapshots, r.Seed)
				}

				return nil
			}

			run, h, err := datarecording.ReadHistory(ctx, reader, runID)
			if err != nil {
				return err
			}

			printSummary(out, run.RunID, analysis.Summarize(h, run.Capacity))

			return analysis.NewHistogram(h.Flatten()).Render(out, width)
		},
	}

	cmd.Flags().String("db", "", "SQLite file written by run")
	cmd.Flags().String("run", "", "ID of the run to render")
	cmd.Flags().Int("width", 50, "Width of the histogram bars")

	return cmd
}
