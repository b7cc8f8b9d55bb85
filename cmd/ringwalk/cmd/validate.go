package cmd

import (
	"fmt"

	"github.com/sarchlab/ringwalk/config"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a configuration file without running it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")

			f, err := config.Load(path)
			if err != nil {
				return err
			}

			cfg, err := f.RingConfig()
			if err != nil {
				return err
			}

			cadence, err := cfg.EffectiveCadence()
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"ok: %d nodes, %d particles each, n_max=%d, "+
					"%d steps (collecting after %d), %s dynamics (%s), "+
					"%s recording\n",
				cfg.NumNodes, cfg.InitialOccupancy, cfg.Capacity,
				cfg.TimeSteps, cfg.CollectionTime, cfg.Dynamics,
				cfg.Dynamics.Strategy(), cadence)

			return nil
		},
	}

	cmd.Flags().String("config", "", "YAML configuration file")

	return cmd
}
