package main

import (
	"maps"

	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/di"
	"github.com/mikey/tweet-spam-sweeper/internal/factory"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Detect spammers, review them and save the export without their tweets",
		Args:  cobra.NoArgs,
	}

	bindings := addDetectFlags(cmd)
	cmd.Flags().StringP("output", "o", "", "where to write the cleaned export (default stdout for csv)")
	cmd.Flags().String("output-type", "csv", "output type (csv, sqlite, mysql, sheets, memory, none)")
	cmd.Flags().StringSlice("add", nil, "authors to add to the spammer list")
	cmd.Flags().StringSlice("remove", nil, "authors to remove from the spammer list")
	cmd.Flags().String("review", "auto", "review mode (auto, cli); cli needs an --input other than -")
	dryRun := cmd.Flags().Bool("dry-run", false, "report what would be removed without saving")

	maps.Copy(bindings, map[string]string{
		"output":      "output.path",
		"output-type": "output.type",
		"add":         "curate.add",
		"remove":      "curate.remove",
		"review":      "review.mode",
	})

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, bindings)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		container, err := di.BuildContainer(ctx, cfg)
		if err != nil {
			return err
		}

		return container.Invoke(func(
			logger *zap.Logger,
			svc *core.SweepService,
			sinks *factory.SinkFactory,
			reviews *factory.ReviewFactory,
		) error {
			defer logger.Sync()
			defer sinks.Close()

			curate := cfg.GetCurate()
			result, err := svc.Run(ctx, core.SweepRequest{
				Input:  cfg.GetInput().Path,
				Add:    curate.Add,
				Remove: curate.Remove,
				DryRun: *dryRun,
			})
			if err != nil {
				return err
			}

			reviews.CreateReporter().Summary(result)
			return nil
		})
	}

	return cmd
}
