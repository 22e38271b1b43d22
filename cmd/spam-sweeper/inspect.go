package main

import (
	"github.com/mikey/tweet-spam-sweeper/internal/adapters/review"
	"github.com/mikey/tweet-spam-sweeper/internal/config"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/di"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inspectFunc receives the loaded dataset of a read-only command
type inspectFunc func(cfg *config.Config, logger *zap.Logger, reporter *review.Reporter, ds core.Dataset) error

func runInspect(cmd *cobra.Command, bindings map[string]string, fn inspectFunc) error {
	cfg, err := loadConfig(cmd, bindings)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	container, err := di.BuildInspectContainer(ctx, cfg)
	if err != nil {
		return err
	}

	return container.Invoke(func(
		cfg *config.Config,
		logger *zap.Logger,
		loader core.DatasetLoader,
		reporter *review.Reporter,
	) error {
		defer logger.Sync()

		svc := core.NewSweepService(loader, nil, nil, nil, logger, core.DefaultDetectOptions())
		loaded, err := svc.Load(ctx, cfg.GetInput().Path)
		if err != nil {
			return err
		}
		return fn(cfg, logger, reporter, loaded.Dataset)
	})
}

func dailyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "daily <author>",
		Short: "Show how many tweets an author posted on each day",
		Args:  cobra.ExactArgs(1),
	}

	chart := cmd.Flags().Bool("chart", false, "also render an HTML bar chart")
	cmd.Flags().String("chart-dir", ".", "directory for rendered charts")
	bindings := map[string]string{"chart-dir": "review.chart_dir"}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		author := args[0]

		return runInspect(cmd, bindings, func(cfg *config.Config, logger *zap.Logger, reporter *review.Reporter, ds core.Dataset) error {
			counts := core.DailyCounts(ds, author)
			reporter.Daily(author, counts)

			if !*chart {
				return nil
			}
			dir := cfg.GetReview().ChartDir
			if dir == "" {
				dir = "."
			}
			path, err := review.WriteDailyChart(dir, author, counts)
			if err != nil {
				return err
			}
			logger.Info("Wrote daily chart", zap.String("author", author), zap.String("file", path))
			return nil
		})
	}

	return cmd
}

func sampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample <author> <date>",
		Short: "Show the texts an author posted most often on one day",
		Args:  cobra.ExactArgs(2),
	}

	modeFlag := cmd.Flags().String("mode", "head", "which end of the ranking to show (head, tail)")
	tail := cmd.Flags().Bool("tail", false, "shorthand for --mode tail")
	cmd.Flags().IntP("limit", "n", 5, "number of texts to show (0 for all)")
	bindings := map[string]string{"limit": "review.sample_limit"}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		author := args[0]
		day, err := core.ParseDay(args[1])
		if err != nil {
			return err
		}

		mode, err := core.ParseSampleMode(*modeFlag)
		if err != nil {
			return err
		}
		if *tail {
			mode = core.SampleTail
		}

		return runInspect(cmd, bindings, func(cfg *config.Config, _ *zap.Logger, reporter *review.Reporter, ds core.Dataset) error {
			samples := core.SampleContent(ds, author, day, mode, cfg.GetReview().SampleLimit)
			reporter.Samples(author, day, mode, samples)
			return nil
		})
	}

	return cmd
}
