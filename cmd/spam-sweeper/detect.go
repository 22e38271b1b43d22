package main

import (
	"fmt"

	"github.com/mikey/tweet-spam-sweeper/internal/allowlist"
	"github.com/mikey/tweet-spam-sweeper/internal/config"
	"github.com/mikey/tweet-spam-sweeper/internal/core"
	"github.com/mikey/tweet-spam-sweeper/internal/di"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func detectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the authors that would be flagged as spammers",
		Args:  cobra.NoArgs,
	}

	bindings := addDetectFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd, bindings)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		container, err := di.BuildInspectContainer(ctx, cfg)
		if err != nil {
			return err
		}

		return container.Invoke(func(cfg *config.Config, logger *zap.Logger, loader core.DatasetLoader) error {
			defer logger.Sync()

			detect := cfg.GetDetect()
			opts, err := detect.DetectOptions()
			if err != nil {
				return err
			}

			svc := core.NewSweepService(loader, nil, nil, allowlist.NewChecker(detect.Allowlist, logger), logger, opts)
			loaded, err := svc.Load(ctx, cfg.GetInput().Path)
			if err != nil {
				return err
			}

			for _, author := range svc.Detect(loaded.Dataset).Authors() {
				fmt.Fprintln(cmd.OutOrStdout(), author)
			}
			return nil
		})
	}

	return cmd
}
