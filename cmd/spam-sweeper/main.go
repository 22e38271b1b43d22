package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mikey/tweet-spam-sweeper/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "spam-sweeper",
		Short: "Detect and remove high-volume posters from a tweet export",
		Long: `spam-sweeper flags authors who post at least a threshold number of
tweets on any single day, lets you correct that list, and writes the export
back without their tweets.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log at debug level regardless of --log-level")
	rootCmd.PersistentFlags().StringP("input", "i", "", "tweet export to read (path, - for stdin, or s3://bucket/key)")

	rootCmd.AddCommand(sweepCmd())
	rootCmd.AddCommand(detectCmd())
	rootCmd.AddCommand(dailyCmd())
	rootCmd.AddCommand(sampleCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads .env and the config file, then binds the command's flags
// so that explicitly set flags override file and environment values
func loadConfig(cmd *cobra.Command, bindings map[string]string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	var (
		cfg *config.Config
		err error
	)
	if cfgFile != "" {
		cfg, err = config.NewFromFile(cfgFile)
	} else {
		cfg, err = config.New()
	}
	if err != nil {
		return nil, err
	}

	common := map[string]string{
		"log-level":  "logging.level",
		"log-format": "logging.format",
		"verbose":    "logging.verbose",
		"input":      "input.path",
	}
	for _, b := range []map[string]string{common, bindings} {
		for name, key := range b {
			if err := cfg.GetViper().BindPFlag(key, cmd.Flags().Lookup(name)); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	return cfg, nil
}

// addDetectFlags registers the flags shared by sweep and detect
func addDetectFlags(cmd *cobra.Command) map[string]string {
	cmd.Flags().IntP("threshold", "t", 10, "posts per day at which an author is flagged")
	cmd.Flags().String("from", "", "first day to scan (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "last day to scan (YYYY-MM-DD)")
	cmd.Flags().StringSlice("allow", nil, "authors that are never flagged")

	return map[string]string{
		"threshold": "detect.threshold",
		"from":      "detect.from",
		"to":        "detect.to",
		"allow":     "detect.allowlist",
	}
}
