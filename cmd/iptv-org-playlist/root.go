package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alorle/iptv-org-playlist/config"
	"github.com/alorle/iptv-org-playlist/logging"
)

type flags struct {
	configPath      string
	output          string
	logLevel        string
	logFormat       string
	schedule        string
	metricsTextfile string
	timeout         string
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "iptv-org-playlist",
		Short: "Build an M3U playlist from the iptv-org channel, stream and logo datasets",
		Long: `Downloads channels.json, streams.json and logos.json from the iptv-org API,
joins them by channel id and writes an extended M3U playlist sorted by name.

Without --schedule the playlist is generated once and the command exits
with a non-zero status on failure. With --schedule it is generated at start
and then on every tick of the cron expression until interrupted.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			logger := logging.New(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, cmd.ErrOrStderr())
			logger.Info("starting iptv-org-playlist", cfg.LogAttrs()...)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a := newApp(cfg, logger)
			if cfg.Schedule.Cron != "" {
				return a.runScheduled(ctx, cfg.Schedule.Cron)
			}
			return a.runOnce(ctx)
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a YAML config file (default $CONFIG_FILE or config.yaml)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "playlist file to write")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "json or text")
	cmd.Flags().StringVar(&f.schedule, "schedule", "", "cron expression to regenerate the playlist periodically")
	cmd.Flags().StringVar(&f.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after every run")
	cmd.Flags().StringVar(&f.timeout, "timeout", "", "HTTP timeout per dataset download (e.g. 30s)")

	return cmd
}

// loadConfig reads the config file and environment, then applies the flags
// that were set explicitly on the command line before validating.
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	changed := cmd.Flags().Changed

	return config.LoadWithOverrides(f.configPath, func(cfg *config.Config) error {
		if changed("output") {
			cfg.Output.Path = f.output
		}
		if changed("log-level") {
			cfg.Log.Level = strings.ToUpper(f.logLevel)
		}
		if changed("log-format") {
			cfg.Log.Format = strings.ToLower(f.logFormat)
		}
		if changed("schedule") {
			cfg.Schedule.Cron = f.schedule
		}
		if changed("metrics-textfile") {
			cfg.Metrics.Textfile = f.metricsTextfile
		}
		if changed("timeout") {
			timeout, err := time.ParseDuration(f.timeout)
			if err != nil {
				return fmt.Errorf("invalid --timeout: %w", err)
			}
			cfg.HTTP.Timeout = timeout
		}
		return nil
	})
}
