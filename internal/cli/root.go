package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"os-scheduler-sim/config"
	"os-scheduler-sim/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
	debug      bool

	config *config.SchedulerConfig
	logger *zap.Logger
}

// NewRootCmd creates the root cobra command for schedsim.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "schedsim",
		Short: "Single-CPU scheduling simulator (fcfs, sjf, srtf, rr)",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.LogLevel = opts.logLevel
			}
			if opts.debug {
				cfg.LogLevel = "debug"
			}
			if opts.logFormat != "" {
				cfg.LogFormat = opts.logFormat
			}
			opts.config = cfg
			opts.logger = logging.NewLogger(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)
			zap.ReplaceGlobals(opts.logger)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ./config.yaml when present)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(opts),
		newCompareCmd(opts),
		newServeCmd(opts),
	)

	return root
}
