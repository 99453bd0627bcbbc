package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jonoton/go-messenger/example/numberlog/internal/app"
	"github.com/jonoton/go-messenger/example/numberlog/internal/config"
	"github.com/jonoton/go-messenger/example/numberlog/internal/logging"
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "numberlog",
	Short: "Number change log demo for go-messenger",
	Long: `numberlog keeps a number, a change log that records every change of the
number, and status views that count the log lines. None of them refer to
each other: they talk through one messenger.Messenger and are held weakly.

Configuration is read from the environment and optional .env files:
  LOG_FORMAT        text or json
  LOG_LEVEL         debug, info, warn or error
  MESSENGER_VERIFY  check callback signatures at registration
  NUMBERLOG_START   initial value of the number`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default .env)")
}

// setup loads configuration and wires the application for a subcommand.
func setup(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load(envFiles...)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("start") {
		cfg.Start, _ = cmd.Flags().GetInt("start")
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)
	return app.New(cfg, logger)
}
