package cmd

import (
	"fmt"
	"os"

	"remote-controller/core/config"
	"remote-controller/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var configPath string

// RootCmd runs the listener when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "remote-controller",
	Short: "Wake-on-LAN remote controller",
	Long: `Remote Controller listens for tiny HTTP-like requests on a raw TCP socket
and broadcasts a Wake-on-LAN magic packet to a configured machine on POST /turn_on.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context(), configPath)
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// loadConfig loads the file named by --config and builds its logger.
func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logg, nil
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the configuration file")
	_ = RootCmd.MarkPersistentFlagRequired("config")
}
