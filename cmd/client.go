package cmd

import (
	"fmt"

	"remote-controller/core/client"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pingCmd checks that a listener is up
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the remote controller answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logg.Sync()

		c := client.New(cfg.Client, cfg.ClientAddress())
		body, err := c.Ping(cmd.Context())
		if err != nil {
			return fmt.Errorf("ping %s: %w", c.Address, err)
		}

		logg.Debug("Ping answered", zap.String("addr", c.Address))
		fmt.Fprintln(cmd.OutOrStdout(), body)
		return nil
	},
}

// turnOnCmd asks the listener to wake the configured machine
var turnOnCmd = &cobra.Command{
	Use:   "turn-on",
	Short: "Ask the remote controller to wake the configured machine",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logg.Sync()

		c := client.New(cfg.Client, cfg.ClientAddress())
		if err := c.TurnOn(cmd.Context()); err != nil {
			return fmt.Errorf("turn on via %s: %w", c.Address, err)
		}

		logg.Info("Wake request accepted", zap.String("addr", c.Address))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(pingCmd)
	RootCmd.AddCommand(turnOnCmd)
}
