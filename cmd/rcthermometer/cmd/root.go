// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/rcthermometer/internal/config"
	"github.com/GermanBionicSystems/rcthermometer/internal/logging"
)

const version = "0.3.0"

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger = logging.Default()
)

var rootCmd = &cobra.Command{
	Use:   "rcthermometer",
	Short: "RC thermistor thermometer",
	Long: `Measure the temperature through an RC thermistor circuit wired to
GPIO23 (charge) and GPIO18 (sense), and forward the readings.

Examples:
  rcthermometer read                      # Take one reading and print it
  rcthermometer serve -c config.yaml      # Answer MQTT measurement requests
  rcthermometer history --limit 20        # Show the last stored readings`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			c.Logging.Level = "debug"
		}
		cfg = c
		logger = logging.New(cfg.Logging, version).With("device_id", cfg.Device.ID)
		return nil
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context, which abandons any wait for the device.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
