// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/rcthermometer/thermobar"
	"github.com/GermanBionicSystems/rcthermometer/thermocard"
)

var cardPath string

var gaugeCmd = &cobra.Command{
	Use:   "gauge",
	Short: "Take one reading and draw it as a coloured bar",
	RunE:  runGauge,
}

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Take one reading and render it to a PNG file",
	Long: `Take one reading and render it as a small PNG card showing the
temperature, the thermistor resistance and the charge time.

Examples:
  rcthermometer card -o /var/www/thermometer.png`,
	RunE: runCard,
}

func init() {
	cardCmd.Flags().StringVarP(&cardPath, "output", "o", "rcthermometer.png", "PNG file to write")
	rootCmd.AddCommand(gaugeCmd)
	rootCmd.AddCommand(cardCmd)
}

func runGauge(cmd *cobra.Command, args []string) error {
	dev, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer dev.Halt()
	m, err := measure(cmd.Context(), dev)
	if err != nil {
		return err
	}
	bar, err := thermobar.NewStdout(nil)
	if err != nil {
		return err
	}
	defer bar.Halt()
	return bar.Show(m.Reading.Temperature())
}

func runCard(cmd *cobra.Command, args []string) error {
	dev, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer dev.Halt()
	m, err := measure(cmd.Context(), dev)
	if err != nil {
		return err
	}
	if err := thermocard.SavePNG(cardPath, m.Reading, nil); err != nil {
		return err
	}
	logger.Info("card written", "path", cardPath, "celsius", m.Reading.Degrees)
	return nil
}
