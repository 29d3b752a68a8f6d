// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readRaw bool

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Take one reading and print it",
	Long: `Open the thermometer, which triggers a measurement, and print what the
device returns. The reading is also forwarded to every enabled sink.

Examples:
  rcthermometer read
  rcthermometer read --raw   # also print resistance and charge time`,
	RunE: runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readRaw, "raw", false, "print resistance and charge time too")
	rootCmd.AddCommand(readCmd)
}

func runRead(cmd *cobra.Command, args []string) error {
	dev, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer dev.Halt()

	m, err := measure(cmd.Context(), dev)
	if err != nil {
		return err
	}
	s := openSinks(cmd.Context(), cfg, logger)
	defer s.Close()
	s.record(cmd.Context(), m)

	out := cmd.OutOrStdout()
	if readRaw {
		fmt.Fprintf(out, "%s\n", m.Reading)
		return nil
	}
	fmt.Fprint(out, m.Text)
	return nil
}
