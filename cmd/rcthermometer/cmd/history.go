// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/rcthermometer/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored readings",
	Long: `List the most recent readings kept in the SQLite history, newest
first. The history must be enabled in the configuration.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "number of readings to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	st, err := history.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer st.Close()
	entries, err := st.Recent(cmd.Context(), cfg.Device.ID, historyLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %4d°C  %6dΩ  %s\n", e.At.Local().Format(time.DateTime), e.Reading.Degrees, e.Reading.Ohms, e.Reading.Elapsed)
	}
	return nil
}
