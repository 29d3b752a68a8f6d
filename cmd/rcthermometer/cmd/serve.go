// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/GermanBionicSystems/rcthermometer/internal/mqtt"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Measure on MQTT request",
	Long: `Stay connected to the MQTT broker and take a reading every time a
message arrives on rcthermometer/<id>/measure. Each reading is published,
retained, on rcthermometer/<id>/state and forwarded to the other sinks.

Examples:
  rcthermometer serve -c /etc/rcthermometer.yaml
  mosquitto_pub -t rcthermometer/attic/measure -n`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	dev, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer dev.Halt()

	s := openSinks(ctx, cfg, logger)
	defer s.Close()
	if s.mqtt == nil {
		return errors.New("serve needs a reachable MQTT broker (mqtt.enabled)")
	}

	topic := mqtt.Topics{}.Measure(cfg.Device.ID)
	err = s.mqtt.Subscribe(topic, byte(cfg.MQTT.QoS), func(string, []byte) error {
		m, err := measure(ctx, dev)
		if err != nil {
			return err
		}
		s.record(ctx, m)
		return nil
	})
	if err != nil {
		return err
	}
	logger.Info("serving", "topic", topic, "device", dev.String())
	<-ctx.Done()
	logger.Info("shutting down")
	return nil
}
