// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/rcthermometer/internal/config"
	"github.com/GermanBionicSystems/rcthermometer/internal/history"
	"github.com/GermanBionicSystems/rcthermometer/internal/influxdb"
	"github.com/GermanBionicSystems/rcthermometer/internal/logging"
	"github.com/GermanBionicSystems/rcthermometer/internal/mqtt"
	"github.com/GermanBionicSystems/rcthermometer/rcthermistor"
)

// openDevice initializes periph and claims the thermistor lines.
func openDevice(cfg *config.Config) (*rcthermistor.Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}
	charge := gpioreg.ByName(rcthermistor.DefaultChargePin)
	if charge == nil {
		return nil, fmt.Errorf("pin %s not found", rcthermistor.DefaultChargePin)
	}
	sense := gpioreg.ByName(rcthermistor.DefaultSensePin)
	if sense == nil {
		return nil, fmt.Errorf("pin %s not found", rcthermistor.DefaultSensePin)
	}
	return rcthermistor.New(charge, sense, &rcthermistor.Opts{Timeout: cfg.Timeout()})
}

const healthTimeout = 5 * time.Second

// measurement is one open of the device and everything read from it.
type measurement struct {
	Reading rcthermistor.Reading
	Text    string
	At      time.Time
}

// measure opens the device, which takes a reading, and reads the text back.
func measure(ctx context.Context, dev *rcthermistor.Dev) (measurement, error) {
	s, err := dev.Open(ctx, rcthermistor.ReadOnly)
	if err != nil {
		return measurement{}, err
	}
	defer s.Close()
	at := time.Now()
	var text []byte
	b := make([]byte, rcthermistor.BufferSize)
	for {
		n, err := s.ReadContext(ctx, b)
		if err != nil {
			return measurement{}, err
		}
		if n == 0 {
			break
		}
		text = append(text, b[:n]...)
	}
	return measurement{Reading: s.Reading(), Text: string(text), At: at}, nil
}

// sinks are the enabled destinations of the readings.
type sinks struct {
	deviceID string
	log      *logging.Logger
	mqtt     *mqtt.Client
	influx   *influxdb.Client
	history  *history.Store
}

// openSinks connects every enabled sink. A sink that fails to connect or to
// answer a health check is reported and left out; a disabled one is skipped
// silently.
func openSinks(ctx context.Context, cfg *config.Config, log *logging.Logger) *sinks {
	s := &sinks{deviceID: cfg.Device.ID, log: log}
	if c, err := mqtt.Connect(cfg.MQTT, cfg.Device.ID); err == nil {
		c.SetLogger(log.With("component", "mqtt"))
		s.mqtt = c
	} else if !errors.Is(err, mqtt.ErrDisabled) {
		log.Warn("mqtt unavailable", "error", err)
	}

	hctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()
	if c, err := influxdb.Connect(cfg.InfluxDB); err == nil {
		if err := c.HealthCheck(hctx); err != nil {
			log.Warn("influxdb unhealthy", "error", err)
			c.Close()
		} else {
			l := log.With("component", "influxdb")
			c.SetOnError(func(err error) { l.Warn("write failed", "error", err) })
			s.influx = c
		}
	} else if !errors.Is(err, influxdb.ErrDisabled) {
		log.Warn("influxdb unavailable", "error", err)
	}
	if st, err := history.Open(cfg.Database); err == nil {
		if err := st.HealthCheck(hctx); err != nil {
			log.Warn("history unhealthy", "path", st.Path(), "error", err)
			st.Close()
		} else {
			log.Debug("history enabled", "path", st.Path())
			s.history = st
		}
	} else if !errors.Is(err, history.ErrDisabled) {
		log.Warn("history unavailable", "error", err)
	}
	return s
}

// record forwards m to every sink. Failures are logged and do not stop the
// other sinks.
func (s *sinks) record(ctx context.Context, m measurement) {
	s.log.Debug("reading", "celsius", m.Reading.Degrees, "ohms", m.Reading.Ohms, "charge", m.Reading.Elapsed)
	if s.mqtt != nil {
		payload, err := mqtt.EncodeReading(s.deviceID, m.Reading, m.At)
		if err == nil {
			err = s.mqtt.PublishState(payload)
		}
		if err != nil {
			s.log.Warn("publishing reading", "error", err)
		}
	}
	if s.influx != nil {
		s.influx.WriteReading(s.deviceID, m.Reading, m.At)
	}
	if s.history != nil {
		if err := s.history.Record(ctx, s.deviceID, m.Reading, m.At); err != nil {
			s.log.Warn("storing reading", "error", err)
		}
	}
}

func (s *sinks) Close() error {
	var errs []error
	if s.mqtt != nil {
		errs = append(errs, s.mqtt.Close())
	}
	if s.influx != nil {
		errs = append(errs, s.influx.Close())
	}
	if s.history != nil {
		errs = append(errs, s.history.Close())
	}
	return errors.Join(errs...)
}

var _ io.Closer = &sinks{}
