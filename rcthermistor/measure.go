// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rcthermistor

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Sample is the raw timing of one charge cycle.
type Sample struct {
	// Start is taken right before the charge line goes high.
	Start time.Time
	// End is taken right after the sense line was seen high.
	End time.Time
}

// Elapsed is End-Start, measured on the monotonic clock.
func (s Sample) Elapsed() time.Duration {
	return s.End.Sub(s.Start)
}

// measure discharges the capacitor, charges it through the thermistor and
// times how long the sense line takes to go high. The charge line is left low
// on every return path.
//
// Must be called with d.sem held.
func (d *Dev) measure() (Sample, error) {
	if err := d.lines.Set(d.charge, gpio.Low); err != nil {
		return Sample{}, err
	}
	sleep(SettleDelay)

	// The claim on the sense line is checked once so the loop below only
	// samples the pin.
	if _, err := d.lines.Get(d.sense); err != nil {
		return Sample{}, err
	}

	var s Sample
	s.Start = now()
	if err := d.lines.Set(d.charge, gpio.High); err != nil {
		return Sample{}, d.discharge(err)
	}
	if d.opts.Timeout < 0 {
		// No way out of this loop if the circuit never reaches the threshold.
		for d.sense.Read() != gpio.High {
		}
	} else {
		for d.sense.Read() != gpio.High {
			if now().Sub(s.Start) > d.opts.Timeout {
				return Sample{}, d.discharge(fmt.Errorf("%w after %s", ErrTimeout, d.opts.Timeout))
			}
		}
	}
	s.End = now()
	return s, d.discharge(nil)
}

// discharge drives the charge line low and returns err, or the drive error if
// err is nil.
func (d *Dev) discharge(err error) error {
	if err2 := d.lines.Set(d.charge, gpio.Low); err == nil {
		err = err2
	}
	return err
}

var (
	sleep = time.Sleep
	now   = time.Now
)
