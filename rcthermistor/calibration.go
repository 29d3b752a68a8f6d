// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rcthermistor

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/physic"
)

// Reading is one converted measurement.
type Reading struct {
	// Elapsed is the time the sense line took to go high.
	Elapsed time.Duration
	// Ohms is the thermistor resistance derived from Elapsed.
	Ohms int64
	// Degrees is the temperature in °C derived from Ohms.
	Degrees int64
}

// Convert runs elapsed through TimeToResistance and ResistanceToTemperature.
func Convert(elapsed time.Duration) Reading {
	ohms := TimeToResistance(int64(elapsed))
	return Reading{Elapsed: elapsed, Ohms: ohms, Degrees: ResistanceToTemperature(ohms)}
}

// TimeToResistance returns the thermistor resistance in ohms for a charge time
// in nanoseconds.
//
// The fit was measured on a single board; it is not a thermistor model.
func TimeToResistance(elapsedNS int64) int64 {
	return elapsedNS/10 + 600
}

// ResistanceToTemperature returns the temperature in whole °C for a
// resistance in ohms.
//
// Both divisions truncate toward zero. The curve is a straight line fitted
// around room temperature and drifts quickly away from it.
func ResistanceToTemperature(ohms int64) int64 {
	relative := ohms / 10
	return (relative*-10 + 22705) / 463
}

// Resistance returns Ohms as a physic value.
func (r Reading) Resistance() physic.ElectricResistance {
	return physic.ElectricResistance(r.Ohms) * physic.Ohm
}

// Temperature returns Degrees as a physic value.
func (r Reading) Temperature() physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(r.Degrees)*physic.Kelvin
}

func (r Reading) String() string {
	return fmt.Sprintf("%d°C (%s, %s)", r.Degrees, r.Resistance(), r.Elapsed)
}
