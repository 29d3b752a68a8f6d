// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rcthermometer is a thermometer built from a thermistor and a
// capacitor wired to two GPIO lines.
//
// The driver lives in package rcthermistor. thermobar and thermocard render a
// reading and cmd/rcthermometer is the command line front end.
package rcthermometer
