// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rcthermistor reads a thermistor wired into an RC charge circuit on
// two GPIO lines.
//
// The charge line feeds the capacitor through the thermistor and the sense
// line goes high once the capacitor crosses the input threshold. The time it
// takes to get there is converted to a resistance and then to a temperature
// with an empirical, integer only fit that is only meaningful near room
// temperature.
//
// The device behaves like a read only character device: every Open triggers a
// fresh measurement and rewrites a small text buffer holding the temperature
// as "<degrees>\n", and each Session reads that buffer from its own cursor.
// Opens and reads from concurrent callers are serialized by a single lock,
// whose acquisition can be abandoned through a context.
//
// # Wiring
//
//	GPIO23 (charge) ──[thermistor]──┬── GPIO18 (sense)
//	                                │
//	                               [C]
//	                                │
//	                               GND
package rcthermistor
