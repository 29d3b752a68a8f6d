// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// rcthermometer reads the RC thermistor thermometer and forwards readings to
// MQTT, InfluxDB and a local SQLite history.
package main

import "github.com/GermanBionicSystems/rcthermometer/cmd/rcthermometer/cmd"

func main() {
	cmd.Execute()
}
