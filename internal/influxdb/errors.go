// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package influxdb

import "errors"

var (
	// ErrDisabled is returned by Connect when InfluxDB is turned off.
	ErrDisabled = errors.New("influxdb: disabled in configuration")
	// ErrConnectionFailed is returned when the server cannot be reached.
	ErrConnectionFailed = errors.New("influxdb: connection failed")
	// ErrNotConnected is returned after Close.
	ErrNotConnected = errors.New("influxdb: client not connected")
)
