// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rcthermistor

import "errors"

var (
	// ErrBusy is returned when a GPIO line is already claimed.
	ErrBusy = errors.New("rcthermistor: gpio line busy")
	// ErrNotClaimed is returned when a line is driven or sampled without being
	// requested in the matching direction first.
	ErrNotClaimed = errors.New("rcthermistor: gpio line not claimed")
	// ErrPermission is returned when a write-only session attempts a read.
	ErrPermission = errors.New("rcthermistor: operation not permitted")
	// ErrReadOnly is returned by every write.
	ErrReadOnly = errors.New("rcthermistor: device is read only")
	// ErrInterrupted is returned when waiting for the device lock was
	// abandoned. Nothing changed and the call may be retried.
	ErrInterrupted = errors.New("rcthermistor: interrupted while waiting for device")
	// ErrTimeout is returned when the sense line never crossed the threshold
	// within Opts.Timeout.
	ErrTimeout = errors.New("rcthermistor: timed out waiting for threshold crossing")
	// ErrHalted is returned once the device has been halted.
	ErrHalted = errors.New("rcthermistor: device halted")
)
