// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mqtt

import "fmt"

// TopicPrefix is the root of every rcthermometer topic.
const TopicPrefix = "rcthermometer"

// Topics builds the topics of one device.
//
//	Topics{}.State("attic") // rcthermometer/attic/state
type Topics struct{}

// State is where readings are published, retained.
func (Topics) State(deviceID string) string {
	return fmt.Sprintf("%s/%s/state", TopicPrefix, deviceID)
}

// Measure is where measurement requests are received. The payload is
// ignored.
func (Topics) Measure(deviceID string) string {
	return fmt.Sprintf("%s/%s/measure", TopicPrefix, deviceID)
}

// Status carries the online/offline status, and the last will.
func (Topics) Status(deviceID string) string {
	return fmt.Sprintf("%s/%s/status", TopicPrefix, deviceID)
}
