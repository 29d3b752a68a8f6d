// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mqtt

import (
	"encoding/json"
	"time"

	"github.com/GermanBionicSystems/rcthermometer/rcthermistor"
)

// ReadingPayload is the JSON published on the state topic.
type ReadingPayload struct {
	DeviceID  string `json:"device_id"`
	Celsius   int64  `json:"celsius"`
	Ohms      int64  `json:"ohms"`
	ChargeNS  int64  `json:"charge_ns"`
	Timestamp string `json:"timestamp"`
}

// StatusPayload is the JSON published on the status topic.
type StatusPayload struct {
	Status    string `json:"status"`
	ClientID  string `json:"client_id"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"`
}

// EncodeReading returns the state payload for r taken at at.
func EncodeReading(deviceID string, r rcthermistor.Reading, at time.Time) ([]byte, error) {
	return json.Marshal(ReadingPayload{
		DeviceID:  deviceID,
		Celsius:   r.Degrees,
		Ohms:      r.Ohms,
		ChargeNS:  int64(r.Elapsed),
		Timestamp: at.UTC().Format(time.RFC3339Nano),
	})
}

func encodeStatus(status, clientID, reason string) string {
	b, _ := json.Marshal(StatusPayload{
		Status:    status,
		ClientID:  clientID,
		Reason:    reason,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	return string(b)
}
