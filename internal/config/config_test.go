// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
device:
  id: "greenhouse"
  timeout_ms: 250
mqtt:
  enabled: true
  broker:
    host: "broker.local"
    port: 1883
  qos: 2
database:
  enabled: true
  path: "/tmp/readings.db"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Device.ID != "greenhouse" {
		t.Errorf("Device.ID = %q, want %q", cfg.Device.ID, "greenhouse")
	}
	if cfg.Timeout() != 250*time.Millisecond {
		t.Errorf("Timeout() = %s, want 250ms", cfg.Timeout())
	}
	if cfg.MQTT.Broker.Host != "broker.local" || cfg.MQTT.QoS != 2 {
		t.Errorf("MQTT = %+v", cfg.MQTT)
	}
	// Untouched sections keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.InfluxDB.Enabled {
		t.Error("InfluxDB should stay disabled")
	}
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Device.ID != "rcthermometer" {
		t.Errorf("Device.ID = %q", cfg.Device.ID)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/path/config.yaml"); err == nil {
		t.Error("Load() expected error for missing file, got nil")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	if _, err := Load(writeConfig(t, "invalid: [yaml: content")); err == nil {
		t.Error("Load() expected error for invalid YAML, got nil")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, `
device:
  id: ""
  timeout_ms: 0
mqtt:
  enabled: true
  qos: 5
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() expected validation error, got nil")
	}
	for _, want := range []string{"device.id", "device.timeout_ms", "mqtt.qos"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RCTHERM_DEVICE_ID", "attic")
	t.Setenv("RCTHERM_DEVICE_TIMEOUT_MS", "-1")
	t.Setenv("RCTHERM_MQTT_HOST", "mqtt.example")
	t.Setenv("RCTHERM_DATABASE_PATH", "/var/lib/rcthermometer.db")

	cfg, err := Load(writeConfig(t, "device:\n  id: \"file\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Device.ID != "attic" {
		t.Errorf("Device.ID = %q, want %q", cfg.Device.ID, "attic")
	}
	if cfg.Timeout() >= 0 {
		t.Errorf("Timeout() = %s, want negative", cfg.Timeout())
	}
	if cfg.MQTT.Broker.Host != "mqtt.example" {
		t.Errorf("MQTT.Broker.Host = %q", cfg.MQTT.Broker.Host)
	}
	if cfg.Database.Path != "/var/lib/rcthermometer.db" {
		t.Errorf("Database.Path = %q", cfg.Database.Path)
	}
}

func TestLoad_BadEnvTimeout(t *testing.T) {
	t.Setenv("RCTHERM_DEVICE_TIMEOUT_MS", "soon")
	if _, err := Load(""); err == nil {
		t.Error("Load() expected error for a non numeric timeout")
	}
}
