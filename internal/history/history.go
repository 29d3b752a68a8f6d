// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package history keeps past thermometer readings in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/GermanBionicSystems/rcthermometer/internal/config"
	"github.com/GermanBionicSystems/rcthermometer/rcthermistor"
)

const (
	dirPermissions    = 0750
	msPerSecond       = 1000
	connectionTimeout = 5 * time.Second
)

// ErrDisabled is returned by Open when the history is turned off.
var ErrDisabled = errors.New("history: disabled in configuration")

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	device_id   TEXT    NOT NULL,
	taken_at    INTEGER NOT NULL,
	charge_ns   INTEGER NOT NULL,
	ohms        INTEGER NOT NULL,
	celsius     INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS readings_device_taken ON readings(device_id, taken_at);
`

// Entry is one stored reading.
type Entry struct {
	DeviceID string
	At       time.Time
	Reading  rcthermistor.Reading
}

// Store is a reading history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens, creating it if needed, the database at cfg.Path.
func Open(cfg config.DatabaseConfig) (*Store, error) {
	if !cfg.Enabled {
		return nil, ErrDisabled
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Path), dirPermissions); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}
	connStr := fmt.Sprintf("file:%s?_busy_timeout=%d&_journal_mode=WAL&_synchronous=NORMAL",
		cfg.Path, cfg.BusyTimeout*msPerSecond)
	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// SQLite only supports one writer.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close() //nolint:errcheck // Best effort cleanup on error path
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db, path: cfg.Path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Record stores r for deviceID.
func (s *Store) Record(ctx context.Context, deviceID string, r rcthermistor.Reading, at time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO readings (device_id, taken_at, charge_ns, ohms, celsius) VALUES (?, ?, ?, ?, ?)`,
		deviceID, at.UnixNano(), int64(r.Elapsed), r.Ohms, r.Degrees)
	if err != nil {
		return fmt.Errorf("recording reading: %w", err)
	}
	return nil
}

// Recent returns up to limit readings of deviceID, newest first.
func (s *Store) Recent(ctx context.Context, deviceID string, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT taken_at, charge_ns, ohms, celsius FROM readings
		 WHERE device_id = ? ORDER BY taken_at DESC, id DESC LIMIT ?`,
		deviceID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying readings: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var takenAt, chargeNS int64
		e := Entry{DeviceID: deviceID}
		if err := rows.Scan(&takenAt, &chargeNS, &e.Reading.Ohms, &e.Reading.Degrees); err != nil {
			return nil, fmt.Errorf("scanning reading: %w", err)
		}
		e.At = time.Unix(0, takenAt).UTC()
		e.Reading.Elapsed = time.Duration(chargeNS)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating readings: %w", err)
	}
	return entries, nil
}

// HealthCheck verifies the database answers.
func (s *Store) HealthCheck(ctx context.Context) error {
	var result int
	if err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&result); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
