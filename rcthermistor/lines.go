// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rcthermistor

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

// Direction is the fixed direction a line is requested with.
type Direction int

const (
	// Output lines are driven with Set.
	Output Direction = iota
	// Input lines are sampled with Get.
	Input

	// pending marks a line claimed but not configured yet.
	pending Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Output:
		return "Out"
	case Input:
		return "In"
	default:
		return "unknown"
	}
}

// Lines is a claim table for GPIO lines.
//
// A line must be requested with a direction before it can be driven or
// sampled, and a line can only be held by one requester at a time. It is safe
// for concurrent use.
type Lines struct {
	mu      sync.Mutex
	claimed map[string]Direction
}

// DefaultLines is the table used by New when Opts.Lines is nil.
var DefaultLines = &Lines{}

// Request claims p and configures it in direction dir. Output lines start low.
//
// If configuring the pin fails, the claim is dropped before returning.
func (l *Lines) Request(p gpio.PinIO, dir Direction) error {
	name := p.Name()
	l.mu.Lock()
	if _, ok := l.claimed[name]; ok {
		l.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrBusy, name)
	}
	if l.claimed == nil {
		l.claimed = make(map[string]Direction)
	}
	l.claimed[name] = pending
	l.mu.Unlock()

	var err error
	switch dir {
	case Output:
		err = p.Out(gpio.Low)
	case Input:
		err = p.In(gpio.PullNoChange, gpio.NoEdge)
	default:
		err = fmt.Errorf("rcthermistor: invalid direction %d", dir)
	}
	if err != nil {
		l.unclaim(name)
		return fmt.Errorf("rcthermistor: configuring %s as %s: %w", name, dir, err)
	}
	l.mu.Lock()
	if d, ok := l.claimed[name]; ok && d == pending {
		l.claimed[name] = dir
	}
	l.mu.Unlock()
	return nil
}

// Release unclaims p and halts it. Releasing a line that is not claimed does
// nothing, so unwinding a partial setup can release every line blindly.
func (l *Lines) Release(p gpio.PinIO) error {
	if !l.unclaim(p.Name()) {
		return nil
	}
	return p.Halt()
}

// Set drives p, which must be claimed as Output.
func (l *Lines) Set(p gpio.PinOut, level gpio.Level) error {
	if !l.holds(p.Name(), Output) {
		return fmt.Errorf("%w: %s as Out", ErrNotClaimed, p.Name())
	}
	return p.Out(level)
}

// Get samples p, which must be claimed as Input.
func (l *Lines) Get(p gpio.PinIn) (gpio.Level, error) {
	if !l.holds(p.Name(), Input) {
		return gpio.Low, fmt.Errorf("%w: %s as In", ErrNotClaimed, p.Name())
	}
	return p.Read(), nil
}

// Claimed reports whether the line called name is currently held.
func (l *Lines) Claimed(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.claimed[name]
	return ok
}

func (l *Lines) holds(name string, dir Direction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	d, ok := l.claimed[name]
	return ok && d == dir
}

func (l *Lines) unclaim(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.claimed[name]; !ok {
		return false
	}
	delete(l.claimed, name)
	return true
}
