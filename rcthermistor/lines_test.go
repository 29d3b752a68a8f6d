// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rcthermistor

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// brokenPin refuses to be configured.
type brokenPin struct {
	*gpiotest.Pin
}

var errBroken = errors.New("broken pin")

func (p *brokenPin) Out(gpio.Level) error         { return errBroken }
func (p *brokenPin) In(gpio.Pull, gpio.Edge) error { return errBroken }

// hookPin runs during calls to Out, before the line is configured.
type hookPin struct {
	*gpiotest.Pin
	during func()
}

func (p *hookPin) Out(l gpio.Level) error {
	if f := p.during; f != nil {
		p.during = nil
		f()
	}
	return p.Pin.Out(l)
}

func TestLines_Request(t *testing.T) {
	l := &Lines{}
	out := &gpiotest.Pin{N: "GPIO23", Num: 23, L: gpio.High}
	if err := l.Request(out, Output); err != nil {
		t.Fatal(err)
	}
	if out.Read() != gpio.Low {
		t.Error("output line should start low")
	}
	if !l.Claimed("GPIO23") {
		t.Error("GPIO23 should be claimed")
	}
	if err := l.Request(out, Input); !errors.Is(err, ErrBusy) {
		t.Errorf("second Request() = %v, want ErrBusy", err)
	}
	if err := l.Release(out); err != nil {
		t.Fatal(err)
	}
	if l.Claimed("GPIO23") {
		t.Error("GPIO23 should be released")
	}
	if err := l.Request(out, Input); err != nil {
		t.Errorf("Request() after Release() = %v", err)
	}
}

func TestLines_RequestConfigureFails(t *testing.T) {
	l := &Lines{}
	p := &brokenPin{&gpiotest.Pin{N: "GPIO5"}}
	for _, dir := range []Direction{Output, Input} {
		if err := l.Request(p, dir); !errors.Is(err, errBroken) {
			t.Errorf("Request(%s) = %v, want %v", dir, err, errBroken)
		}
		if l.Claimed("GPIO5") {
			t.Errorf("failed Request(%s) kept the claim", dir)
		}
	}
}

func TestLines_RequestConfiguring(t *testing.T) {
	l := &Lines{}
	p := &hookPin{Pin: &gpiotest.Pin{N: "GPIO23"}}
	called := false
	p.during = func() {
		called = true
		if err := l.Set(p, gpio.High); !errors.Is(err, ErrNotClaimed) {
			t.Errorf("Set() while configuring = %v, want ErrNotClaimed", err)
		}
		if err := l.Request(p, Input); !errors.Is(err, ErrBusy) {
			t.Errorf("Request() while configuring = %v, want ErrBusy", err)
		}
		if !l.Claimed("GPIO23") {
			t.Error("line should be claimed while configuring")
		}
	}
	if err := l.Request(p, Output); err != nil {
		t.Fatal(err)
	}
	if !called {
		t.Fatal("Out() was not called")
	}
	if err := l.Set(p, gpio.High); err != nil {
		t.Errorf("Set() once configured = %v", err)
	}
	if p.Read() != gpio.High {
		t.Error("Set() did not drive the line")
	}
}

func TestLines_ReleaseUnclaimed(t *testing.T) {
	l := &Lines{}
	if err := l.Release(&brokenPin{&gpiotest.Pin{N: "GPIO6"}}); err != nil {
		t.Errorf("Release() of unclaimed line = %v", err)
	}
	if err := l.Release(&brokenPin{&gpiotest.Pin{N: "GPIO6"}}); err != nil {
		t.Errorf("second Release() = %v", err)
	}
}

func TestLines_Direction(t *testing.T) {
	l := &Lines{}
	out := &gpiotest.Pin{N: "GPIO23"}
	in := &gpiotest.Pin{N: "GPIO18", L: gpio.High}
	free := &gpiotest.Pin{N: "GPIO4"}
	if err := l.Request(out, Output); err != nil {
		t.Fatal(err)
	}
	if err := l.Request(in, Input); err != nil {
		t.Fatal(err)
	}

	if err := l.Set(out, gpio.High); err != nil {
		t.Error(err)
	}
	if out.Read() != gpio.High {
		t.Error("Set() did not drive the line")
	}
	if err := l.Set(in, gpio.High); !errors.Is(err, ErrNotClaimed) {
		t.Errorf("Set() on input = %v, want ErrNotClaimed", err)
	}
	if err := l.Set(free, gpio.High); !errors.Is(err, ErrNotClaimed) {
		t.Errorf("Set() on unclaimed = %v, want ErrNotClaimed", err)
	}

	if level, err := l.Get(in); err != nil || level != gpio.High {
		t.Errorf("Get() = %s, %v", level, err)
	}
	if _, err := l.Get(out); !errors.Is(err, ErrNotClaimed) {
		t.Errorf("Get() on output = %v, want ErrNotClaimed", err)
	}
}

func TestDirection_String(t *testing.T) {
	for d, want := range map[Direction]string{Output: "Out", Input: "In", 7: "unknown"} {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", int(d), got, want)
		}
	}
}
