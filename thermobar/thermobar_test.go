// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermobar

import (
	"bytes"
	"strings"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestNew(t *testing.T) {
	var b bytes.Buffer
	if _, err := New(&b, &Opts{X: 0, Max: physic.Kelvin}); err == nil {
		t.Error("New() with no cells should fail")
	}
	if _, err := New(&b, &Opts{X: 4, Min: physic.Kelvin, Max: physic.Kelvin}); err == nil {
		t.Error("New() with an empty range should fail")
	}
	d, err := New(&b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "ThermoBar" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestLit(t *testing.T) {
	d, err := New(&bytes.Buffer{}, &Opts{X: 10, Min: physic.ZeroCelsius, Max: physic.ZeroCelsius + 100*physic.Kelvin})
	if err != nil {
		t.Fatal(err)
	}
	var tests = []struct {
		t   physic.Temperature
		lit int
	}{
		{physic.ZeroCelsius - 10*physic.Kelvin, 0},
		{physic.ZeroCelsius, 0},
		{physic.ZeroCelsius + 9*physic.Kelvin, 0},
		{physic.ZeroCelsius + 25*physic.Kelvin, 2},
		{physic.ZeroCelsius + 50*physic.Kelvin, 5},
		{physic.ZeroCelsius + 100*physic.Kelvin, 10},
		{physic.ZeroCelsius + 150*physic.Kelvin, 10},
	}
	for _, test := range tests {
		if lit := d.Lit(test.t); lit != test.lit {
			t.Errorf("Lit(%s) = %d, want %d", test.t, lit, test.lit)
		}
	}
}

func TestShow(t *testing.T) {
	var b bytes.Buffer
	d, err := New(&b, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Show(physic.ZeroCelsius + 27*physic.Kelvin); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if !strings.HasPrefix(out, "\r\033[0m") {
		t.Errorf("Show() should start by returning the cursor: %q", out)
	}
	if !strings.HasSuffix(out, " 27°C ") {
		t.Errorf("Show() should end with the value: %q", out)
	}
	b.Reset()
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "\n\033[0m" {
		t.Errorf("Halt() wrote %q", b.String())
	}
}

func TestBlend(t *testing.T) {
	if c := blend(0, 10); c != cold {
		t.Errorf("blend(0) = %v, want %v", c, cold)
	}
	if c := blend(9, 10); c != hot {
		t.Errorf("blend(9) = %v, want %v", c, hot)
	}
	if c := blend(0, 1); c != hot {
		t.Errorf("blend() of a single cell = %v, want %v", c, hot)
	}
}
