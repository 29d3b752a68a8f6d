// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermobar draws a temperature as a coloured bar on a terminal using
// ANSI color codes.
//
// Cold readings light a few blue cells, hot readings fill the bar up to red.
package thermobar

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for the bar.
type Opts struct {
	// X is the number of cells.
	X int
	// Min and Max are the temperatures mapped to an empty and to a full bar.
	Min physic.Temperature
	Max physic.Temperature
	// Palette defaults to ansi256.Default.
	Palette *ansi256.Palette

	_ struct{}
}

// DefaultOpts covers 0°C to 50°C over 25 cells.
var DefaultOpts = Opts{
	X:   25,
	Min: physic.ZeroCelsius,
	Max: physic.ZeroCelsius + 50*physic.Kelvin,
}

var (
	cold  = color.NRGBA{0x20, 0x40, 0xff, 0xff}
	hot   = color.NRGBA{0xff, 0x20, 0x10, 0xff}
	unlit = color.NRGBA{0x30, 0x30, 0x30, 0xff}
)

// Dev is a temperature bar printed to a terminal.
type Dev struct {
	w       io.Writer
	opts    Opts
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that prints to w.
func New(w io.Writer, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.X <= 0 {
		return nil, errors.New("thermobar: X must be positive")
	}
	if opts.Max <= opts.Min {
		return nil, errors.New("thermobar: Max must be above Min")
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	return &Dev{w: w, opts: *opts, palette: *p}, nil
}

// NewStdout returns a Dev that prints to the console, translating the escape
// codes on Windows.
func NewStdout(opts *Opts) (*Dev, error) {
	return New(colorable.NewColorableStdout(), opts)
}

func (d *Dev) String() string {
	return "ThermoBar"
}

// Halt implements conn.Resource.
//
// It resets the colors so the terminal is not left tinted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Lit returns how many cells t lights up, clamped to the bar.
func (d *Dev) Lit(t physic.Temperature) int {
	if t <= d.opts.Min {
		return 0
	}
	if t >= d.opts.Max {
		return d.opts.X
	}
	return int(int64(t-d.opts.Min) * int64(d.opts.X) / int64(d.opts.Max-d.opts.Min))
}

// Show redraws the bar in place for t.
func (d *Dev) Show(t physic.Temperature) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	lit := d.Lit(t)
	for i := 0; i < d.opts.X; i++ {
		c := unlit
		if i < lit {
			c = blend(i, d.opts.X)
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(c))
	}
	_, _ = fmt.Fprintf(&d.buf, "\033[0m %.0f°C ", t.Celsius())
	_, err := d.buf.WriteTo(d.w)
	return err
}

// blend returns the color of cell i out of n, from cold to hot.
func blend(i, n int) color.NRGBA {
	if n < 2 {
		return hot
	}
	mix := func(a, b uint8) uint8 {
		return uint8((int(a)*(n-1-i) + int(b)*i) / (n - 1))
	}
	return color.NRGBA{mix(cold.R, hot.R), mix(cold.G, hot.G), mix(cold.B, hot.B), 0xff}
}

var _ fmt.Stringer = &Dev{}
