// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermocard renders a thermistor reading as a small image, suitable
// for a dashboard or to be drawn on a display.Drawer.
package thermocard

import (
	"errors"
	"image"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/rcthermometer/rcthermistor"
)

// Opts represents the card layout.
type Opts struct {
	Width  int
	Height int
	// Min and Max are the temperatures of an empty and of a full column.
	Min physic.Temperature
	Max physic.Temperature
}

// DefaultOpts is a 160x80 card covering 0°C to 50°C.
var DefaultOpts = Opts{
	Width:  160,
	Height: 80,
	Min:    physic.ZeroCelsius,
	Max:    physic.ZeroCelsius + 50*physic.Kelvin,
}

const (
	margin      = 6.0
	columnWidth = 14.0
)

// Render draws r onto a new image.
func Render(r rcthermistor.Reading, opts *Opts) (image.Image, error) {
	dc, err := draw(r, opts)
	if err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// EncodePNG draws r and writes it to w as a PNG.
func EncodePNG(w io.Writer, r rcthermistor.Reading, opts *Opts) error {
	dc, err := draw(r, opts)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG draws r and saves it as a PNG file.
func SavePNG(path string, r rcthermistor.Reading, opts *Opts) error {
	dc, err := draw(r, opts)
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}

// Fill returns the fraction of the column lit for t, between 0 and 1.
func (o *Opts) Fill(t physic.Temperature) float64 {
	switch {
	case t <= o.Min:
		return 0
	case t >= o.Max:
		return 1
	}
	return float64(t-o.Min) / float64(o.Max-o.Min)
}

func draw(r rcthermistor.Reading, opts *Opts) (*gg.Context, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 2*margin+columnWidth || opts.Height <= 2*margin {
		return nil, errors.New("thermocard: card too small")
	}
	if opts.Max <= opts.Min {
		return nil, errors.New("thermocard: Max must be above Min")
	}
	h := float64(opts.Height)
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Column, filled from the bottom.
	colH := h - 2*margin
	level := colH * opts.Fill(r.Temperature())
	dc.SetRGB(0.85, 0.1, 0.05)
	dc.DrawRectangle(margin, margin+colH-level, columnWidth, level)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(margin, margin, columnWidth, colH)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	x := 2*margin + columnWidth
	lines := []string{
		r.Temperature().String(),
		r.Resistance().String(),
		r.Elapsed.String(),
	}
	step := (h - 2*margin) / float64(len(lines))
	for i, s := range lines {
		dc.DrawStringAnchored(s, x, margin+step*(float64(i)+0.5), 0, 0.5)
	}
	return dc, nil
}
