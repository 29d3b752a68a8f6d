// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package thermocard

import (
	"bytes"
	"image"
	"path/filepath"
	"testing"
	"time"

	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/rcthermometer/rcthermistor"
)

func TestRender(t *testing.T) {
	r := rcthermistor.Convert(94 * time.Microsecond)
	img, err := Render(r, nil)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b != image.Rect(0, 0, DefaultOpts.Width, DefaultOpts.Height) {
		t.Errorf("Bounds() = %v", b)
	}
	// Bottom of the column is lit, top is not: 27°C fills just over half.
	bottom := img.At(int(margin+columnWidth/2), DefaultOpts.Height-int(margin)-2)
	if r, g, _, _ := bottom.RGBA(); r < 0x8000 || g > 0x8000 {
		t.Errorf("bottom of the column is %v, want red", bottom)
	}
	top := img.At(int(margin+columnWidth/2), int(margin)+2)
	if r, g, b, _ := top.RGBA(); r < 0xf000 || g < 0xf000 || b < 0xf000 {
		t.Errorf("top of the column is %v, want white", top)
	}
}

func TestRender_invalid(t *testing.T) {
	r := rcthermistor.Convert(0)
	if _, err := Render(r, &Opts{Width: 10, Height: 10, Max: physic.Kelvin}); err == nil {
		t.Error("Render() of a tiny card should fail")
	}
	if _, err := Render(r, &Opts{Width: 100, Height: 50}); err == nil {
		t.Error("Render() with an empty range should fail")
	}
}

func TestFill(t *testing.T) {
	o := DefaultOpts
	var tests = []struct {
		t    physic.Temperature
		fill float64
	}{
		{physic.ZeroCelsius - physic.Kelvin, 0},
		{physic.ZeroCelsius, 0},
		{physic.ZeroCelsius + 25*physic.Kelvin, 0.5},
		{physic.ZeroCelsius + 60*physic.Kelvin, 1},
	}
	for _, test := range tests {
		if f := o.Fill(test.t); f != test.fill {
			t.Errorf("Fill(%s) = %v, want %v", test.t, f, test.fill)
		}
	}
}

func TestEncodePNG(t *testing.T) {
	var b bytes.Buffer
	if err := EncodePNG(&b, rcthermistor.Convert(10*time.Microsecond), nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("EncodePNG() did not write a PNG")
	}
	path := filepath.Join(t.TempDir(), "card.png")
	if err := SavePNG(path, rcthermistor.Convert(10*time.Microsecond), nil); err != nil {
		t.Fatal(err)
	}
}
