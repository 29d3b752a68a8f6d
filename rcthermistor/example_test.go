// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rcthermistor_test

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/GermanBionicSystems/rcthermometer/rcthermistor"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	charge := gpioreg.ByName(rcthermistor.DefaultChargePin)
	sense := gpioreg.ByName(rcthermistor.DefaultSensePin)
	if charge == nil || sense == nil {
		log.Fatal("failed to find the thermistor lines")
	}

	dev, err := rcthermistor.New(charge, sense, nil)
	if err != nil {
		log.Fatalf("failed to initialize rcthermistor: %v", err)
	}
	defer dev.Halt()

	// Every Open takes a new measurement.
	s, err := dev.Open(context.Background(), rcthermistor.ReadOnly)
	if err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	b, err := io.ReadAll(s)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s", b)
}
