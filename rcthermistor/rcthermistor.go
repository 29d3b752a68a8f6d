// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rcthermistor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"golang.org/x/sync/semaphore"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultChargePin is the line feeding the RC circuit.
	DefaultChargePin = "GPIO23"
	// DefaultSensePin is the line wired to the capacitor.
	DefaultSensePin = "GPIO18"
	// SettleDelay is how long the capacitor is discharged before a measurement.
	SettleDelay = 5 * time.Millisecond
	// DefaultTimeout bounds the wait for the threshold crossing.
	DefaultTimeout = time.Second
	// BufferSize is the capacity of the temperature text buffer, terminator
	// included.
	BufferSize = 30
)

// AccessMode is how a Session was opened.
type AccessMode int

const (
	// ReadOnly sessions can read the last temperature.
	ReadOnly AccessMode = iota
	// WriteOnly sessions can neither read nor write.
	WriteOnly
	// ReadWrite sessions read like ReadOnly ones; writes still fail.
	ReadWrite
)

func (m AccessMode) String() string {
	switch m {
	case ReadOnly:
		return "ReadOnly"
	case WriteOnly:
		return "WriteOnly"
	case ReadWrite:
		return "ReadWrite"
	default:
		return "AccessMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Opts holds the configuration options.
type Opts struct {
	// Lines is the claim table the pins are requested from. DefaultLines is
	// used when nil.
	Lines *Lines
	// Timeout bounds the wait for the sense line. Zero means DefaultTimeout. A
	// negative value waits forever, which hangs the device and every caller
	// queued on it if the circuit is broken.
	Timeout time.Duration
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{Timeout: DefaultTimeout}

// Dev is a handle to an RC thermistor circuit.
type Dev struct {
	charge gpio.PinIO
	sense  gpio.PinIO
	lines  *Lines
	opts   Opts

	// sem guards everything below. It is a semaphore rather than a
	// sync.Mutex so that waiting for it can be cancelled.
	sem    *semaphore.Weighted
	buf    [BufferSize]byte
	halted bool
}

// New requests charge as an output and sense as an input and returns a device
// ready to measure.
//
// If either request fails, whatever was already claimed is released before
// returning.
func New(charge, sense gpio.PinIO, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{
		charge: charge,
		sense:  sense,
		lines:  opts.Lines,
		opts:   *opts,
		sem:    semaphore.NewWeighted(1),
	}
	if d.lines == nil {
		d.lines = DefaultLines
	}
	if d.opts.Timeout == 0 {
		d.opts.Timeout = DefaultTimeout
	}
	if err := d.lines.Request(charge, Output); err != nil {
		return nil, fmt.Errorf("rcthermistor: requesting charge line: %w", err)
	}
	if err := d.lines.Request(sense, Input); err != nil {
		return nil, errors.Join(fmt.Errorf("rcthermistor: requesting sense line: %w", err), d.lines.Release(charge))
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("RCThermistor{%s, %s}", d.charge, d.sense)
}

// Halt releases both lines, sense first. The device cannot be opened
// afterwards. Implements conn.Resource.
//
// Halt waits for a measurement in progress to finish.
func (d *Dev) Halt() error {
	if err := d.sem.Acquire(context.Background(), 1); err != nil {
		return err
	}
	defer d.sem.Release(1)
	if d.halted {
		return nil
	}
	d.halted = true
	return errors.Join(d.lines.Release(d.sense), d.lines.Release(d.charge))
}

// Open measures the temperature, stores it in the device buffer and returns a
// new Session positioned at the start of it.
//
// Cancelling ctx while Open waits for the device returns ErrInterrupted and
// leaves the buffer untouched. Once the measurement started it runs to
// completion or to Opts.Timeout regardless of ctx.
func (d *Dev) Open(ctx context.Context, mode AccessMode) (*Session, error) {
	r, err := d.refresh(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{dev: d, mode: mode, reading: r}, nil
}

// Sense measures the temperature. The device buffer is refreshed the same way
// Open does. Implements physic.SenseEnv.
func (d *Dev) Sense(e *physic.Env) error {
	r, err := d.refresh(context.Background())
	if err != nil {
		return err
	}
	e.Temperature = r.Temperature()
	return nil
}

// SenseContinuous is not supported; the device only measures on demand.
// Implements physic.SenseEnv.
func (d *Dev) SenseContinuous(time.Duration) (<-chan physic.Env, error) {
	return nil, errors.New("rcthermistor: continuous sensing not supported")
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin
}

func (d *Dev) lock(ctx context.Context) error {
	if err := d.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return nil
}

func (d *Dev) unlock() {
	d.sem.Release(1)
}

func (d *Dev) refresh(ctx context.Context) (Reading, error) {
	if err := d.lock(ctx); err != nil {
		return Reading{}, err
	}
	defer d.unlock()
	if d.halted {
		return Reading{}, ErrHalted
	}
	s, err := d.measure()
	if err != nil {
		return Reading{}, err
	}
	r := Convert(s.Elapsed())
	d.store(r.Degrees)
	return r, nil
}

// store formats degrees into the buffer. At least one trailing NUL is always
// kept.
func (d *Dev) store(degrees int64) {
	var tmp [BufferSize]byte
	b := strconv.AppendInt(tmp[:0], degrees, 10)
	b = append(b, '\n')
	n := copy(d.buf[:BufferSize-1], b)
	clear(d.buf[n:])
}

// length returns the length of the text in the buffer, never more than its
// capacity.
func (d *Dev) length() int {
	if i := bytes.IndexByte(d.buf[:], 0); i >= 0 {
		return i
	}
	return len(d.buf)
}

// Session is one open of the device. It carries its own read offset.
//
// A Session must not be used from multiple goroutines at once.
type Session struct {
	dev     *Dev
	mode    AccessMode
	reading Reading
	off     int
}

// ReadContext copies the device buffer into p starting at the session offset
// and advances the offset by the number of bytes copied. At the end of the
// text it returns 0 and no error.
//
// A write-only session fails with ErrPermission without touching the device.
// Cancelling ctx while waiting for the device returns ErrInterrupted.
func (s *Session) ReadContext(ctx context.Context, p []byte) (int, error) {
	if s.mode == WriteOnly {
		return 0, ErrPermission
	}
	d := s.dev
	if err := d.lock(ctx); err != nil {
		return 0, err
	}
	defer d.unlock()
	l := d.length()
	if s.off >= l {
		return 0, nil
	}
	n := copy(p, d.buf[s.off:l])
	s.off += n
	return n, nil
}

// Read implements io.Reader on top of ReadContext. The end of the text is
// reported as io.EOF.
func (s *Session) Read(p []byte) (int, error) {
	n, err := s.ReadContext(context.Background(), p)
	if n == 0 && err == nil && len(p) > 0 {
		return 0, io.EOF
	}
	return n, err
}

// Write always fails; the device is read only.
func (s *Session) Write([]byte) (int, error) {
	return 0, ErrReadOnly
}

// Close ends the session. The device itself stays ready for the next Open.
func (s *Session) Close() error {
	return nil
}

// Offset returns the session read offset.
func (s *Session) Offset() int {
	return s.off
}

// Reading returns the measurement taken when the session was opened.
func (s *Session) Reading() Reading {
	return s.reading
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
var _ io.ReadWriteCloser = &Session{}
