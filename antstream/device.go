// Package antstream is the live byte-source collaborator for FIT
// passthrough: ANT+ USB sticks configured to stream FIT definition/data
// records directly over a serial connection instead of a file (SPEC_FULL
// §11.2). It wraps github.com/tarm/serial the way the teacher's actisense
// package wraps it for Actisense NGT-1 devices, reusing the same
// idle-detection read loop shape as BinaryFormatDevice.ReadRawMessage.
package antstream

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/tarm/serial"
)

// Config controls how a Device reads from its underlying serial port.
type Config struct {
	// ReadIdleTimeout is the maximum duration a read can produce no new
	// bytes before ReadSession considers the stream finished. It is
	// distinct from the serial port's own per-Read timeout, which only
	// limits how long a single Read call blocks.
	ReadIdleTimeout time.Duration

	// DebugLogRawBytes instructs the device to log every chunk it reads,
	// mirroring actisense.Config.DebugLogRawMessageBytes.
	DebugLogRawBytes bool

	// LogFunc receives debug output when DebugLogRawBytes is set. Defaults
	// to a no-op so production callers do not need to wire one up.
	LogFunc func(format string, a ...any)
}

// Device streams FIT records from an ANT+ USB stick's serial port.
type Device struct {
	port io.ReadWriteCloser

	timeNow func() time.Time
	config  Config
}

// Open opens the named serial device at baud and wraps it as a Device.
func Open(name string, baud int, config Config) (*Device, error) {
	port, err := serial.OpenPort(&serial.Config{
		Name:        name,
		Baud:        baud,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}
	return NewDevice(port, config), nil
}

// NewDevice wraps an already-open serial port (or any ReadWriteCloser, for
// tests) as a Device.
func NewDevice(port io.ReadWriteCloser, config Config) *Device {
	if config.ReadIdleTimeout <= 0 {
		config.ReadIdleTimeout = 2 * time.Second
	}
	if config.LogFunc == nil {
		config.LogFunc = func(string, ...any) {}
	}
	return &Device{port: port, timeNow: time.Now, config: config}
}

// Close closes the underlying serial port.
func (d *Device) Close() error {
	return d.port.Close()
}

// ReadSession reads bytes from the device until ReadIdleTimeout elapses
// with no new data, and returns everything read as one contiguous buffer —
// the shape fit.Decode/fit.NewDecoder need. This mirrors
// BinaryFormatDevice.ReadRawMessage's idle-detection loop: a blocked Read
// (os.ErrDeadlineExceeded) is not itself an error, and prolonged silence
// (or io.EOF with no data) ends the session with a nil error.
func (d *Device) ReadSession(ctx context.Context) ([]byte, error) {
	var out []byte
	buf := make([]byte, 4096)
	lastReadWithData := d.timeNow()

	for {
		select {
		case <-ctx.Done():
			if len(out) > 0 {
				return out, nil
			}
			return nil, ctx.Err()
		default:
		}

		n, err := d.port.Read(buf)
		if err != nil && !(errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, io.EOF)) {
			return out, err
		}

		now := d.timeNow()
		if n == 0 {
			if now.Sub(lastReadWithData) > d.config.ReadIdleTimeout {
				return out, nil
			}
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			continue
		}

		lastReadWithData = now
		if d.config.DebugLogRawBytes {
			d.config.LogFunc("# DEBUG antstream read %d bytes\n", n)
		}
		out = append(out, buf[:n]...)
	}
}
