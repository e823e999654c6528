// internal/serialport/port.go
package serialport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goburrow/serial"
)

// ErrTimeout is returned by Read when no byte arrived within the read timeout.
// It is not a transport fault.
var ErrTimeout = errors.New("serialport: read timeout")

// ErrDisconnected is returned by Read when the device hung up: the port
// polled readable but yielded no bytes.
var ErrDisconnected = errors.New("serialport: device disconnected")

// Config is the link configuration. Framing is fixed at 8N1.
type Config struct {
	Address  string
	BaudRate int
	Timeout  time.Duration
}

// Opener opens a fresh connection to the device.
// Each call returns an independent connection that the caller must close.
type Opener func() (io.ReadWriteCloser, error)

// Port is an open serial connection.
type Port struct {
	p       io.ReadWriteCloser
	address string
}

// Open opens the serial device described by cfg.
func Open(cfg Config) (*Port, error) {
	if cfg.Address == "" {
		return nil, errors.New("serialport: address required")
	}
	if cfg.BaudRate <= 0 {
		return nil, fmt.Errorf("serialport: invalid baud rate %d", cfg.BaudRate)
	}

	p, err := serial.Open(&serial.Config{
		Address:  cfg.Address,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("serialport: open %s: %w", cfg.Address, err)
	}

	return &Port{p: p, address: cfg.Address}, nil
}

// NewOpener binds cfg into an Opener.
func NewOpener(cfg Config) Opener {
	return func() (io.ReadWriteCloser, error) {
		p, err := Open(cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
}

// Read reads up to len(b) bytes, waiting at most the configured timeout.
// The library hands back the raw read(2) result; it is normalized here:
// n is never negative, and an empty read after a readable poll is a hang-up.
func (p *Port) Read(b []byte) (int, error) {
	n, err := p.p.Read(b)
	if n < 0 {
		n = 0
	}
	switch {
	case errors.Is(err, serial.ErrTimeout):
		return n, ErrTimeout
	case err == nil && n == 0 && len(b) > 0:
		return 0, ErrDisconnected
	}
	return n, err
}

func (p *Port) Write(b []byte) (int, error) {
	return p.p.Write(b)
}

// Flush is a no-op: writes go straight to the device file descriptor.
func (p *Port) Flush() error { return nil }

func (p *Port) Close() error {
	if p == nil || p.p == nil {
		return nil
	}
	return p.p.Close()
}

func (p *Port) String() string { return p.address }
