// internal/telemetry/channel.go
package telemetry

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/tamzrod/pacemaker-monitor/internal/packet"
	"github.com/tamzrod/pacemaker-monitor/internal/params"
	"github.com/tamzrod/pacemaker-monitor/internal/serialport"
	"github.com/tamzrod/pacemaker-monitor/internal/status"
)

// Channel is the host side of the pacemaker link.
//
// Send operations are stateless: 1 packet = 1 connection (open, write,
// flush, close). They report success as a bool and never return transport
// errors; failures are logged.
//
// KNOWN RACE: a send opens the port independently of a running Reader.
// Nothing arbitrates between the two if they share one physical device.
type Channel struct {
	open  serialport.Opener
	reg   *params.Registry
	modes params.ModeTable

	health *status.Tracker

	// mu guards the busy count only. Each Reader locks its own sample
	// buffer, so polling never contends with Probe or StartReader.
	mu      sync.Mutex
	readers int // running readers; > 0 means the port is busy
}

type flusher interface {
	Flush() error
}

// NewChannel builds a channel. reg is shared with the caller, which owns
// parameter mutation; DownloadParams only sets the mode.
func NewChannel(open serialport.Opener, reg *params.Registry, modes params.ModeTable) *Channel {
	return &Channel{
		open:  open,
		reg:   reg,
		modes: modes,

		health: status.NewTracker(),
	}
}

// RequestEgram asks the device to start streaming egram frames.
func (c *Channel) RequestEgram() bool {
	return c.send("request egram", packet.Control(packet.FnRequestEgram))
}

// StopEgram asks the device to stop streaming.
func (c *Channel) StopEgram() bool {
	return c.send("stop egram", packet.Control(packet.FnStopEgram))
}

// RequestEcho asks the device to echo its parameters.
// The echoed bytes are not decoded here.
func (c *Channel) RequestEcho() bool {
	return c.send("request echo", packet.Control(packet.FnEcho))
}

// DownloadParams sets the registry mode and sends the parameter payload for it.
// An invalid mode sends nothing and returns false.
func (c *Channel) DownloadParams(mode string) bool {
	if !c.reg.SetMode(mode) {
		log.Printf("telemetry: download params: invalid mode %q", mode)
		return false
	}

	pkt, err := packet.Download(c.reg, c.modes)
	if err != nil {
		log.Printf("telemetry: download params (mode=%s): %v", mode, err)
		return false
	}

	return c.send("download params", pkt)
}

// Probe reports whether the device is reachable.
// While a Reader owns the port the answer is true without touching it;
// otherwise the port is opened and closed once.
func (c *Channel) Probe() bool {
	if c.PortBusy() {
		return true
	}

	conn, err := c.open()
	if err == nil {
		err = conn.Close()
	}
	c.observe("probe", err)
	return err == nil
}

// PortBusy reports whether a Reader currently owns the port.
func (c *Channel) PortBusy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readers > 0
}

// StartReader marks the port busy and starts a background egram reader.
// depth is the number of reads buffered between decoding passes.
// The reader runs until Stop, ctx cancellation, or a transport fault.
func (c *Channel) StartReader(ctx context.Context, depth int) *Reader {
	c.mu.Lock()
	c.readers++
	c.mu.Unlock()
	c.health.Streaming()

	r := newReader(c.open, depth, c.releasePort)
	r.start(ctx)
	return r
}

// Status returns the link health as of the last operation.
func (c *Channel) Status() status.Snapshot {
	return c.health.Snapshot()
}

// releasePort is called by a Reader on exit with the fault that ended it.
func (c *Channel) releasePort(err error) {
	c.mu.Lock()
	if c.readers > 0 {
		c.readers--
	}
	c.mu.Unlock()
	c.observe("reader", err)
}

func (c *Channel) send(what string, pkt []byte) bool {
	err := c.writePacket(pkt)
	if err != nil {
		log.Printf("telemetry: %s: %v", what, err)
	}
	c.observe(what, err)
	return err == nil
}

func (c *Channel) observe(what string, err error) {
	if c.health.Observe(err) {
		log.Printf("telemetry: link %s (op=%s)", c.health.Snapshot(), what)
	}
}

func (c *Channel) writePacket(pkt []byte) error {
	conn, err := c.open()
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	if err := writeAll(conn, pkt); err != nil {
		_ = conn.Close()
		return fmt.Errorf("write: %w", err)
	}

	if f, ok := conn.(flusher); ok {
		if err := f.Flush(); err != nil {
			_ = conn.Close()
			return fmt.Errorf("flush: %w", err)
		}
	}

	if err := conn.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		b = b[n:]
	}
	return nil
}
