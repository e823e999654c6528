// internal/telemetry/reader.go
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/tamzrod/pacemaker-monitor/internal/packet"
	"github.com/tamzrod/pacemaker-monitor/internal/serialport"
)

// Reader decodes the egram stream in a background goroutine and buffers
// samples for a polling consumer.
//
// Stopping is cooperative: the stop request is observed between reads, so
// shutdown takes at most one read timeout.
type Reader struct {
	open    serialport.Opener
	depth   int
	release func(error)

	cancel context.CancelFunc
	done   chan struct{}

	mu    sync.Mutex
	buf   Batch
	stats Stats
	err   error
}

func newReader(open serialport.Opener, depth int, release func(error)) *Reader {
	if depth < 1 {
		depth = 1
	}
	return &Reader{
		open:    open,
		depth:   depth,
		release: release,
		done:    make(chan struct{}),
	}
}

func (r *Reader) start(parent context.Context) {
	ctx, cancel := context.WithCancel(parent)
	r.cancel = cancel
	go r.run(ctx)
}

// PollAndClear takes every sample decoded since the previous call.
// The buffer is swapped under the lock; no sample is lost or returned twice.
func (r *Reader) PollAndClear() Batch {
	r.mu.Lock()
	b := r.buf
	r.buf = Batch{}
	r.mu.Unlock()
	return b
}

// Stop asks the reader to finish and waits for it.
// Frames already buffered are decoded before it returns.
func (r *Reader) Stop() {
	r.cancel()
	<-r.done
}

// Done is closed when the reader goroutine has exited.
func (r *Reader) Done() <-chan struct{} { return r.done }

// Err is the transport fault that ended the reader, or nil.
func (r *Reader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Stats returns a copy of the reader counters.
func (r *Reader) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

func (r *Reader) run(ctx context.Context) {
	defer close(r.done)
	defer r.cancel()
	defer func() { r.release(r.Err()) }()

	conn, err := r.open()
	if err != nil {
		r.fail(fmt.Errorf("telemetry: reader open: %w", err))
		return
	}
	defer conn.Close()

	chunk := make([]byte, packet.EgramFrameLen)
	acc := make([]byte, 0, packet.EgramFrameLen*(r.depth+1))
	reads := 0

	for {
		if ctx.Err() != nil {
			r.pass(acc)
			return
		}

		n, err := conn.Read(chunk)
		if n < 0 {
			n = 0
		}
		if n == 0 && err == nil {
			// hung-up device: readable, but nothing to read
			err = serialport.ErrDisconnected
		}
		if n > 0 {
			acc = append(acc, chunk[:n]...)
		}
		r.count(n)

		if err != nil && !errors.Is(err, serialport.ErrTimeout) {
			r.pass(acc)
			r.fail(fmt.Errorf("telemetry: reader read: %w", err))
			return
		}

		reads++
		if reads >= r.depth {
			acc = r.pass(acc)
			reads = 0
		}
	}
}

// pass decodes acc and returns the unconsumed tail, moved to the front.
func (r *Reader) pass(acc []byte) []byte {
	samples, consumed := Scan(acc)

	r.mu.Lock()
	for _, s := range samples {
		r.buf.VRaw = append(r.buf.VRaw, s.VRaw)
		r.buf.ARaw = append(r.buf.ARaw, s.ARaw)
	}
	r.stats.Samples += uint64(len(samples))
	r.stats.Discarded += uint64(consumed - len(samples)*packet.EgramFrameLen)
	r.mu.Unlock()

	n := copy(acc, acc[consumed:])
	return acc[:n]
}

func (r *Reader) count(n int) {
	r.mu.Lock()
	r.stats.Reads++
	r.stats.Bytes += uint64(n)
	r.mu.Unlock()
}

func (r *Reader) fail(err error) {
	log.Printf("egram reader: device disconnected: %v", err)
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}
