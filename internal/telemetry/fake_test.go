// internal/telemetry/fake_test.go
package telemetry

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/tamzrod/pacemaker-monitor/internal/serialport"
)

// ---- fake serial connection ----

// fakeConn serves rx to readers in chunks and records writes.
// When rx is drained it behaves like an idle port (timeout) unless
// failAfterRx is set, in which case it returns a transport fault.
type fakeConn struct {
	mu sync.Mutex

	rx          []byte
	failAfterRx error
	hangUp      bool // drained reads return (0, nil)
	writeErr    error

	written bytes.Buffer
	flushes int
	closed  bool
}

func (f *fakeConn) Read(b []byte) (int, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return 0, io.ErrClosedPipe
	}
	if len(f.rx) == 0 {
		fail, hangUp := f.failAfterRx, f.hangUp
		f.mu.Unlock()
		if fail != nil {
			return 0, fail
		}
		if hangUp {
			return 0, nil
		}
		time.Sleep(time.Millisecond)
		return 0, serialport.ErrTimeout
	}
	n := copy(b, f.rx)
	f.rx = f.rx[n:]
	f.mu.Unlock()
	return n, nil
}

func (f *fakeConn) Write(b []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return f.written.Write(b)
}

func (f *fakeConn) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.flushes++
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) drained() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rx) == 0
}

func (f *fakeConn) bytesWritten() []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]byte(nil), f.written.Bytes()...)
}

// ---- fake opener ----

type fakePort struct {
	mu    sync.Mutex
	conns []*fakeConn
	next  func() *fakeConn
	err   error
	opens int
}

func (p *fakePort) opener() serialport.Opener {
	return func() (io.ReadWriteCloser, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.opens++
		if p.err != nil {
			return nil, p.err
		}
		c := &fakeConn{}
		if p.next != nil {
			c = p.next()
		}
		p.conns = append(p.conns, c)
		return c, nil
	}
}

func (p *fakePort) openCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.opens
}

func (p *fakePort) setErr(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

var errUnplugged = errors.New("device unplugged")

// waitFor polls cond until it holds or the test times out.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("condition not met within 2s")
		}
		time.Sleep(time.Millisecond)
	}
}
