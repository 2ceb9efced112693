package app

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/acmartinr/liveup/internal/core"
	"github.com/acmartinr/liveup/internal/domain"
)

// testConn is a synthetic SignalConnection capturing every frame.
type testConn struct {
	mu     sync.Mutex
	frames []core.Frame
	closed bool
	full   bool
}

func (c *testConn) TrySend(f core.Frame) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.full {
		return errors.New("backpressure")
	}
	c.frames = append(c.frames, f)
	return nil
}

func (c *testConn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// events decodes all captured frames into generic maps, in send order.
func (c *testConn) events(t *testing.T) []map[string]any {
	t.Helper()
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]map[string]any, 0, len(c.frames))
	for _, f := range c.frames {
		var m map[string]any
		if err := json.Unmarshal(f, &m); err != nil {
			t.Fatalf("bad frame %q: %v", f, err)
		}
		out = append(out, m)
	}
	return out
}

func (c *testConn) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = nil
}

func newTestCoordinator() (*Coordinator, *Registry, *core.RoomRegistry) {
	sessions := NewRegistry()
	rooms := core.NewRoomRegistry()
	return NewCoordinator(sessions, rooms), sessions, rooms
}

func bind(sessions *Registry, id domain.ConnID) *testConn {
	conn := &testConn{}
	sessions.Bind(id, conn, nil)
	return conn
}

func lastEvent(t *testing.T, c *testConn) map[string]any {
	t.Helper()
	evs := c.events(t)
	if len(evs) == 0 {
		t.Fatal("no events captured")
	}
	return evs[len(evs)-1]
}
