// Package app coordinates room membership, signaling relay and chat over a
// shared RoomRegistry and session table.
package app

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/acmartinr/liveup/internal/core"
	"github.com/acmartinr/liveup/internal/domain"
)

// Coordinator is the single owner of room-state mutation. One mutex
// serializes every membership change together with the broadcasts it
// produces, so per-room event order matches the order the transport
// delivered the triggering events.
//
// Delivery is fire-and-forget: outbound frames go through the connection's
// non-blocking TrySend and a failed send is logged and dropped, never
// retried. That is a policy decision, not an oversight; signaling transport
// is best-effort end to end.
type Coordinator struct {
	sessions *Registry
	rooms    *core.RoomRegistry

	mu sync.Mutex
}

func NewCoordinator(sessions *Registry, rooms *core.RoomRegistry) *Coordinator {
	return &Coordinator{sessions: sessions, rooms: rooms}
}

// Rooms snapshots the stats of every live room.
func (c *Coordinator) Rooms() []domain.RoomStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rooms.List()
}

// broadcast marshals v once and fans it out to every member of the room,
// skipping the connection named by except, when non-empty. A missing room
// is a no-op.
func (c *Coordinator) broadcast(room domain.RoomName, except domain.ConnID, v any) {
	st, ok := c.rooms.Get(room)
	if !ok {
		return
	}
	frame, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.coordinator").Msg("marshal broadcast")
		return
	}
	for _, id := range st.Members() {
		if id == except {
			continue
		}
		c.send(id, frame)
	}
}

func (c *Coordinator) send(id domain.ConnID, frame core.Frame) {
	conn, ok := c.sessions.Conn(id)
	if !ok {
		return
	}
	if err := conn.TrySend(frame); err != nil {
		log.Debug().Err(err).Str("module", "app.coordinator").Str("conn", string(id)).Msg("dropped frame")
	}
}

// emit marshals v and sends it to a single connection.
func (c *Coordinator) emit(id domain.ConnID, v any) {
	frame, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Str("module", "app.coordinator").Msg("marshal emit")
		return
	}
	c.send(id, frame)
}
