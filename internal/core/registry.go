package core

import (
	"sync"

	"github.com/acmartinr/liveup/internal/domain"
)

// RoomState is the occupancy of a single room: at most one host and a set
// of listeners. It carries no synchronization of its own; the coordinator
// serializes all mutation (see app.Coordinator).
type RoomState struct {
	Host      domain.ConnID // empty when no host is connected
	Listeners map[domain.ConnID]struct{}
}

func newRoomState() *RoomState {
	return &RoomState{Listeners: make(map[domain.ConnID]struct{})}
}

// AddListener inserts id with set semantics; re-adding is a no-op.
func (s *RoomState) AddListener(id domain.ConnID) {
	s.Listeners[id] = struct{}{}
}

func (s *RoomState) RemoveListener(id domain.ConnID) {
	delete(s.Listeners, id)
}

// Empty reports whether the room has neither host nor listeners. An empty
// room must not remain in the registry.
func (s *RoomState) Empty() bool {
	return s.Host == "" && len(s.Listeners) == 0
}

// Members returns every connection currently in the room, host first.
func (s *RoomState) Members() []domain.ConnID {
	out := make([]domain.ConnID, 0, len(s.Listeners)+1)
	if s.Host != "" {
		out = append(out, s.Host)
	}
	for id := range s.Listeners {
		out = append(out, id)
	}
	return out
}

// Stats derives the occupancy snapshot for the room.
func (s *RoomState) Stats(room domain.RoomName) domain.RoomStats {
	st := domain.RoomStats{
		Room:          room,
		HostConnected: s.Host != "",
		Listeners:     len(s.Listeners),
	}
	st.Total = st.Listeners
	if st.HostConnected {
		st.Total++
	}
	return st
}

// RoomRegistry owns the room name -> state mapping. It is constructed and
// injected explicitly; nothing holds it as a package-level singleton. All
// operations are total: there are no error conditions.
type RoomRegistry struct {
	mu    sync.RWMutex
	rooms map[domain.RoomName]*RoomState
}

func NewRoomRegistry() *RoomRegistry {
	return &RoomRegistry{rooms: make(map[domain.RoomName]*RoomState)}
}

// GetOrCreate returns the existing state or inserts a fresh empty one.
func (r *RoomRegistry) GetOrCreate(name domain.RoomName) *RoomState {
	r.mu.RLock()
	st, ok := r.rooms[name]
	r.mu.RUnlock()
	if ok {
		return st
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if st, ok = r.rooms[name]; ok {
		return st
	}
	st = newRoomState()
	r.rooms[name] = st
	return st
}

// Get is a read-only lookup; it never creates.
func (r *RoomRegistry) Get(name domain.RoomName) (*RoomState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.rooms[name]
	return st, ok
}

// Remove deletes the entry. Safe to call when absent.
func (r *RoomRegistry) Remove(name domain.RoomName) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, name)
}

// List snapshots the stats of every live room.
func (r *RoomRegistry) List() []domain.RoomStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.RoomStats, 0, len(r.rooms))
	for name, st := range r.rooms {
		out = append(out, st.Stats(name))
	}
	return out
}
