package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/acmartinr/liveup/internal/core"
	"github.com/acmartinr/liveup/internal/domain"
)

// sessionEntry is the out-of-band record for one connection. Room and Role
// are empty until the connection joins; the transport object itself carries
// no application state.
type sessionEntry struct {
	Room   domain.RoomName
	Role   domain.Role
	Conn   core.SignalConnection
	Cancel context.CancelFunc
}

// Registry is the session table: ConnID -> {room, role, transport}.
type Registry struct {
	mu       sync.RWMutex
	sessions map[domain.ConnID]*sessionEntry
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[domain.ConnID]*sessionEntry)}
}

// Bind registers a freshly connected session, not yet in any room.
func (r *Registry) Bind(id domain.ConnID, conn core.SignalConnection, cancel context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[id] = &sessionEntry{Conn: conn, Cancel: cancel}
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("bound session")
}

// SetMembership records the room/role chosen at join time so it can be
// looked up again at disconnect.
func (r *Registry) SetMembership(id domain.ConnID, room domain.RoomName, role domain.Role) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		e.Room = room
		e.Role = role
	}
}

// ClearMembership drops the room/role record, keeping the session bound.
func (r *Registry) ClearMembership(id domain.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.sessions[id]; ok {
		e.Room = ""
		e.Role = ""
	}
}

// Membership returns the recorded room/role. ok is false for connections
// that never joined (or already left).
func (r *Registry) Membership(id domain.ConnID) (domain.RoomName, domain.Role, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok || e.Room == "" {
		return "", "", false
	}
	return e.Room, e.Role, true
}

// Conn resolves a connection id to its transport endpoint.
func (r *Registry) Conn(id domain.ConnID) (core.SignalConnection, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	return e.Conn, true
}

func (r *Registry) Unbind(id domain.ConnID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	log.Info().Str("module", "app.registry").Str("conn", string(id)).Msg("unbound session")
}

// Cancel fires the session's cancel func, if any. Returns false when the
// session is unknown.
func (r *Registry) Cancel(id domain.ConnID) bool {
	r.mu.RLock()
	e, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	return true
}
