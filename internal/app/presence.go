package app

import (
	"github.com/rs/zerolog/log"

	"github.com/acmartinr/liveup/internal/domain"
)

// Join puts the connection into the room under the given role and tells the
// room about it: peer-joined to everyone already there, then fresh
// room-stats to the whole room including the joiner.
//
// A host joining a room that already has one displaces the previous host
// silently; the displaced connection is not notified. Kept as observed in
// the original product behavior, see DESIGN.md.
func (c *Coordinator) Join(id domain.ConnID, room domain.RoomName, role domain.Role) {
	if !role.Valid() {
		log.Warn().Str("module", "app.presence").Str("conn", string(id)).Str("role", string(role)).Msg("join with unknown role")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.rooms.GetOrCreate(room)
	switch role {
	case domain.RoleHost:
		st.Host = id
	case domain.RoleListener:
		st.AddListener(id)
	}
	c.sessions.SetMembership(id, room, role)
	log.Info().Str("module", "app.presence").Str("conn", string(id)).Str("room", string(room)).Str("role", string(role)).Msg("joined")

	c.broadcast(room, id, peerJoinedEvent{Type: EventPeerJoined, ID: id, Role: role})
	c.broadcast(room, "", roomStatsEvent{Type: EventRoomStats, RoomStats: st.Stats(room)})
}

// Leave undoes Join for whatever membership the connection recorded. A
// connection that never joined is a no-op. An empty room is removed from
// the registry on the spot.
func (c *Coordinator) Leave(id domain.ConnID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	room, role, ok := c.sessions.Membership(id)
	if !ok {
		return
	}
	c.sessions.ClearMembership(id)

	st, ok := c.rooms.Get(room)
	if !ok {
		return
	}

	switch role {
	case domain.RoleHost:
		// Identity check: a displaced host leaving must not clear the
		// host that replaced it.
		if st.Host == id {
			st.Host = ""
		}
	case domain.RoleListener:
		st.RemoveListener(id)
	}
	log.Info().Str("module", "app.presence").Str("conn", string(id)).Str("room", string(room)).Msg("left")

	if st.Empty() {
		c.rooms.Remove(room)
		log.Info().Str("module", "app.presence").Str("room", string(room)).Msg("room removed")
		return
	}

	c.broadcast(room, "", peerLeftEvent{Type: EventPeerLeft, ID: id})
	c.broadcast(room, "", roomStatsEvent{Type: EventRoomStats, RoomStats: st.Stats(room)})
}
