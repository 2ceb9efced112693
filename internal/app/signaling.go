package app

import (
	"github.com/rs/zerolog/log"

	"github.com/acmartinr/liveup/internal/domain"
)

// Relay forwards one negotiation message (offer, answer or candidate) to
// the connection the sender addressed, stamped with the sender's id. The
// payload and room pass through untouched and no membership check is made
// against the room: the relay trusts the caller-supplied target. An unknown
// or closed target drops the message silently; the sender is never told.
func (c *Coordinator) Relay(from domain.ConnID, kind string, p SignalPayload) {
	if _, ok := c.sessions.Conn(p.To); !ok {
		log.Debug().Str("module", "app.signaling").Str("from", string(from)).Str("to", string(p.To)).Str("kind", kind).Msg("relay target not connected")
		return
	}
	c.emit(p.To, signalEvent{
		Type:      kind,
		From:      from,
		Room:      p.Room,
		SDP:       p.SDP,
		Candidate: p.Candidate,
	})
}
