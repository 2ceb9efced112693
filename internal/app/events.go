package app

import (
	"encoding/json"

	"github.com/acmartinr/liveup/internal/domain"
)

// Wire event names, shared by inbound dispatch and outbound emission.
const (
	EventPeerJoined = "peer-joined"
	EventPeerLeft   = "peer-left"
	EventRoomStats  = "room-stats"
	EventChat       = "chat-message"

	EventSignalOffer     = "signaling-offer"
	EventSignalAnswer    = "signaling-answer"
	EventSignalCandidate = "signaling-candidate"
)

type peerJoinedEvent struct {
	Type string        `json:"type"`
	ID   domain.ConnID `json:"id"`
	Role domain.Role   `json:"role"`
}

type peerLeftEvent struct {
	Type string        `json:"type"`
	ID   domain.ConnID `json:"id"`
}

type roomStatsEvent struct {
	Type string `json:"type"`
	domain.RoomStats
}

type chatEvent struct {
	Type string `json:"type"`
	User string `json:"user"`
	Text string `json:"text"`
}

// SignalPayload carries a negotiation message between two peers. SDP and
// Candidate pass through untouched; the coordinator never interprets them.
type SignalPayload struct {
	To        domain.ConnID   `json:"to,omitempty"`
	Room      domain.RoomName `json:"room,omitempty"`
	SDP       json.RawMessage `json:"sdp,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}

type signalEvent struct {
	Type      string          `json:"type"`
	From      domain.ConnID   `json:"from"`
	Room      domain.RoomName `json:"room,omitempty"`
	SDP       json.RawMessage `json:"sdp,omitempty"`
	Candidate json.RawMessage `json:"candidate,omitempty"`
}
