// Package domain contains entity types without logic, just meta-data.
package domain

type (
	// ConnID identifies one open connection. Opaque, assigned by the
	// transport adapter at connect time.
	ConnID string

	// RoomName is supplied by clients as-is. Names are not validated or
	// reserved.
	RoomName string
)

// Role is a participant's part in a room, set once at join time.
type Role string

const (
	RoleHost     Role = "host"
	RoleListener Role = "listener"
)

func (r Role) Valid() bool {
	return r == RoleHost || r == RoleListener
}

// RoomStats is a derived snapshot of room occupancy, recomputed on every
// membership change. It is never stored.
type RoomStats struct {
	Room          RoomName `json:"room"`
	HostConnected bool     `json:"hostConnected"`
	Listeners     int      `json:"listeners"`
	Total         int      `json:"total"`
}
