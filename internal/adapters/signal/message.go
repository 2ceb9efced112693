package signal

// envelope is the minimal shape of every inbound message; the type field
// picks the full payload struct.
type envelope struct {
	Type string `json:"type"`
}

type joinPayload struct {
	Type string `json:"type"`
	Room string `json:"room"`
	Role string `json:"role"`
}

type chatPayload struct {
	Type string `json:"type"`
	Room string `json:"room"`
	Text string `json:"text"`
}
