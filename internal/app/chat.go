package app

import (
	"strings"

	"github.com/acmartinr/liveup/internal/domain"
)

const (
	// maxChatRunes caps a single chat message; longer text is cut, not
	// rejected.
	maxChatRunes = 300

	// chatDisplayName is the fixed author name. Chat carries no per-user
	// identity.
	chatDisplayName = "guest"
)

// Chat trims and broadcasts a text message to the whole room, sender
// included. All-whitespace text is dropped with no side effect.
func (c *Coordinator) Chat(room domain.RoomName, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if r := []rune(text); len(r) > maxChatRunes {
		text = string(r[:maxChatRunes])
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.broadcast(room, "", chatEvent{Type: EventChat, User: chatDisplayName, Text: text})
}
