package signal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/acmartinr/liveup/internal/app"
	"github.com/acmartinr/liveup/internal/domain"
)

const writeWait = 5 * time.Second

func (ctl *Controller) writePump(ctx context.Context, c *wsConn) {
	ticker := time.NewTicker(ctl.pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case data, ok := <-c.send:
			if !ok {
				return
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump set deadline")
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Error().Err(err).Str("module", "signal").Msg("writePump write error")
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump drives the connection's whole lifetime: on any exit path it runs
// the leave cleanup exactly once, so a connection dropping mid-anything
// leaves no room state behind. The session's stored cancel func stops the
// writePump.
func (ctl *Controller) readPump(ctx context.Context, id domain.ConnID, c *wsConn) {
	defer func() {
		log.Info().Str("module", "signal").Str("conn", string(id)).Msg("connection closing")
		ctl.Coord.Leave(id)
		ctl.Sessions.Cancel(id)
		ctl.Sessions.Unbind(id)
		c.Close()
	}()

	pongWait := ctl.pingPeriod * 10 / 9
	c.conn.SetReadLimit(ctl.readLimit)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
			_, data, err := c.conn.ReadMessage()
			if err != nil {
				return
			}
			ctl.handleMessage(id, data)
		}
	}
}

func (ctl *Controller) handleMessage(id domain.ConnID, data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad json")
		return
	}

	switch env.Type {
	case "join":
		ctl.handleJoin(id, data)
	case app.EventSignalOffer, app.EventSignalAnswer, app.EventSignalCandidate:
		ctl.handleRelay(id, env.Type, data)
	case app.EventChat:
		ctl.handleChat(id, data)
	default:
		log.Warn().Str("module", "signal").Str("type", env.Type).Msg("unknown message type")
	}
}

func (ctl *Controller) handleJoin(id domain.ConnID, data []byte) {
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		return
	}
	role := domain.Role(p.Role)
	if p.Room == "" || !role.Valid() {
		log.Warn().Str("module", "signal").Str("conn", string(id)).Str("room", p.Room).Str("role", p.Role).Msg("ignoring malformed join")
		return
	}
	ctl.Coord.Join(id, domain.RoomName(p.Room), role)
}

func (ctl *Controller) handleRelay(id domain.ConnID, kind string, data []byte) {
	var p app.SignalPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad signaling payload")
		return
	}
	ctl.Coord.Relay(id, kind, p)
}

func (ctl *Controller) handleChat(id domain.ConnID, data []byte) {
	var p chatPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad chat payload")
		return
	}
	ctl.Coord.Chat(domain.RoomName(p.Room), p.Text)
}
