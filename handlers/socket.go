// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/flappigotchi-server/middleware"
	"github.com/danielhkuo/flappigotchi-server/models"
	"github.com/danielhkuo/flappigotchi-server/session"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

var (
	errMissingPayload = errors.New("missing payload")
	errMissingTokenID = errors.New("missing tokenId")
	errMissingScore   = errors.New("missing score")
)

// SocketHandler upgrades HTTP requests to game sockets and feeds their
// events to a GameHandler
type SocketHandler struct {
	game     *GameHandler
	upgrader websocket.Upgrader
}

func NewSocketHandler(game *GameHandler, allowedOrigins []string) *SocketHandler {
	return &SocketHandler{
		game: game,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return middleware.OriginAllowed(allowedOrigins, r.Header.Get("Origin"))
			},
		},
	}
}

// ServeWS handles GET /socket
//
// Each connection is read by a single goroutine and its events are handled
// in order. The session is removed when the read loop exits.
func (h *SocketHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		slog.Warn("websocket upgrade failed", "error", err, "remote", middleware.GetClientIP(r))
		return
	}
	defer conn.Close()

	id := session.NewID()
	if err := h.game.Connect(id); err != nil {
		slog.Error("failed to register session", "error", err)
		return
	}
	defer h.game.Disconnect(id)

	slog.Info("socket opened", "session_id", id, "remote", middleware.GetClientIP(r))

	done := make(chan struct{})
	defer close(done)
	go keepAlive(conn, done)

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		slog.Warn("failed to set read deadline", "session_id", id, "error", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	ctx := r.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("socket read failed", "session_id", id, "error", err)
			}
			return
		}

		var env models.Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			slog.Warn("malformed socket frame", "session_id", id, "error", err)
			continue
		}

		if !h.dispatch(ctx, id, env) {
			err := conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			if err != nil {
				slog.Debug("close frame not sent", "session_id", id, "error", err)
			}
			return
		}
	}
}

// dispatch handles one event and reports whether the socket stays open
func (h *SocketHandler) dispatch(ctx context.Context, id string, env models.Envelope) bool {
	switch env.Event {
	case models.EventSetGotchiData:
		var gotchi models.Gotchi
		err := decodePayload(env, &gotchi)
		if err == nil && gotchi.TokenID == "" {
			err = errMissingTokenID
		}
		if err != nil {
			slog.Warn("invalid gotchi data", "session_id", id, "error", err)
			return true
		}
		h.game.SetGotchiData(id, gotchi)

	case models.EventGameStarted:
		h.game.GameStarted(id)

	case models.EventGameOver:
		var payload models.GameOverPayload
		err := decodePayload(env, &payload)
		if err == nil && payload.Score == nil {
			err = errMissingScore
		}
		if err != nil {
			slog.Warn("invalid game over payload", "session_id", id, "error", err)
			return true
		}
		h.game.GameOver(ctx, id, *payload.Score)

	case models.EventHandleDisconnect:
		return false

	default:
		slog.Warn("unknown socket event", "session_id", id, "event", env.Event)
	}

	return true
}

func decodePayload(env models.Envelope, v interface{}) error {
	if len(env.Data) == 0 {
		return errMissingPayload
	}
	return json.Unmarshal(env.Data, v)
}

// keepAlive pings the client until done is closed
func keepAlive(conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
