package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"

	"github.com/mpsalisbury/uno/pkg/game/uno"
)

// Msg is the wire envelope: a type tag and a payload.
type Msg struct {
	T string          `json:"t"`
	M json.RawMessage `json:"m,omitempty"`
}

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type client struct {
	id       string
	playerID string
	send     chan []byte
}

// Hub accepts websocket connections and routes their messages into the
// game service. Clients watching a session receive a fresh state view
// after every successful action against it.
type Hub struct {
	service      *GameService
	logger       *slog.Logger
	allowOrigins map[string]bool

	mu       sync.RWMutex
	clients  map[*client]struct{}
	watchers map[string]map[*client]struct{} // session id -> watching clients
}

func NewHub(service *GameService, logger *slog.Logger, allowOrigins []string) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	allow := map[string]bool{}
	for _, origin := range allowOrigins {
		if origin != "" {
			allow[origin] = true
		}
	}
	return &Hub{
		service:      service,
		logger:       logger,
		allowOrigins: allow,
		clients:      map[*client]struct{}{},
		watchers:     map[string]map[*client]struct{}{},
	}
}

// Handler returns the HTTP mux: the websocket endpoint plus a health
// probe.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")
	if origin != "" && len(h.allowOrigins) > 0 && !h.allowOrigins[origin] {
		http.Error(w, "forbidden origin", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}

	c := &client{id: uuid.NewString(), playerID: uuid.NewString(), send: make(chan []byte, 64)}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
	h.logger.Info("client connected", "client", c.id)

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		for _, watching := range h.watchers {
			delete(watching, c)
		}
		h.mu.Unlock()
		h.logger.Info("client disconnected", "client", c.id)
	}()

	// writer
	go func() {
		ping := time.NewTicker(15 * time.Second)
		defer func() { ping.Stop(); _ = conn.Close(websocket.StatusNormalClosure, "bye") }()
		for {
			select {
			case msg, ok := <-c.send:
				if !ok {
					return
				}
				_ = conn.Write(r.Context(), websocket.MessageText, msg)
			case <-ping.C:
				_ = conn.Ping(r.Context())
			}
		}
	}()

	// reader
	for {
		_, data, err := conn.Read(r.Context())
		if err != nil {
			return
		}
		var m Msg
		if err := json.Unmarshal(data, &m); err != nil {
			continue
		}
		h.dispatch(r.Context(), c, m)
	}
}

type actionPayload struct {
	PlayerID  string `json:"playerId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
	CardID    string `json:"cardId,omitempty"`
	Color     string `json:"color,omitempty"`
}

func (h *Hub) dispatch(ctx context.Context, c *client, m Msg) {
	var p actionPayload
	if len(m.M) > 0 {
		if err := json.Unmarshal(m.M, &p); err != nil {
			h.sendError(c, err)
			return
		}
	}
	if p.PlayerID != "" {
		c.playerID = p.PlayerID
	}

	switch m.T {
	case "hello":
		h.send(c, "welcome", map[string]string{"playerId": c.playerID})

	case "create":
		view, err := h.service.CreateSession(ctx, c.playerID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.watch(view.ID, c)
		h.send(c, "state", view)

	case "join":
		view, err := h.service.JoinSession(ctx, p.SessionID, c.playerID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.watch(view.ID, c)
		h.broadcastState(ctx, view.ID)

	case "ready":
		view, err := h.service.MarkReady(ctx, p.SessionID, c.playerID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.broadcastState(ctx, view.ID)

	case "start":
		view, err := h.service.StartSession(ctx, p.SessionID, c.playerID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.broadcastState(ctx, view.ID)

	case "play":
		view, err := h.service.PlayCard(ctx, p.SessionID, c.playerID, p.CardID, p.Color)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.send(c, "played", view)
		h.broadcastState(ctx, view.Session.ID)

	case "end_turn":
		view, err := h.service.EndTurn(ctx, p.SessionID, c.playerID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.broadcastState(ctx, view.ID)

	case "abandon":
		view, err := h.service.AbandonSession(ctx, p.SessionID, c.playerID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.send(c, "abandoned", view)
		h.broadcastState(ctx, view.Session.ID)

	case "state":
		view, err := h.service.SessionState(ctx, p.SessionID, c.playerID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.watch(view.ID, c)
		h.send(c, "state", view)

	case "sessions":
		views, err := h.service.ListSessions(ctx, c.playerID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.send(c, "sessions", views)

	case "players":
		views, err := h.service.Players(ctx, p.SessionID)
		if err != nil {
			h.sendError(c, err)
			return
		}
		h.send(c, "players", views)

	default:
		h.send(c, "error", errorPayload{Code: "UNKNOWN_ACTION", Message: "unknown action " + m.T})
	}
}

func (h *Hub) watch(sessionID string, c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	watching, found := h.watchers[sessionID]
	if !found {
		watching = map[*client]struct{}{}
		h.watchers[sessionID] = watching
	}
	watching[c] = struct{}{}
}

// broadcastState sends each watcher their own view of the session.
func (h *Hub) broadcastState(ctx context.Context, sessionID string) {
	h.mu.RLock()
	watching := make([]*client, 0, len(h.watchers[sessionID]))
	for c := range h.watchers[sessionID] {
		watching = append(watching, c)
	}
	h.mu.RUnlock()

	for _, c := range watching {
		view, err := h.service.SessionState(ctx, sessionID, c.playerID)
		if err != nil {
			continue
		}
		h.send(c, "state", view)
	}
}

func (h *Hub) send(c *client, t string, payload any) {
	m, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("encode payload", "type", t, "err", err)
		return
	}
	data, err := json.Marshal(Msg{T: t, M: m})
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

// sendError maps an engine failure to the wire. Internal codes are
// logged as server faults.
func (h *Hub) sendError(c *client, err error) {
	code := uno.CodeOf(err)
	if code.Internal() {
		h.logger.Error("internal failure", "client", c.id, "code", string(code), "err", err)
	}
	h.send(c, "error", errorPayload{Code: string(code), Message: err.Error()})
}
