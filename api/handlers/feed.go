package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/plataforma-367/traffic-case-api/models"
)

// Feed event types
const (
	eventCaseCreated  = "case_created"
	eventCaseReviewed = "case_reviewed"
)

// CaseEvent is the message pushed to feed subscribers
type CaseEvent struct {
	Type string      `json:"type"`
	Case models.Case `json:"case"`
}

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// CaseHub fans case lifecycle events out to connected feed clients
type CaseHub struct {
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	events     chan CaseEvent
	mu         sync.Mutex
}

// NewCaseHub creates an empty hub; call Run in a goroutine to start it
func NewCaseHub() *CaseHub {
	return &CaseHub{
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		events:     make(chan CaseEvent, 16),
	}
}

// Run owns the client set and serializes all register, unregister and
// broadcast traffic
func (h *CaseHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			total := len(h.clients)
			h.mu.Unlock()
			zap.S().Debugw("feed client connected", "total", total)

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case event := <-h.events:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					zap.S().Warnw("failed to push feed event, dropping client",
						"error", err)
					delete(h.clients, conn)
					conn.Close()
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast queues an event for delivery to every connected client. Delivery
// is best effort; a full queue drops the event rather than blocking the
// request path.
func (h *CaseHub) Broadcast(event CaseEvent) {
	select {
	case h.events <- event:
	default:
		zap.S().Warnw("feed event queue full, dropping event", "type", event.Type)
	}
}

// CaseFeed upgrades requests to a websocket subscribed to case events
type CaseFeed struct {
	Hub *CaseHub
}

// ServeWS upgrades the connection and keeps it registered until the client
// goes away
func (f CaseFeed) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorw("websocket upgrade failed", "error", err)
		return
	}

	f.Hub.register <- conn

	// drain reads so close frames are processed
	for {
		if _, _, err := conn.NextReader(); err != nil {
			f.Hub.unregister <- conn
			break
		}
	}
}
