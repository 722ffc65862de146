package ws

import (
	"encoding/json"
	"log"
	"sync"

	"apnidisha/internal/ivr"
)

// MessageType defines the type of WebSocket message.
type MessageType string

const (
	MsgTurn  MessageType = "turn"
	MsgError MessageType = "error"
)

// Message is the WebSocket envelope format.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans quiz turn events out to connected admin monitors. Every monitor
// sees every call; there is no per-call subscription.
type Hub struct {
	monitors map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one monitor connection.
type Connection struct {
	AdminID string
	Send    chan []byte
	Hub     *Hub
}

// NewHub creates a running hub.
func NewHub() *Hub {
	h := &Hub{
		monitors:   make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.monitors[conn] = true
			h.mu.Unlock()
			log.Printf("Monitor %s connected", conn.AdminID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.monitors[conn] {
				delete(h.monitors, conn)
				close(conn.Send)
				log.Printf("Monitor %s disconnected", conn.AdminID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg)
			h.mu.RLock()
			for conn := range h.monitors {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// TurnEvent broadcasts a quiz turn event (implements ivr.Monitor).
func (h *Hub) TurnEvent(event ivr.MonitorEvent) {
	payload, _ := json.Marshal(event)
	select {
	case h.broadcast <- &Message{Type: MsgTurn, Payload: payload}:
	default:
		// Never block a call turn on slow monitors.
	}
}
