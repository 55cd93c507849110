package websocket

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"

	"carvendor/pkg/logger"
)

// Client kinds
const (
	KindCatalog  = "catalog"  // public catalog page, receives live car sets
	KindOperator = "operator" // admin back office, receives inquiry notifications
)

// Client represents one WebSocket connection.
type Client struct {
	ID   string
	Kind string
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans messages out to connected clients: full catalog snapshots to
// catalog clients, inquiry notifications to operator clients.
type Hub struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	catalog    chan []byte
	operator   chan []byte

	// last delivered catalog payload, replayed to newly connected
	// catalog clients so they start from the current set
	lastCatalog []byte

	mutex sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		catalog:    make(chan []byte),
		operator:   make(chan []byte),
	}
}

// Start runs the hub's main loop in a goroutine until ctx is done.
func (h *Hub) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-h.Register:
				h.mutex.Lock()
				h.clients[client.ID] = client
				replay := h.lastCatalog
				h.mutex.Unlock()
				if client.Kind == KindCatalog && replay != nil {
					select {
					case client.Send <- replay:
					default:
					}
				}
				logger.Debug("WebSocket client registered: %s (%s)", client.ID, client.Kind)

			case client := <-h.Unregister:
				h.mutex.Lock()
				if _, ok := h.clients[client.ID]; ok {
					delete(h.clients, client.ID)
					close(client.Send)
				}
				h.mutex.Unlock()
				logger.Debug("WebSocket client unregistered: %s", client.ID)

			case message := <-h.catalog:
				h.mutex.Lock()
				h.lastCatalog = message
				h.mutex.Unlock()
				h.send(KindCatalog, message)

			case message := <-h.operator:
				h.send(KindOperator, message)

			case <-ctx.Done():
				return
			}
		}
	}()
}

func (h *Hub) send(kind string, message []byte) {
	h.mutex.RLock()
	var stale []*Client
	for _, client := range h.clients {
		if client.Kind != kind {
			continue
		}
		select {
		case client.Send <- message:
		default:
			stale = append(stale, client)
		}
	}
	h.mutex.RUnlock()

	// Drop clients whose send buffer is full
	if len(stale) > 0 {
		h.mutex.Lock()
		for _, client := range stale {
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
		}
		h.mutex.Unlock()
	}
}

// BroadcastCatalog pushes the full current car set to every catalog client.
func (h *Hub) BroadcastCatalog(message []byte) {
	h.catalog <- message
}

// NotifyOperators pushes a notification to every connected operator. Fire
// and forget: callers never learn whether anyone was listening.
func (h *Hub) NotifyOperators(message []byte) {
	select {
	case h.operator <- message:
	default:
	}
}

// ReadPump discards inbound frames and unregisters on close.
func (c *Client) ReadPump(h *Hub) {
	defer func() {
		h.Unregister <- c
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Debug("WebSocket read error: %v", err)
			}
			break
		}
	}
}

// WritePump forwards queued messages to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		message, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			logger.Debug("WebSocket write error: %v", err)
			return
		}
	}
}
