// Package sse streams spin lifecycle events to browser clients.
package sse

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BrandishSpin_Go/internal/logger"
)

// Event is one message sent over SSE
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Player    string      `json:"player,omitempty"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a connected SSE stream
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil means all event types
	Player       string          // empty means all players
}

func (c *Client) wants(e Event) bool {
	if c.EventFilter != nil && !c.EventFilter[e.Type] {
		return false
	}
	return c.Player == "" || c.Player == e.Player
}

// Hub fans broadcast events out to registered clients
type Hub struct {
	clients    map[string]*Client
	broadcast  chan Event
	register   chan *Client
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// NewHub creates a new SSE Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, BroadcastBufferSize),
		register:   make(chan *Client, ClientChannelBuffer),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop ends the broadcast loop and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.EventChannel)
		}
		h.clients = make(map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				close(client.EventChannel)
				delete(h.clients, clientID)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.clients {
				if !client.wants(event) {
					continue
				}
				// slow clients miss events rather than stall the hub
				select {
				case client.EventChannel <- event:
				default:
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client that receives eventTypes (all when empty) for
// player (all when empty)
func (h *Hub) Register(eventTypes []string, player string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
		Player:       player,
	}

	for _, t := range eventTypes {
		if t = strings.TrimSpace(t); t == "" {
			continue
		}
		if client.EventFilter == nil {
			client.EventFilter = make(map[string]bool)
		}
		client.EventFilter[t] = true
	}

	select {
	case h.register <- client:
	case <-h.shutdown:
		close(client.EventChannel)
	}
	return client
}

// Unregister removes a client from the hub
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Broadcast queues an event for every interested client without blocking
func (h *Hub) Broadcast(eventType, player string, payload interface{}) {
	event := Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Player:    player,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}

	select {
	case h.broadcast <- event:
	default:
		logger.Warn(LogMsgBroadcastDropped, "event_type", eventType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders "id", "event" and "data" lines for one event
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	if event.ID != "" {
		b.WriteString("id: " + event.ID + "\n")
	}
	b.WriteString("event: " + event.Type + "\n")
	b.WriteString("data: " + string(data) + "\n\n")
	return []byte(b.String()), nil
}
