package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// maxPending bounds the flash queue of a single visitor
const maxPending = 10

// Event represents a Server-Sent Event
type Event struct {
	EventType string `json:"event"`
	Data      string `json:"data"`
}

// Client represents a connected SSE client
type Client struct {
	ID        string
	VisitorID string
	Events    chan Event
}

// NewClient creates a client with a buffered event channel
func NewClient(id, visitorID string) *Client {
	return &Client{
		ID:        id,
		VisitorID: visitorID,
		Events:    make(chan Event, 64),
	}
}

// flashQueue holds a visitor's undelivered toasts
type flashQueue struct {
	toasts  []Toast
	updated time.Time
}

// Hub tracks SSE clients and the toasts waiting for each visitor's next
// page render.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	pending map[string]*flashQueue
	log     *zap.Logger
	now     func() time.Time
}

// NewHub creates an empty hub
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients: make(map[string]*Client),
		pending: make(map[string]*flashQueue),
		log:     log.Named("sse"),
		now:     time.Now,
	}
}

// Register adds a new client to the hub
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client.ID] = client
	h.log.Debug("client registered",
		zap.String("client_id", client.ID),
		zap.String("visitor_id", client.VisitorID),
		zap.Int("total", len(h.clients)))
}

// Unregister removes a client from the hub and closes its channel
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.Events)
		delete(h.clients, clientID)
		h.log.Debug("client unregistered",
			zap.String("client_id", clientID),
			zap.Int("total", len(h.clients)))
	}
}

// Send pushes toast to every open stream of visitorID and reports whether
// at least one stream accepted it.
func (h *Hub) Send(visitorID string, toast Toast) bool {
	event := toast.Event()

	h.mu.RLock()
	defer h.mu.RUnlock()
	delivered := false
	for _, client := range h.clients {
		if client.VisitorID != visitorID {
			continue
		}
		select {
		case client.Events <- event:
			delivered = true
		default:
			h.log.Warn("client buffer full, skipping toast", zap.String("client_id", client.ID))
		}
	}
	return delivered
}

// Notify delivers toast live when the visitor has an open stream and
// queues it for the next render otherwise.
func (h *Hub) Notify(visitorID string, toast Toast) {
	if h.Send(visitorID, toast) {
		return
	}
	h.Flash(visitorID, toast)
}

// Flash queues toast for the visitor's next page render. The oldest toast
// is dropped once the queue is full.
func (h *Hub) Flash(visitorID string, toast Toast) {
	h.mu.Lock()
	defer h.mu.Unlock()

	q, ok := h.pending[visitorID]
	if !ok {
		q = &flashQueue{}
		h.pending[visitorID] = q
	}
	q.toasts = append(q.toasts, toast)
	if len(q.toasts) > maxPending {
		q.toasts = q.toasts[len(q.toasts)-maxPending:]
	}
	q.updated = h.now()
}

// Drain returns and clears the visitor's queued toasts
func (h *Hub) Drain(visitorID string) []Toast {
	h.mu.Lock()
	defer h.mu.Unlock()

	q, ok := h.pending[visitorID]
	if !ok {
		return nil
	}
	delete(h.pending, visitorID)
	return q.toasts
}

// Sweep drops flash queues nobody has drained for maxAge, such as those of
// visitors that never came back, and returns how many were removed.
func (h *Hub) Sweep(maxAge time.Duration) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	removed := 0
	for visitorID, q := range h.pending {
		if now.Sub(q.updated) >= maxAge {
			delete(h.pending, visitorID)
			removed++
		}
	}
	return removed
}

// PendingCount returns the number of visitors with queued toasts
func (h *Hub) PendingCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.pending)
}

// ClientCount returns the number of open streams
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
