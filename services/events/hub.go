package events

import (
	"sync"
	"time"
)

// Event kinds pushed to clients over the websocket.
const (
	KindBookingCreated   = "booking:created"
	KindBookingUpdated   = "booking:updated"
	KindBookingCancelled = "booking:cancelled"
	KindExpertStatus     = "expert:status"
	KindReminderDue      = "reminder:due"
)

// Event is a server-pushed message. Payload must be JSON-marshalable.
type Event struct {
	Kind      string      `json:"kind"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// Handler receives published events. Handlers must not block; slow
// consumers should hand off to their own channel.
type Handler func(Event)

// Hub fans events out to subscribers by kind. It lives outside the booking
// core: services publish plain messages, transports (websocket) subscribe.
type Hub struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
}

// NewHub creates an empty event hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[int]Handler)}
}

// Subscribe registers a handler for one event kind and returns an
// unsubscribe function.
func (h *Hub) Subscribe(kind string, handler Handler) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	if h.subs[kind] == nil {
		h.subs[kind] = make(map[int]Handler)
	}
	h.subs[kind][id] = handler

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs[kind], id)
	}
}

// Publish delivers the event to every handler subscribed to its kind.
func (h *Hub) Publish(kind string, payload interface{}) {
	evt := Event{Kind: kind, Payload: payload, Timestamp: time.Now()}

	h.mu.RLock()
	handlers := make([]Handler, 0, len(h.subs[kind]))
	for _, handler := range h.subs[kind] {
		handlers = append(handlers, handler)
	}
	h.mu.RUnlock()

	for _, handler := range handlers {
		handler(evt)
	}
}
