package adaptor

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/ponyo877/roomchat/server/domain"
	"github.com/samber/lo"
)

// Hub keeps every open connection's sink and the transport-level room
// group it belongs to. Deliveries never block: a full sink loses the event.
type Hub struct {
	log *slog.Logger

	mu     sync.RWMutex
	sinks  map[string]chan<- domain.Outbound
	roomOf map[string]string
	rooms  map[string]map[string]struct{}
}

var _ domain.Broadcaster = (*Hub)(nil)

func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		log:    log,
		sinks:  make(map[string]chan<- domain.Outbound),
		roomOf: make(map[string]string),
		rooms:  make(map[string]map[string]struct{}),
	}
}

func (h *Hub) Register(id string, sink chan<- domain.Outbound) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if old, exists := h.sinks[id]; exists {
		close(old)
	}
	h.sinks[id] = sink
}

// Unregister closes the connection's sink and drops its room group.
func (h *Hub) Unregister(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.leave(id)
	if sink, exists := h.sinks[id]; exists {
		close(sink)
		delete(h.sinks, id)
	}
}

// Subscribe moves the connection into room, leaving its previous group.
func (h *Hub) Subscribe(id, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, exists := h.sinks[id]; !exists {
		h.log.Debug("Subscribe for unknown connection", "connection", id, "room", room)
		return
	}
	h.leave(id)

	members, exists := h.rooms[room]
	if !exists {
		members = make(map[string]struct{})
		h.rooms[room] = members
	}
	members[id] = struct{}{}
	h.roomOf[id] = room
}

func (h *Hub) SendTo(id string, event domain.EventName, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	h.send(id, domain.Outbound{Event: event, Payload: payload})
}

// SendToRoom delivers to every member of room except the given connection.
func (h *Hub) SendToRoom(room, except string, event domain.EventName, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := domain.Outbound{Event: event, Payload: payload}
	for id := range h.rooms[room] {
		if id == except {
			continue
		}
		h.send(id, out)
	}
}

func (h *Hub) SendToAll(event domain.EventName, payload any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := domain.Outbound{Event: event, Payload: payload}
	for id := range h.sinks {
		h.send(id, out)
	}
}

func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.sinks)
}

// Members lists the connections subscribed to room, sorted.
func (h *Hub) Members(room string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members := lo.Keys(h.rooms[room])
	slices.Sort(members)
	return members
}

func (h *Hub) send(id string, out domain.Outbound) {
	sink, exists := h.sinks[id]
	if !exists {
		return
	}
	select {
	case sink <- out:
	default:
		h.log.Warn("Dropping outbound event, sink is full", "connection", id, "event", out.Event)
	}
}

// leave must be called with mu held.
func (h *Hub) leave(id string) {
	room, exists := h.roomOf[id]
	if !exists {
		return
	}
	delete(h.roomOf, id)

	members := h.rooms[room]
	delete(members, id)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}
