package ws

import (
	"sync"

	"github.com/Yunus705/alpharush/internal/services/game"
	"github.com/rs/zerolog"
)

// Hub tracks which clients are subscribed to which rooms and fans room
// events out to them. It implements game.Broadcaster; sends never block
// because each client buffers and drops on overflow.
type Hub struct {
	mu     sync.RWMutex
	rooms  map[string]map[*Client]struct{}
	logger zerolog.Logger
}

// NewHub creates an empty hub
func NewHub(logger zerolog.Logger) *Hub {
	return &Hub{
		rooms:  make(map[string]map[*Client]struct{}),
		logger: logger,
	}
}

// Subscribe adds a client to a room's recipient set
func (h *Hub) Subscribe(roomID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.rooms[roomID]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[roomID] = members
	}
	members[client] = struct{}{}
}

// Unsubscribe removes a client from one room's recipient set
func (h *Hub) Unsubscribe(roomID string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(roomID, client)
}

// Remove drops a client from every room it is subscribed to
func (h *Hub) Remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for roomID := range h.rooms {
		h.removeLocked(roomID, client)
	}
}

func (h *Hub) removeLocked(roomID string, client *Client) {
	members, ok := h.rooms[roomID]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.rooms, roomID)
	}
}

// Broadcast forwards a room event to every subscribed client
func (h *Hub) Broadcast(roomID string, event *game.Event) {
	msg := NewServerMessage(MessageType(event.Type), event.Payload)

	h.mu.RLock()
	recipients := make([]*Client, 0, len(h.rooms[roomID]))
	for client := range h.rooms[roomID] {
		recipients = append(recipients, client)
	}
	h.mu.RUnlock()

	for _, client := range recipients {
		if err := client.Send(msg); err != nil {
			h.logger.Warn().Err(err).Str("room", roomID).Str("player", client.PlayerID()).Msg("failed to deliver event")
		}
	}
}
