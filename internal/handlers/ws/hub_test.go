package ws

import (
	"encoding/json"
	"testing"

	"github.com/Yunus705/alpharush/internal/services/game"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queuedClient builds a client with only the send path wired, enough to
// observe what the hub delivers
func queuedClient(playerID string) *Client {
	return &Client{
		playerID: playerID,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		logger:   zerolog.Nop(),
	}
}

func receive(t *testing.T, c *Client) *ServerMessage {
	t.Helper()

	select {
	case data := <-c.send:
		var msg ServerMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		return &msg
	default:
		t.Fatal("no message queued")
		return nil
	}
}

func TestBroadcastReachesSubscribers(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	alice := queuedClient("conn-alice")
	bob := queuedClient("conn-bob")
	outsider := queuedClient("conn-carol")

	hub.Subscribe("ABC1", alice)
	hub.Subscribe("ABC1", bob)
	hub.Subscribe("XYZ9", outsider)

	hub.Broadcast("ABC1", &game.Event{
		Type:    game.EventRoundStarted,
		RoomID:  "ABC1",
		Payload: &game.RoundStartedPayload{Round: 1, Letter: "B", TotalRounds: 26},
	})

	for _, c := range []*Client{alice, bob} {
		msg := receive(t, c)
		assert.Equal(t, MessageType("round_started"), msg.Type)
		assert.NotEmpty(t, msg.Timestamp)
	}

	assert.Empty(t, outsider.send)
}

func TestBroadcastToEmptyRoom(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	hub.Broadcast("nobody-home", &game.Event{Type: game.EventRoomUpdate, RoomID: "nobody-home"})
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	alice := queuedClient("conn-alice")

	hub.Subscribe("ABC1", alice)
	hub.Unsubscribe("ABC1", alice)

	hub.Broadcast("ABC1", &game.Event{Type: game.EventRoomUpdate, RoomID: "ABC1"})

	assert.Empty(t, alice.send)
}

func TestRemoveDropsClientFromAllRooms(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	alice := queuedClient("conn-alice")
	bob := queuedClient("conn-bob")

	hub.Subscribe("ABC1", alice)
	hub.Subscribe("XYZ9", alice)
	hub.Subscribe("ABC1", bob)

	hub.Remove(alice)

	hub.Broadcast("ABC1", &game.Event{Type: game.EventRoomUpdate, RoomID: "ABC1"})
	hub.Broadcast("XYZ9", &game.Event{Type: game.EventRoomUpdate, RoomID: "XYZ9"})

	assert.Empty(t, alice.send)
	assert.Len(t, bob.send, 1)
}

func TestSendDropsWhenBufferFull(t *testing.T) {
	c := queuedClient("conn-alice")

	for i := 0; i < sendBufferSize+10; i++ {
		require.NoError(t, c.Send(NewServerMessage(MsgPong, nil)))
	}

	assert.Len(t, c.send, sendBufferSize)
}
