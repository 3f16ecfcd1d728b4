package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/Yunus705/alpharush/internal/models"
	"github.com/Yunus705/alpharush/internal/services/game"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 8192

	// Size of the send channel buffer
	sendBufferSize = 256
)

// Client represents a WebSocket client connection. The connection ID
// doubles as the player ID for every room the connection joins.
type Client struct {
	conn     *websocket.Conn
	hub      *Hub
	service  game.Service
	playerID string
	send     chan []byte
	done     chan struct{}
	logger   zerolog.Logger
	mu       sync.Mutex
	closed   bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, hub *Hub, service game.Service, playerID string, logger zerolog.Logger) *Client {
	return &Client{
		conn:     conn,
		hub:      hub,
		service:  service,
		playerID: playerID,
		send:     make(chan []byte, sendBufferSize),
		done:     make(chan struct{}),
		logger:   logger.With().Str("player", playerID).Logger(),
	}
}

// PlayerID returns the connection's player ID
func (c *Client) PlayerID() string {
	return c.playerID
}

// Send queues a message for delivery. Delivery never blocks; when the
// buffer is full the message is dropped.
func (c *Client) Send(message interface{}) error {
	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		c.logger.Warn().Msg("send buffer full, message dropped")
		return nil
	}
}

// Close shuts the connection down once
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection. When the
// connection drops, the player is removed from its rooms.
func (c *Client) readPump() {
	defer func() {
		c.hub.Remove(c)
		if _, err := c.service.Leave(context.Background(), &game.LeaveInput{PlayerID: c.playerID}); err != nil {
			c.logger.Error().Err(err).Msg("failed to remove player on disconnect")
		}
		c.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug().Err(err).Msg("websocket read error")
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write([]byte{'\n'})
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes an incoming message from the client
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	switch msg.Type {
	case MsgCreateRoom:
		c.handleCreateRoom(msg.Payload)
	case MsgJoinRoom:
		c.handleJoinRoom(msg.Payload)
	case MsgLeaveRoom:
		c.handleLeaveRoom()
	case MsgStartGame:
		c.handleStartGame(msg.Payload)
	case MsgDraftUpdate:
		c.handleDraftUpdate(msg.Payload)
	case MsgSubmitAnswers:
		c.handleSubmitAnswers(msg.Payload)
	case MsgForceScore:
		c.handleForceScore(msg.Payload)
	case MsgNextRound:
		c.handleNextRound(msg.Payload)
	case MsgInvalidateAnswer:
		c.handleInvalidateAnswer(msg.Payload)
	case MsgGetRoom:
		c.handleGetRoom(msg.Payload)
	case MsgPing:
		c.Send(NewServerMessage(MsgPong, nil))
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
	}
}

// handleCreateRoom handles a create_room message
func (c *Client) handleCreateRoom(raw json.RawMessage) {
	var payload CreateRoomPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.RoomID == "" || payload.Name == "" {
		c.sendError(ErrCodeInvalidMessage, "Room ID and name are required")
		return
	}

	// Subscribe before calling the service so the creation broadcast
	// reaches this connection too
	c.hub.Subscribe(payload.RoomID, c)

	out, err := c.service.CreateRoom(context.Background(), &game.CreateRoomInput{
		RoomID:   payload.RoomID,
		HostID:   c.playerID,
		HostName: payload.Name,
		Secret:   payload.Secret,
	})
	if err != nil {
		c.hub.Unsubscribe(payload.RoomID, c)
		c.sendServiceError(err)
		return
	}

	c.Send(NewServerMessage(MsgConnected, &ConnectedPayload{
		PlayerID: c.playerID,
		RoomID:   payload.RoomID,
		Room:     out.Room,
	}))
}

// handleJoinRoom handles a join_room message
func (c *Client) handleJoinRoom(raw json.RawMessage) {
	var payload JoinRoomPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.RoomID == "" || payload.Name == "" {
		c.sendError(ErrCodeInvalidMessage, "Room ID and name are required")
		return
	}

	c.hub.Subscribe(payload.RoomID, c)

	out, err := c.service.JoinRoom(context.Background(), &game.JoinRoomInput{
		RoomID:     payload.RoomID,
		PlayerID:   c.playerID,
		PlayerName: payload.Name,
		Secret:     payload.Secret,
	})
	if err != nil {
		c.hub.Unsubscribe(payload.RoomID, c)
		c.sendServiceError(err)
		return
	}

	c.Send(NewServerMessage(MsgConnected, &ConnectedPayload{
		PlayerID: c.playerID,
		RoomID:   payload.RoomID,
		Room:     out.Room,
	}))
}

// handleLeaveRoom handles a leave_room message
func (c *Client) handleLeaveRoom() {
	c.hub.Remove(c)

	out, err := c.service.Leave(context.Background(), &game.LeaveInput{PlayerID: c.playerID})
	if err != nil {
		c.sendServiceError(err)
		return
	}

	c.Send(NewServerMessage(MsgLeft, &struct {
		RoomIDs []string `json:"roomIds"`
	}{RoomIDs: out.RoomIDs}))
}

// handleStartGame handles a start_game message
func (c *Client) handleStartGame(raw json.RawMessage) {
	payload, ok := c.roomPayload(raw)
	if !ok {
		return
	}

	if _, err := c.service.StartGame(context.Background(), &game.StartGameInput{
		RoomID:   payload.RoomID,
		PlayerID: c.playerID,
	}); err != nil {
		c.sendServiceError(err)
	}
}

// handleDraftUpdate handles a draft_update message
func (c *Client) handleDraftUpdate(raw json.RawMessage) {
	var payload AnswersPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.RoomID == "" {
		c.sendError(ErrCodeInvalidMessage, "Room ID is required")
		return
	}

	if _, err := c.service.DraftUpdate(context.Background(), &game.DraftUpdateInput{
		RoomID:   payload.RoomID,
		PlayerID: c.playerID,
		Answers:  toCategoryAnswers(payload.Answers),
	}); err != nil {
		c.sendServiceError(err)
	}
}

// handleSubmitAnswers handles a submit_answers message
func (c *Client) handleSubmitAnswers(raw json.RawMessage) {
	var payload AnswersPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.RoomID == "" {
		c.sendError(ErrCodeInvalidMessage, "Room ID is required")
		return
	}

	out, err := c.service.SubmitAnswers(context.Background(), &game.SubmitAnswersInput{
		RoomID:   payload.RoomID,
		PlayerID: c.playerID,
		Answers:  toCategoryAnswers(payload.Answers),
	})
	if err != nil {
		c.sendServiceError(err)
		return
	}

	c.Send(NewServerMessage(MsgSubmitted, &struct {
		RoundScored bool `json:"roundScored"`
	}{RoundScored: out.RoundScored}))
}

// handleForceScore handles a force_score message
func (c *Client) handleForceScore(raw json.RawMessage) {
	payload, ok := c.roomPayload(raw)
	if !ok {
		return
	}

	if _, err := c.service.ForceScore(context.Background(), &game.ForceScoreInput{
		RoomID:   payload.RoomID,
		PlayerID: c.playerID,
	}); err != nil {
		c.sendServiceError(err)
	}
}

// handleNextRound handles a next_round message
func (c *Client) handleNextRound(raw json.RawMessage) {
	payload, ok := c.roomPayload(raw)
	if !ok {
		return
	}

	if _, err := c.service.NextRound(context.Background(), &game.NextRoundInput{
		RoomID:   payload.RoomID,
		PlayerID: c.playerID,
	}); err != nil {
		c.sendServiceError(err)
	}
}

// handleInvalidateAnswer handles an invalidate_answer message
func (c *Client) handleInvalidateAnswer(raw json.RawMessage) {
	var payload InvalidateAnswerPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.RoomID == "" || payload.TargetPlayerID == "" {
		c.sendError(ErrCodeInvalidMessage, "Room ID and target player ID are required")
		return
	}

	if _, err := c.service.InvalidateAnswer(context.Background(), &game.InvalidateAnswerInput{
		RoomID:   payload.RoomID,
		PlayerID: c.playerID,
		TargetID: payload.TargetPlayerID,
		Round:    payload.Round,
		Category: models.Category(payload.Category),
	}); err != nil {
		c.sendServiceError(err)
	}
}

// handleGetRoom handles a get_room message
func (c *Client) handleGetRoom(raw json.RawMessage) {
	payload, ok := c.roomPayload(raw)
	if !ok {
		return
	}

	out, err := c.service.GetRoom(context.Background(), &game.GetRoomInput{RoomID: payload.RoomID})
	if err != nil {
		c.sendServiceError(err)
		return
	}

	c.Send(NewServerMessage(MessageType(game.EventRoomUpdate), out.Room))
}

// roomPayload decodes the common room-scoped payload
func (c *Client) roomPayload(raw json.RawMessage) (*RoomPayload, bool) {
	var payload RoomPayload
	if err := json.Unmarshal(raw, &payload); err != nil || payload.RoomID == "" {
		c.sendError(ErrCodeInvalidMessage, "Room ID is required")
		return nil, false
	}
	return &payload, true
}

// sendServiceError maps a service error to a wire error code
func (c *Client) sendServiceError(err error) {
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		c.sendError(ErrCodeRoomNotFound, "Room not found")
	case errors.Is(err, game.ErrDuplicateRoom):
		c.sendError(ErrCodeRoomExists, "Room already exists")
	case errors.Is(err, game.ErrRoomFull):
		c.sendError(ErrCodeRoomFull, "Room is full")
	case errors.Is(err, game.ErrWrongSecret):
		c.sendError(ErrCodeWrongSecret, "Wrong room secret")
	case errors.Is(err, game.ErrNotHost):
		c.sendError(ErrCodeNotHost, "Only the host can do that")
	case errors.Is(err, game.ErrInvalidState):
		c.sendError(ErrCodeInvalidAction, "Action not allowed right now")
	case errors.Is(err, game.ErrPlayerNotFound):
		c.sendError(ErrCodePlayerNotFound, "Player not found")
	case errors.Is(err, game.ErrRoundNotFound):
		c.sendError(ErrCodeRoundNotFound, "Round not found")
	case errors.Is(err, game.ErrInvalidCategory):
		c.sendError(ErrCodeInvalidCategory, "Unknown category")
	default:
		c.logger.Error().Err(err).Msg("unexpected service error")
		c.sendError(ErrCodeInternalError, "Internal error")
	}
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	c.Send(NewServerMessage(MsgError, &ErrorPayload{
		Code:    code,
		Message: message,
	}))
}

// toCategoryAnswers converts wire answer keys to typed categories. Unknown
// keys pass through so the service can reject them uniformly.
func toCategoryAnswers(answers map[string]string) map[models.Category]string {
	converted := make(map[models.Category]string, len(answers))
	for key, value := range answers {
		converted[models.Category(key)] = value
	}
	return converted
}
