package ws

import (
	"encoding/json"
	"time"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgCreateRoom       MessageType = "create_room"
	MsgJoinRoom         MessageType = "join_room"
	MsgLeaveRoom        MessageType = "leave_room"
	MsgStartGame        MessageType = "start_game"
	MsgDraftUpdate      MessageType = "draft_update"
	MsgSubmitAnswers    MessageType = "submit_answers"
	MsgForceScore       MessageType = "force_score"
	MsgNextRound        MessageType = "next_round"
	MsgInvalidateAnswer MessageType = "invalidate_answer"
	MsgGetRoom          MessageType = "get_room"
	MsgPing             MessageType = "ping"
)

// Server → Client message types. Room events broadcast by the game service
// (room_update, round_started, player_submitted, round_scored, game_over)
// are forwarded under their own type strings.
const (
	MsgConnected MessageType = "connected"
	MsgError     MessageType = "error"
	MsgPong      MessageType = "pong"
	MsgSubmitted MessageType = "submitted"
	MsgLeft      MessageType = "left"
)

// ClientMessage represents a message from client to server. The payload is
// kept raw so each handler can decode its own shape.
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// CreateRoomPayload is the payload for create_room
type CreateRoomPayload struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
	Secret string `json:"secret,omitempty"`
}

// JoinRoomPayload is the payload for join_room
type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
	Name   string `json:"name"`
	Secret string `json:"secret,omitempty"`
}

// AnswersPayload is the payload for draft_update and submit_answers
type AnswersPayload struct {
	RoomID  string            `json:"roomId"`
	Answers map[string]string `json:"answers"`
}

// RoomPayload is the payload for room-scoped actions that carry nothing else
type RoomPayload struct {
	RoomID string `json:"roomId"`
}

// InvalidateAnswerPayload is the payload for invalidate_answer
type InvalidateAnswerPayload struct {
	RoomID         string `json:"roomId"`
	TargetPlayerID string `json:"targetPlayerId"`
	Round          int    `json:"round"`
	Category       string `json:"category"`
}

// Server message payloads

// ConnectedPayload is the payload for connected; sent after a successful
// create_room or join_room so the client learns its player ID
type ConnectedPayload struct {
	PlayerID string      `json:"playerId"`
	RoomID   string      `json:"roomId"`
	Room     interface{} `json:"room"`
}

// ErrorPayload is the payload for error messages
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage  = "INVALID_MESSAGE"
	ErrCodeRoomNotFound    = "ROOM_NOT_FOUND"
	ErrCodeRoomExists      = "ROOM_EXISTS"
	ErrCodeRoomFull        = "ROOM_FULL"
	ErrCodeWrongSecret     = "WRONG_SECRET"
	ErrCodeNotHost         = "NOT_HOST"
	ErrCodeInvalidAction   = "INVALID_ACTION"
	ErrCodePlayerNotFound  = "PLAYER_NOT_FOUND"
	ErrCodeRoundNotFound   = "ROUND_NOT_FOUND"
	ErrCodeInvalidCategory = "INVALID_CATEGORY"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)
