package game

import (
	"github.com/Yunus705/alpharush/internal/models"
)

// EventType identifies a broadcast event emitted to a room's members
type EventType string

const (
	// EventRoomUpdate carries a full room snapshot after any mutation
	EventRoomUpdate EventType = "room_update"

	// EventRoundStarted announces a new round and its letter
	EventRoundStarted EventType = "round_started"

	// EventPlayerSubmitted announces that a player submitted, without the
	// submitted content
	EventPlayerSubmitted EventType = "player_submitted"

	// EventRoundScored carries a round's points, updated totals and the
	// full submissions for post-round review
	EventRoundScored EventType = "round_scored"

	// EventGameOver carries the final standings
	EventGameOver EventType = "game_over"
)

// Event is a message broadcast to every member of a room
type Event struct {
	Type    EventType   `json:"type"`
	RoomID  string      `json:"roomId"`
	Payload interface{} `json:"payload,omitempty"`
}

// Broadcaster delivers events to all connected members of a room. The
// transport layer implements it; delivery must not block the caller.
type Broadcaster interface {
	Broadcast(roomID string, event *Event)
}

// PlayerInfo is the public view of a player inside a snapshot
type PlayerInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Score     int    `json:"score"`
	IsHost    bool   `json:"isHost"`
	Submitted bool   `json:"submitted"`
}

// RoomSnapshot is the full public room state sent with room_update events
type RoomSnapshot struct {
	RoomID      string       `json:"roomId"`
	HostID      string       `json:"hostId"`
	Players     []PlayerInfo `json:"players"`
	Round       int          `json:"round"`
	Letter      string       `json:"letter,omitempty"`
	UsedLetters []string     `json:"usedLetters"`
	TotalRounds int          `json:"totalRounds"`
	State       string       `json:"state"`
}

// RoundStartedPayload is sent when a round begins
type RoundStartedPayload struct {
	Round       int    `json:"round"`
	Letter      string `json:"letter"`
	TotalRounds int    `json:"totalRounds"`
}

// PlayerSubmittedPayload is sent when a player submits; it is content-free
// so other players cannot infer answers
type PlayerSubmittedPayload struct {
	PlayerID string `json:"playerId"`
	Round    int    `json:"round"`
}

// SubmissionView is one player's answers as revealed after scoring
type SubmissionView struct {
	PlayerID    string                     `json:"playerId"`
	PlayerName  string                     `json:"playerName"`
	Answers     map[models.Category]string `json:"answers"`
	Invalidated map[models.Category]bool   `json:"invalidated"`
}

// RoundScoredPayload is sent when a round is scored or rescored
type RoundScoredPayload struct {
	Round       int              `json:"round"`
	Letter      string           `json:"letter"`
	Points      map[string]int   `json:"points"`
	Totals      map[string]int   `json:"totals"`
	Submissions []SubmissionView `json:"submissions"`
}

// Standing is one row of the final ranking
type Standing struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// GameOverPayload is sent once the final round has been played
type GameOverPayload struct {
	Standings []Standing `json:"standings"`
}
