package game

import (
	"time"

	"github.com/Yunus705/alpharush/internal/common/clock"
	"github.com/Yunus705/alpharush/internal/letters"
	"github.com/Yunus705/alpharush/internal/models"
	answersRepo "github.com/Yunus705/alpharush/internal/repositories/answers"
	roomRepo "github.com/Yunus705/alpharush/internal/repositories/room"
	"github.com/Yunus705/alpharush/internal/scoring"
	"github.com/rs/zerolog"
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players per room
	MaxPlayers int

	// Total rounds per game, capped by the 26-letter alphabet
	TotalRounds int

	// How long after the first submission before the round is force-scored;
	// zero or negative disables the server-side timer
	GraceDuration time.Duration

	// Repository dependencies
	RoomRepo   roomRepo.Repository
	AnswerRepo answersRepo.Repository

	// Service dependencies
	Allocator   letters.Allocator
	Scorer      *scoring.Scorer
	Clock       clock.Clock
	Broadcaster Broadcaster

	Logger zerolog.Logger
}

// CreateRoomInput contains parameters for creating a new room
type CreateRoomInput struct {
	// RoomID is the human-chosen room identifier
	RoomID string

	// HostID is the connection identifier of the creating player
	HostID string

	// HostName is the display name of the creating player
	HostName string

	// Secret optionally locks the room
	Secret string
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	Room *RoomSnapshot
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	RoomID     string
	PlayerID   string
	PlayerName string
	Secret     string
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	Room *RoomSnapshot
}

// LeaveInput contains parameters for removing a connection's player
type LeaveInput struct {
	PlayerID string
}

// LeaveOutput contains the result of leaving
type LeaveOutput struct {
	// RoomIDs lists the rooms the player was removed from
	RoomIDs []string
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	RoomID   string
	PlayerID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Round  int
	Letter string
}

// DraftUpdateInput contains a player's partial answer update
type DraftUpdateInput struct {
	RoomID   string
	PlayerID string
	Answers  map[models.Category]string
}

// DraftUpdateOutput contains the result of a draft update
type DraftUpdateOutput struct{}

// SubmitAnswersInput contains a player's explicit submission
type SubmitAnswersInput struct {
	RoomID   string
	PlayerID string
	Answers  map[models.Category]string
}

// SubmitAnswersOutput contains the result of a submission
type SubmitAnswersOutput struct {
	// RoundScored is true if this submission completed the round and
	// triggered scoring
	RoundScored bool
}

// ForceScoreInput contains parameters for force-scoring the active round
type ForceScoreInput struct {
	RoomID   string
	PlayerID string
}

// ForceScoreOutput contains the result of a force-score request
type ForceScoreOutput struct {
	// AlreadyScored is true when the round had been scored before this
	// call; the request is absorbed silently
	AlreadyScored bool
}

// NextRoundInput contains parameters for advancing the round
type NextRoundInput struct {
	RoomID   string
	PlayerID string
}

// NextRoundOutput contains the result of advancing the round
type NextRoundOutput struct {
	Round    int
	Letter   string
	GameOver bool
}

// InvalidateAnswerInput contains parameters for a host invalidation toggle
type InvalidateAnswerInput struct {
	RoomID string

	// PlayerID is the caller, who must be the host
	PlayerID string

	// TargetID is the player whose answer is toggled
	TargetID string

	Round    int
	Category models.Category
}

// InvalidateAnswerOutput contains the result of an invalidation toggle
type InvalidateAnswerOutput struct {
	// Invalidated is the flag's new state
	Invalidated bool
}

// GetRoomInput contains parameters for reading a room snapshot
type GetRoomInput struct {
	RoomID string
}

// GetRoomOutput contains a room snapshot
type GetRoomOutput struct {
	Room *RoomSnapshot
}

// ExportAnswersInput contains parameters for exporting a room's answer log
type ExportAnswersInput struct {
	RoomID string
}

// ExportRow is one line of the tabular export: one (round, player,
// category) cell with its recomputed points
type ExportRow struct {
	Round       int             `json:"round"`
	Letter      string          `json:"letter"`
	PlayerID    string          `json:"playerId"`
	PlayerName  string          `json:"playerName"`
	Category    models.Category `json:"category"`
	Answer      string          `json:"answer"`
	Invalidated bool            `json:"invalidated"`
	Points      int             `json:"points"`
}

// ExportAnswersOutput contains the tabular answer log
type ExportAnswersOutput struct {
	Rows []ExportRow
}
