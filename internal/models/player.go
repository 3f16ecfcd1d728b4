package models

import (
	"time"
)

// Player represents a participant in a room
type Player struct {
	// ID is the connection-scoped identifier assigned by the gateway
	ID string

	// Name is the display name chosen by the player
	Name string

	// Score is the player's cumulative score across all scored rounds
	Score int

	// LastSubmission is when the player last explicitly submitted answers,
	// nil if they never have
	LastSubmission *time.Time

	// JoinedAt is when the player joined the room
	JoinedAt time.Time
}
