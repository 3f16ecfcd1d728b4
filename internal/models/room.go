package models

import (
	"time"
)

// Room represents a single game instance with its own players, round
// counter and letter history
type Room struct {
	// ID is the human-chosen room identifier
	ID string

	// Secret is the optional access secret required to join, empty if open
	Secret string

	// HostID is the identifier of the current host player
	HostID string

	// Players holds the players in join order; the first joiner is the
	// host at creation
	Players []*Player

	// Round is the current round number: 0 before the game starts,
	// 1..26 while active, above 26 once the game is over
	Round int

	// UsedLetters is the ordered sequence of letters drawn so far; a
	// letter never appears twice in a room's lifetime
	UsedLetters []string

	// CreatedAt is when the room was created
	CreatedAt time.Time

	// UpdatedAt is when the room was last updated
	UpdatedAt time.Time
}

// Player returns the player with the given ID, or nil if absent.
func (r *Room) Player(playerID string) *Player {
	for _, p := range r.Players {
		if p.ID == playerID {
			return p
		}
	}
	return nil
}

// HasPlayer reports whether the given player is a member of the room.
func (r *Room) HasPlayer(playerID string) bool {
	return r.Player(playerID) != nil
}

// RemovePlayer removes the player with the given ID, preserving join
// order for everyone else. It reports whether a player was removed.
func (r *Room) RemovePlayer(playerID string) bool {
	for i, p := range r.Players {
		if p.ID == playerID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			return true
		}
	}
	return false
}

// IsHost reports whether the given player is the current host.
func (r *Room) IsHost(playerID string) bool {
	return r.HostID == playerID
}

// CurrentLetter returns the letter of the round in progress, or the
// empty string before the first round starts.
func (r *Room) CurrentLetter() string {
	if len(r.UsedLetters) == 0 {
		return ""
	}
	return r.UsedLetters[len(r.UsedLetters)-1]
}

// Started reports whether the first round has begun.
func (r *Room) Started() bool {
	return r.Round > 0
}

// Finished reports whether the game has played past its final round.
func (r *Room) Finished(totalRounds int) bool {
	return r.Round > totalRounds
}
