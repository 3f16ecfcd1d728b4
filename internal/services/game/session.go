package game

import (
	"sync"
	"time"

	"github.com/Yunus705/alpharush/internal/models"
)

// session owns one room's live state. All actions addressed to the room
// are serialized through mu, so the round state machine and the scored
// marker never race; different rooms never share a session.
type session struct {
	mu sync.Mutex

	// room is the authoritative in-memory record
	room *models.Room

	// ledger maps round number to that round's answer set, retained for
	// the room's lifetime for invalidation recompute and export
	ledger map[int]*models.RoundAnswers

	// graceTimer force-scores a lagging round; nil while unarmed
	graceTimer *time.Timer
}

func newSession(room *models.Room) *session {
	return &session{
		room:   room,
		ledger: make(map[int]*models.RoundAnswers),
	}
}

// currentRound returns the answer set of the round in progress, or nil.
// Caller must hold mu.
func (s *session) currentRound() *models.RoundAnswers {
	return s.ledger[s.room.Round]
}

// armGrace starts the grace countdown unless one is already running.
// Caller must hold mu.
func (s *session) armGrace(d time.Duration, fire func()) {
	if s.graceTimer != nil {
		return
	}
	s.graceTimer = time.AfterFunc(d, fire)
}

// stopGrace cancels a pending grace countdown. Caller must hold mu.
func (s *session) stopGrace() {
	if s.graceTimer != nil {
		s.graceTimer.Stop()
		s.graceTimer = nil
	}
}
