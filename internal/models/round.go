package models

// RoundState represents whether a round is still accepting answers or has
// been scored
type RoundState string

const (
	// RoundStateOpen indicates no score has been computed for the round yet
	RoundStateOpen RoundState = "open"

	// RoundStateScored indicates the round's points have been computed and
	// applied; scoring it again is a no-op
	RoundStateScored RoundState = "scored"
)

// RoundAnswers is the answer set for one (room, round) pair
type RoundAnswers struct {
	// RoomID is the room the round belongs to
	RoomID string

	// Round is the 1-based round number
	Round int

	// Letter is the letter drawn for the round
	Letter string

	// State tracks whether the round is open or already scored
	State RoundState

	// Submissions maps player ID to that player's answers for the round
	Submissions map[string]*Submission
}

// NewRoundAnswers creates an empty open answer set for a round.
func NewRoundAnswers(roomID string, round int, letter string) *RoundAnswers {
	return &RoundAnswers{
		RoomID:      roomID,
		Round:       round,
		Letter:      letter,
		State:       RoundStateOpen,
		Submissions: make(map[string]*Submission),
	}
}

// Submission returns the player's entry for the round, creating an empty
// one if the player has not written anything yet.
func (r *RoundAnswers) Submission(playerID string) *Submission {
	sub, ok := r.Submissions[playerID]
	if !ok {
		sub = NewSubmission(playerID)
		r.Submissions[playerID] = sub
	}
	return sub
}

// SubmittedCount returns the number of distinct players with an explicit
// submission in this round, including players who have since left.
func (r *RoundAnswers) SubmittedCount() int {
	count := 0
	for _, sub := range r.Submissions {
		if sub.HasSubmitted() {
			count++
		}
	}
	return count
}

// IsScored reports whether the round has already been scored.
func (r *RoundAnswers) IsScored() bool {
	return r.State == RoundStateScored
}
