package answers

import "github.com/Yunus705/alpharush/internal/models"

// SaveRoundAnswersInput contains parameters for persisting a round's answers
type SaveRoundAnswersInput struct {
	Answers *models.RoundAnswers
}

// GetRoundAnswersInput contains parameters for retrieving one round's answers
type GetRoundAnswersInput struct {
	RoomID string
	Round  int
}

// GetRoundAnswersForRoomInput contains parameters for retrieving a room's
// full answer log
type GetRoundAnswersForRoomInput struct {
	RoomID string
}

// GetRoundAnswersForRoomOutput contains a room's answer log in round order
type GetRoundAnswersForRoomOutput struct {
	Rounds []*models.RoundAnswers
}

// DeleteRoundAnswersForRoomInput contains parameters for clearing a room's
// answer log
type DeleteRoundAnswersForRoomInput struct {
	RoomID string
}
