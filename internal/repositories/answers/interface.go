package answers

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/Yunus705/alpharush/internal/repositories/answers Repository

import (
	"context"

	"github.com/Yunus705/alpharush/internal/models"
)

// Repository defines the interface for the durable answer log
type Repository interface {
	// SaveRoundAnswers persists one round's answer set
	SaveRoundAnswers(ctx context.Context, input *SaveRoundAnswersInput) error

	// GetRoundAnswers retrieves the answer set for one (room, round) pair
	GetRoundAnswers(ctx context.Context, input *GetRoundAnswersInput) (*models.RoundAnswers, error)

	// GetRoundAnswersForRoom retrieves every stored round for a room in
	// round order
	GetRoundAnswersForRoom(ctx context.Context, input *GetRoundAnswersForRoomInput) (*GetRoundAnswersForRoomOutput, error)

	// DeleteRoundAnswersForRoom removes all answer sets for a room
	DeleteRoundAnswersForRoom(ctx context.Context, input *DeleteRoundAnswersForRoomInput) error
}
