package game

import "context"

// Service defines the interface for room and round operations
type Service interface {
	// CreateRoom creates a new room with the caller as host
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom adds a player to an existing room
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// Leave removes a connection's player from every room it belongs to
	Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error)

	// StartGame begins round 1 (host only)
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// DraftUpdate merges category values into a player's working answers
	// without submitting them
	DraftUpdate(ctx context.Context, input *DraftUpdateInput) (*DraftUpdateOutput, error)

	// SubmitAnswers stores a player's answers with a submission timestamp
	SubmitAnswers(ctx context.Context, input *SubmitAnswersInput) (*SubmitAnswersOutput, error)

	// ForceScore scores the active round if it has not been scored yet
	ForceScore(ctx context.Context, input *ForceScoreInput) (*ForceScoreOutput, error)

	// NextRound advances to the next round or ends the game (host only)
	NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error)

	// InvalidateAnswer toggles a host override on one player's one-category
	// answer and recomputes all totals (host only)
	InvalidateAnswer(ctx context.Context, input *InvalidateAnswerInput) (*InvalidateAnswerOutput, error)

	// GetRoom returns the current room snapshot
	GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error)

	// ExportAnswers produces the tabular answer log for a room
	ExportAnswers(ctx context.Context, input *ExportAnswersInput) (*ExportAnswersOutput, error)
}
