package answers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Yunus705/alpharush/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	answersKeyPrefix    = "answers:"
	roomRoundsKeyPrefix = "room_rounds:"
)

// ErrRoundNotFound is returned when no answer set exists for a round
var ErrRoundNotFound = errors.New("round answers not found")

// Config holds configuration for the Redis answers repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed answers repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func answersKey(roomID string, round int) string {
	return fmt.Sprintf("%s%s:%d", answersKeyPrefix, roomID, round)
}

// SaveRoundAnswers persists one round's answer set to Redis
func (r *redisRepository) SaveRoundAnswers(ctx context.Context, input *SaveRoundAnswersInput) error {
	if input == nil || input.Answers == nil {
		return errors.New("input and answers cannot be nil")
	}

	answers := input.Answers

	if answers.RoomID == "" {
		return errors.New("room ID cannot be empty")
	}

	if answers.Round < 1 {
		return errors.New("round must be positive")
	}

	// Marshal the answer set to JSON
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal round answers: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	pipe.Set(ctx, answersKey(answers.RoomID, answers.Round), answersJSON, 0)

	// Index the round under its room, ordered by round number
	roomKey := fmt.Sprintf("%s%s", roomRoundsKeyPrefix, answers.RoomID)
	pipe.ZAdd(ctx, roomKey, redis.Z{
		Score:  float64(answers.Round),
		Member: fmt.Sprintf("%d", answers.Round),
	})

	// Execute the transaction
	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save round answers: %w", err)
	}

	return nil
}

// GetRoundAnswers retrieves one round's answer set from Redis
func (r *redisRepository) GetRoundAnswers(ctx context.Context, input *GetRoundAnswersInput) (*models.RoundAnswers, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	answersJSON, err := r.client.Get(ctx, answersKey(input.RoomID, input.Round)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrRoundNotFound
		}
		return nil, fmt.Errorf("failed to get round answers: %w", err)
	}

	var answers models.RoundAnswers
	if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round answers: %w", err)
	}

	return &answers, nil
}

// GetRoundAnswersForRoom retrieves a room's full answer log from Redis
func (r *redisRepository) GetRoundAnswersForRoom(ctx context.Context, input *GetRoundAnswersForRoomInput) (*GetRoundAnswersForRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomRoundsKeyPrefix, input.RoomID)
	roundMembers, err := r.client.ZRange(ctx, roomKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get round index: %w", err)
	}

	if len(roundMembers) == 0 {
		return &GetRoundAnswersForRoomOutput{
			Rounds: []*models.RoundAnswers{},
		}, nil
	}

	// Fetch all rounds in one pipeline, index order is round order
	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, 0, len(roundMembers))

	for _, member := range roundMembers {
		commands = append(commands, pipe.Get(ctx, fmt.Sprintf("%s%s:%s", answersKeyPrefix, input.RoomID, member)))
	}

	_, err = pipe.Exec(ctx)
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get round answers: %w", err)
	}

	rounds := make([]*models.RoundAnswers, 0, len(commands))
	for _, cmd := range commands {
		answersJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Round was deleted between reading the index and the fetch
				continue
			}
			return nil, fmt.Errorf("failed to get round answers: %w", err)
		}

		var answers models.RoundAnswers
		if err := json.Unmarshal([]byte(answersJSON), &answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal round answers: %w", err)
		}

		rounds = append(rounds, &answers)
	}

	return &GetRoundAnswersForRoomOutput{
		Rounds: rounds,
	}, nil
}

// DeleteRoundAnswersForRoom removes a room's entire answer log from Redis
func (r *redisRepository) DeleteRoundAnswersForRoom(ctx context.Context, input *DeleteRoundAnswersForRoomInput) error {
	if input == nil || input.RoomID == "" {
		return errors.New("input and room ID cannot be empty")
	}

	roomKey := fmt.Sprintf("%s%s", roomRoundsKeyPrefix, input.RoomID)
	roundMembers, err := r.client.ZRange(ctx, roomKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get round index: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, member := range roundMembers {
		pipe.Del(ctx, fmt.Sprintf("%s%s:%s", answersKeyPrefix, input.RoomID, member))
	}
	pipe.Del(ctx, roomKey)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete round answers: %w", err)
	}

	return nil
}
