package game

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Yunus705/alpharush/internal/models"
	answersRepo "github.com/Yunus705/alpharush/internal/repositories/answers"
	roomRepo "github.com/Yunus705/alpharush/internal/repositories/room"
)

// ExportAnswers produces one row per (round, player, category) from the
// durable answer log, with points recomputed under the same validation
// rules as live scoring. It reads the repositories only, so it works for
// rooms no longer held in memory and is unaffected by live session state.
func (s *service) ExportAnswers(ctx context.Context, input *ExportAnswersInput) (*ExportAnswersOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	room, err := s.config.RoomRepo.GetRoom(ctx, &roomRepo.GetRoomInput{RoomID: input.RoomID})
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	log, err := s.config.AnswerRepo.GetRoundAnswersForRoom(ctx, &answersRepo.GetRoundAnswersForRoomInput{
		RoomID: input.RoomID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load answer log: %w", err)
	}

	rows := make([]ExportRow, 0, len(log.Rounds)*len(room.Players)*4)

	for _, round := range log.Rounds {
		result := s.config.Scorer.ScoreRound(round)

		for _, playerID := range exportPlayerOrder(room, round) {
			sub := round.Submissions[playerID]

			playerName := playerID
			if player := room.Player(playerID); player != nil {
				playerName = player.Name
			}

			for _, category := range models.Categories() {
				rows = append(rows, ExportRow{
					Round:       round.Round,
					Letter:      round.Letter,
					PlayerID:    playerID,
					PlayerName:  playerName,
					Category:    category,
					Answer:      sub.Answers[category],
					Invalidated: sub.Invalidated[category],
					Points:      result.PointsFor(playerID, category),
				})
			}
		}
	}

	return &ExportAnswersOutput{Rows: rows}, nil
}

// exportPlayerOrder lists a round's players deterministically: current
// members in join order, then departed players sorted by ID.
func exportPlayerOrder(room *models.Room, round *models.RoundAnswers) []string {
	order := make([]string, 0, len(round.Submissions))
	seen := make(map[string]bool, len(round.Submissions))

	for _, p := range room.Players {
		if _, ok := round.Submissions[p.ID]; ok {
			order = append(order, p.ID)
			seen[p.ID] = true
		}
	}

	departed := make([]string, 0)
	for playerID := range round.Submissions {
		if !seen[playerID] {
			departed = append(departed, playerID)
		}
	}
	sort.Strings(departed)

	return append(order, departed...)
}
