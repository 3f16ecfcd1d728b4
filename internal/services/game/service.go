package game

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Yunus705/alpharush/internal/common/clock"
	"github.com/Yunus705/alpharush/internal/models"
	answersRepo "github.com/Yunus705/alpharush/internal/repositories/answers"
	roomRepo "github.com/Yunus705/alpharush/internal/repositories/room"
	"github.com/Yunus705/alpharush/internal/scoring"
)

const (
	// DefaultMaxPlayers is the room capacity when none is configured
	DefaultMaxPlayers = 8

	// DefaultTotalRounds is one round per alphabet letter
	DefaultTotalRounds = 26

	// DefaultGraceDuration is how long a round waits on laggards once the
	// first submission has landed
	DefaultGraceDuration = 10 * time.Second
)

// service implements the Service interface
type service struct {
	config *Config

	sessionsMu sync.RWMutex
	sessions   map[string]*session
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RoomRepo == nil {
		return nil, errors.New("room repository cannot be nil")
	}

	if cfg.AnswerRepo == nil {
		return nil, errors.New("answers repository cannot be nil")
	}

	if cfg.Allocator == nil {
		return nil, errors.New("letter allocator cannot be nil")
	}

	if cfg.Broadcaster == nil {
		return nil, errors.New("broadcaster cannot be nil")
	}

	// Set default values if not provided
	if cfg.MaxPlayers <= 0 {
		cfg.MaxPlayers = DefaultMaxPlayers
	}

	if cfg.TotalRounds <= 0 || cfg.TotalRounds > DefaultTotalRounds {
		cfg.TotalRounds = DefaultTotalRounds
	}

	if cfg.Scorer == nil {
		cfg.Scorer = scoring.New(nil)
	}

	if cfg.Clock == nil {
		cfg.Clock = &clock.DefaultClock{}
	}

	return &service{
		config:   cfg,
		sessions: make(map[string]*session),
	}, nil
}

// Close stops every pending grace timer. In-memory rooms are discarded;
// their records remain in the repositories.
func (s *service) Close() {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	for _, sess := range s.sessions {
		sess.mu.Lock()
		sess.stopGrace()
		sess.mu.Unlock()
	}
	s.sessions = make(map[string]*session)
}

// CreateRoom creates a new room with the caller as host
func (s *service) CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.HostID == "" {
		return nil, errors.New("input, room ID and host ID cannot be empty")
	}

	now := s.config.Clock.Now()
	room := &models.Room{
		ID:     input.RoomID,
		Secret: input.Secret,
		HostID: input.HostID,
		Players: []*models.Player{
			{
				ID:       input.HostID,
				Name:     input.HostName,
				JoinedAt: now,
			},
		},
		UsedLetters: []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	sess := newSession(room)

	s.sessionsMu.Lock()
	if _, exists := s.sessions[input.RoomID]; exists {
		s.sessionsMu.Unlock()
		return nil, ErrDuplicateRoom
	}
	s.sessions[input.RoomID] = sess
	s.sessionsMu.Unlock()

	sess.mu.Lock()
	defer sess.mu.Unlock()

	s.persistRoom(ctx, room)

	snapshot := s.snapshotLocked(sess)
	s.broadcast(room.ID, &Event{Type: EventRoomUpdate, RoomID: room.ID, Payload: snapshot})

	s.config.Logger.Info().Str("room", room.ID).Str("host", input.HostID).Msg("room created")

	return &CreateRoomOutput{Room: snapshot}, nil
}

// JoinRoom adds a player to an existing room
func (s *service) JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	sess, err := s.session(input.RoomID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	room := sess.room

	if room.Secret != "" && room.Secret != input.Secret {
		return nil, ErrWrongSecret
	}

	// Re-joining is a no-op rather than an error
	if !room.HasPlayer(input.PlayerID) {
		if len(room.Players) >= s.config.MaxPlayers {
			return nil, ErrRoomFull
		}

		now := s.config.Clock.Now()
		room.Players = append(room.Players, &models.Player{
			ID:       input.PlayerID,
			Name:     input.PlayerName,
			JoinedAt: now,
		})
		room.UpdatedAt = now

		s.persistRoom(ctx, room)
	}

	snapshot := s.snapshotLocked(sess)
	s.broadcast(room.ID, &Event{Type: EventRoomUpdate, RoomID: room.ID, Payload: snapshot})

	s.config.Logger.Info().Str("room", room.ID).Str("player", input.PlayerID).Msg("player joined")

	return &JoinRoomOutput{Room: snapshot}, nil
}

// Leave removes a connection's player from every room it belongs to. If
// the player was host, the next player in join order is promoted; an
// emptied room is dropped from the registry, its records kept for export.
func (s *service) Leave(ctx context.Context, input *LeaveInput) (*LeaveOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	s.sessionsMu.RLock()
	candidates := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		candidates = append(candidates, sess)
	}
	s.sessionsMu.RUnlock()

	left := []string{}
	emptied := []string{}

	for _, sess := range candidates {
		sess.mu.Lock()

		room := sess.room
		if !room.RemovePlayer(input.PlayerID) {
			sess.mu.Unlock()
			continue
		}

		left = append(left, room.ID)
		room.UpdatedAt = s.config.Clock.Now()

		if len(room.Players) == 0 {
			room.HostID = ""
			sess.stopGrace()
			emptied = append(emptied, room.ID)
			s.persistRoom(ctx, room)
			sess.mu.Unlock()
			continue
		}

		if room.HostID == input.PlayerID {
			room.HostID = room.Players[0].ID
		}

		// The departure may leave every remaining player submitted
		if current := sess.currentRound(); current != nil && !current.IsScored() &&
			current.SubmittedCount() >= len(room.Players) {
			s.scoreRoundLocked(ctx, sess, current)
		}

		s.persistRoom(ctx, room)

		snapshot := s.snapshotLocked(sess)
		s.broadcast(room.ID, &Event{Type: EventRoomUpdate, RoomID: room.ID, Payload: snapshot})

		sess.mu.Unlock()
	}

	if len(emptied) > 0 {
		s.sessionsMu.Lock()
		for _, roomID := range emptied {
			delete(s.sessions, roomID)
		}
		s.sessionsMu.Unlock()
	}

	for _, roomID := range left {
		s.config.Logger.Info().Str("room", roomID).Str("player", input.PlayerID).Msg("player left")
	}

	return &LeaveOutput{RoomIDs: left}, nil
}

// StartGame begins round 1 (host only)
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	sess, err := s.session(input.RoomID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	room := sess.room

	if !room.IsHost(input.PlayerID) {
		return nil, ErrNotHost
	}

	if room.Started() {
		return nil, ErrInvalidState
	}

	letter, err := s.openRoundLocked(ctx, sess, 1)
	if err != nil {
		return nil, err
	}

	s.config.Logger.Info().Str("room", room.ID).Str("letter", letter).Msg("game started")

	return &StartGameOutput{Round: 1, Letter: letter}, nil
}

// DraftUpdate merges category values into a player's working answers for
// the active round without setting a submission timestamp
func (s *service) DraftUpdate(ctx context.Context, input *DraftUpdateInput) (*DraftUpdateOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	if err := validCategories(input.Answers); err != nil {
		return nil, err
	}

	sess, err := s.session(input.RoomID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	current, err := s.activeRoundLocked(sess, input.PlayerID)
	if err != nil {
		return nil, err
	}

	current.Submission(input.PlayerID).Merge(input.Answers)
	s.persistAnswers(ctx, current)

	return &DraftUpdateOutput{}, nil
}

// SubmitAnswers stores a player's answers with a fresh submission
// timestamp. A repeated submit overwrites the player's own entry. When
// every player in the room has submitted, the round is scored.
func (s *service) SubmitAnswers(ctx context.Context, input *SubmitAnswersInput) (*SubmitAnswersOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	if err := validCategories(input.Answers); err != nil {
		return nil, err
	}

	sess, err := s.session(input.RoomID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	room := sess.room

	current, err := s.activeRoundLocked(sess, input.PlayerID)
	if err != nil {
		return nil, err
	}

	now := s.config.Clock.Now()

	sub := current.Submission(input.PlayerID)
	sub.Merge(input.Answers)
	sub.SubmittedAt = &now

	if player := room.Player(input.PlayerID); player != nil {
		player.LastSubmission = &now
	}
	room.UpdatedAt = now

	s.persistAnswers(ctx, current)
	s.persistRoom(ctx, room)

	s.broadcast(room.ID, &Event{
		Type:   EventPlayerSubmitted,
		RoomID: room.ID,
		Payload: &PlayerSubmittedPayload{
			PlayerID: input.PlayerID,
			Round:    current.Round,
		},
	})

	if current.SubmittedCount() >= len(room.Players) {
		s.scoreRoundLocked(ctx, sess, current)
		return &SubmitAnswersOutput{RoundScored: true}, nil
	}

	if s.config.GraceDuration > 0 {
		roomID := room.ID
		round := current.Round
		sess.armGrace(s.config.GraceDuration, func() {
			s.graceExpired(roomID, round)
		})
	}

	return &SubmitAnswersOutput{}, nil
}

// ForceScore scores the active round. A round that is already scored is
// absorbed silently so racing grace timers and clients stay harmless.
func (s *service) ForceScore(ctx context.Context, input *ForceScoreInput) (*ForceScoreOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	sess, err := s.session(input.RoomID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	room := sess.room

	if !room.Started() || room.Finished(s.config.TotalRounds) {
		return nil, ErrInvalidState
	}

	current := sess.currentRound()
	if current == nil {
		return nil, ErrInvalidState
	}

	if current.IsScored() {
		return &ForceScoreOutput{AlreadyScored: true}, nil
	}

	s.scoreRoundLocked(ctx, sess, current)

	return &ForceScoreOutput{}, nil
}

// NextRound advances the round counter (host only). Past the final round
// it ends the game instead of drawing a letter.
func (s *service) NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" {
		return nil, errors.New("input, room ID and player ID cannot be empty")
	}

	sess, err := s.session(input.RoomID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	room := sess.room

	if !room.IsHost(input.PlayerID) {
		return nil, ErrNotHost
	}

	if !room.Started() || room.Finished(s.config.TotalRounds) {
		return nil, ErrInvalidState
	}

	current := sess.currentRound()
	if current == nil || !current.IsScored() {
		return nil, ErrInvalidState
	}

	next := room.Round + 1

	if next > s.config.TotalRounds {
		room.Round = next
		room.UpdatedAt = s.config.Clock.Now()
		s.persistRoom(ctx, room)

		s.broadcast(room.ID, &Event{
			Type:    EventGameOver,
			RoomID:  room.ID,
			Payload: &GameOverPayload{Standings: s.standingsLocked(room)},
		})
		s.broadcast(room.ID, &Event{Type: EventRoomUpdate, RoomID: room.ID, Payload: s.snapshotLocked(sess)})

		s.config.Logger.Info().Str("room", room.ID).Msg("game over")

		return &NextRoundOutput{Round: next, GameOver: true}, nil
	}

	letter, err := s.openRoundLocked(ctx, sess, next)
	if err != nil {
		return nil, err
	}

	return &NextRoundOutput{Round: next, Letter: letter}, nil
}

// InvalidateAnswer toggles the invalidation flag on one player's
// one-category answer for a given round, then re-derives every player's
// cumulative score from the full ledger instead of patching deltas.
func (s *service) InvalidateAnswer(ctx context.Context, input *InvalidateAnswerInput) (*InvalidateAnswerOutput, error) {
	if input == nil || input.RoomID == "" || input.PlayerID == "" || input.TargetID == "" {
		return nil, errors.New("input, room ID, player ID and target ID cannot be empty")
	}

	if !isCategory(input.Category) {
		return nil, ErrInvalidCategory
	}

	sess, err := s.session(input.RoomID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	room := sess.room

	if !room.IsHost(input.PlayerID) {
		return nil, ErrNotHost
	}

	target, ok := sess.ledger[input.Round]
	if !ok {
		return nil, ErrRoundNotFound
	}

	sub, ok := target.Submissions[input.TargetID]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	flag := !sub.Invalidated[input.Category]
	sub.Invalidated[input.Category] = flag

	// Recompute all totals from scratch; uniqueness bonuses are per-round
	// so only regrouping within edited rounds can shift, but rebuilding
	// everything avoids drift
	for _, player := range room.Players {
		player.Score = 0
	}
	for _, round := range sess.ledger {
		if !round.IsScored() {
			continue
		}
		result := s.config.Scorer.ScoreRound(round)
		for playerID, points := range result.Points {
			if player := room.Player(playerID); player != nil {
				player.Score += points
			}
		}
	}
	room.UpdatedAt = s.config.Clock.Now()

	s.persistAnswers(ctx, target)
	s.persistRoom(ctx, room)

	result := s.config.Scorer.ScoreRound(target)
	s.broadcast(room.ID, &Event{
		Type:   EventRoundScored,
		RoomID: room.ID,
		Payload: &RoundScoredPayload{
			Round:       target.Round,
			Letter:      target.Letter,
			Points:      result.Points,
			Totals:      s.totalsLocked(room),
			Submissions: s.submissionViewsLocked(room, target),
		},
	})
	s.broadcast(room.ID, &Event{Type: EventRoomUpdate, RoomID: room.ID, Payload: s.snapshotLocked(sess)})

	s.config.Logger.Info().
		Str("room", room.ID).
		Str("target", input.TargetID).
		Int("round", input.Round).
		Str("category", string(input.Category)).
		Bool("invalidated", flag).
		Msg("answer invalidation toggled")

	return &InvalidateAnswerOutput{Invalidated: flag}, nil
}

// GetRoom returns the current room snapshot
func (s *service) GetRoom(ctx context.Context, input *GetRoomInput) (*GetRoomOutput, error) {
	if input == nil || input.RoomID == "" {
		return nil, errors.New("input and room ID cannot be empty")
	}

	sess, err := s.session(input.RoomID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return &GetRoomOutput{Room: s.snapshotLocked(sess)}, nil
}

// session returns the live session for a room ID
func (s *service) session(roomID string) (*session, error) {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	sess, ok := s.sessions[roomID]
	if !ok {
		return nil, ErrRoomNotFound
	}
	return sess, nil
}

// activeRoundLocked returns the open answer set of the round in progress,
// checking that the player is a member. Caller must hold sess.mu.
func (s *service) activeRoundLocked(sess *session, playerID string) (*models.RoundAnswers, error) {
	room := sess.room

	if !room.HasPlayer(playerID) {
		return nil, ErrPlayerNotFound
	}

	if !room.Started() || room.Finished(s.config.TotalRounds) {
		return nil, ErrInvalidState
	}

	current := sess.currentRound()
	if current == nil || current.IsScored() {
		return nil, ErrInvalidState
	}

	return current, nil
}

// openRoundLocked draws the next letter, opens a fresh answer set for the
// given round number and broadcasts round-start followed by a snapshot.
// Caller must hold sess.mu.
func (s *service) openRoundLocked(ctx context.Context, sess *session, round int) (string, error) {
	room := sess.room

	letter, err := s.config.Allocator.Next(room.UsedLetters)
	if err != nil {
		return "", fmt.Errorf("failed to draw letter for round %d: %w", round, err)
	}

	room.Round = round
	room.UsedLetters = append(room.UsedLetters, letter)
	room.UpdatedAt = s.config.Clock.Now()

	answers := models.NewRoundAnswers(room.ID, round, letter)
	sess.ledger[round] = answers

	s.persistRoom(ctx, room)
	s.persistAnswers(ctx, answers)

	s.broadcast(room.ID, &Event{
		Type:   EventRoundStarted,
		RoomID: room.ID,
		Payload: &RoundStartedPayload{
			Round:       round,
			Letter:      letter,
			TotalRounds: s.config.TotalRounds,
		},
	})
	s.broadcast(room.ID, &Event{Type: EventRoomUpdate, RoomID: room.ID, Payload: s.snapshotLocked(sess)})

	return letter, nil
}

// scoreRoundLocked computes and applies a round's points exactly once.
// A round already marked scored is a silent no-op, which keeps the
// full-submission trigger, grace timers and client force-scores from
// double-counting. Caller must hold sess.mu.
func (s *service) scoreRoundLocked(ctx context.Context, sess *session, round *models.RoundAnswers) {
	if round.IsScored() {
		s.config.Logger.Debug().
			Str("room", sess.room.ID).
			Int("round", round.Round).
			Msg("round already scored, ignoring")
		return
	}

	room := sess.room

	result := s.config.Scorer.ScoreRound(round)
	for playerID, points := range result.Points {
		if player := room.Player(playerID); player != nil {
			player.Score += points
		}
	}

	round.State = models.RoundStateScored
	sess.stopGrace()
	room.UpdatedAt = s.config.Clock.Now()

	s.persistAnswers(ctx, round)
	s.persistRoom(ctx, room)

	s.broadcast(room.ID, &Event{
		Type:   EventRoundScored,
		RoomID: room.ID,
		Payload: &RoundScoredPayload{
			Round:       round.Round,
			Letter:      round.Letter,
			Points:      result.Points,
			Totals:      s.totalsLocked(room),
			Submissions: s.submissionViewsLocked(room, round),
		},
	})
	s.broadcast(room.ID, &Event{Type: EventRoomUpdate, RoomID: room.ID, Payload: s.snapshotLocked(sess)})

	s.config.Logger.Info().Str("room", room.ID).Int("round", round.Round).Msg("round scored")
}

// graceExpired runs when the grace countdown fires. The round may have
// been scored or advanced in the meantime; the scored marker absorbs it.
func (s *service) graceExpired(roomID string, round int) {
	sess, err := s.session(roomID)
	if err != nil {
		return
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.graceTimer = nil

	current := sess.currentRound()
	if current == nil || current.Round != round || current.IsScored() {
		return
	}

	s.config.Logger.Info().Str("room", roomID).Int("round", round).Msg("grace period expired, force scoring")
	s.scoreRoundLocked(context.Background(), sess, current)
}

// snapshotLocked builds the public room snapshot. Caller must hold sess.mu.
func (s *service) snapshotLocked(sess *session) *RoomSnapshot {
	room := sess.room
	current := sess.currentRound()

	players := make([]PlayerInfo, 0, len(room.Players))
	for _, p := range room.Players {
		submitted := false
		if current != nil {
			if sub, ok := current.Submissions[p.ID]; ok {
				submitted = sub.HasSubmitted()
			}
		}
		players = append(players, PlayerInfo{
			ID:        p.ID,
			Name:      p.Name,
			Score:     p.Score,
			IsHost:    p.ID == room.HostID,
			Submitted: submitted,
		})
	}

	state := "idle"
	switch {
	case room.Finished(s.config.TotalRounds):
		state = "game_over"
	case current != nil && current.IsScored():
		state = "round_scored"
	case current != nil:
		state = "round_active"
	}

	return &RoomSnapshot{
		RoomID:      room.ID,
		HostID:      room.HostID,
		Players:     players,
		Round:       room.Round,
		Letter:      room.CurrentLetter(),
		UsedLetters: append([]string{}, room.UsedLetters...),
		TotalRounds: s.config.TotalRounds,
		State:       state,
	}
}

// standingsLocked ranks players by score descending, ties broken by join
// order. Caller must hold sess.mu.
func (s *service) standingsLocked(room *models.Room) []Standing {
	standings := make([]Standing, 0, len(room.Players))
	for _, p := range room.Players {
		standings = append(standings, Standing{
			PlayerID: p.ID,
			Name:     p.Name,
			Score:    p.Score,
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})

	return standings
}

// totalsLocked maps current player IDs to cumulative scores. Caller must
// hold sess.mu.
func (s *service) totalsLocked(room *models.Room) map[string]int {
	totals := make(map[string]int, len(room.Players))
	for _, p := range room.Players {
		totals[p.ID] = p.Score
	}
	return totals
}

// submissionViewsLocked reveals a round's submissions for post-round
// review, in join order with departed players last. Caller must hold
// sess.mu.
func (s *service) submissionViewsLocked(room *models.Room, round *models.RoundAnswers) []SubmissionView {
	views := make([]SubmissionView, 0, len(round.Submissions))
	seen := make(map[string]bool, len(round.Submissions))

	appendView := func(playerID, name string) {
		sub, ok := round.Submissions[playerID]
		if !ok {
			return
		}
		views = append(views, SubmissionView{
			PlayerID:    playerID,
			PlayerName:  name,
			Answers:     sub.Answers,
			Invalidated: sub.Invalidated,
		})
		seen[playerID] = true
	}

	for _, p := range room.Players {
		appendView(p.ID, p.Name)
	}

	leftover := make([]string, 0)
	for playerID := range round.Submissions {
		if !seen[playerID] {
			leftover = append(leftover, playerID)
		}
	}
	sort.Strings(leftover)
	for _, playerID := range leftover {
		appendView(playerID, playerID)
	}

	return views
}

// persistRoom writes through to the room repository. The in-memory room
// stays authoritative; a store failure is logged and retried on the next
// mutation.
func (s *service) persistRoom(ctx context.Context, room *models.Room) {
	if err := s.config.RoomRepo.SaveRoom(ctx, &roomRepo.SaveRoomInput{Room: room}); err != nil {
		s.config.Logger.Error().Err(err).Str("room", room.ID).Msg("failed to persist room")
	}
}

// persistAnswers writes through to the answers repository, same contract
// as persistRoom.
func (s *service) persistAnswers(ctx context.Context, answers *models.RoundAnswers) {
	if err := s.config.AnswerRepo.SaveRoundAnswers(ctx, &answersRepo.SaveRoundAnswersInput{Answers: answers}); err != nil {
		s.config.Logger.Error().Err(err).Str("room", answers.RoomID).Int("round", answers.Round).Msg("failed to persist round answers")
	}
}

func (s *service) broadcast(roomID string, event *Event) {
	s.config.Broadcaster.Broadcast(roomID, event)
}

func isCategory(category models.Category) bool {
	for _, c := range models.Categories() {
		if c == category {
			return true
		}
	}
	return false
}

func validCategories(answers map[models.Category]string) error {
	for category := range answers {
		if !isCategory(category) {
			return ErrInvalidCategory
		}
	}
	return nil
}
