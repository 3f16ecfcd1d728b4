package game

import (
	"context"
	"sync"
	"testing"
	"time"

	clockMocks "github.com/Yunus705/alpharush/internal/common/clock/mocks"
	letterMocks "github.com/Yunus705/alpharush/internal/letters/mocks"
	"github.com/Yunus705/alpharush/internal/models"
	answerMocks "github.com/Yunus705/alpharush/internal/repositories/answers/mocks"
	roomMocks "github.com/Yunus705/alpharush/internal/repositories/room/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// fakeBroadcaster records emitted events per room
type fakeBroadcaster struct {
	mu     sync.Mutex
	events map[string][]*Event
}

func newFakeBroadcaster() *fakeBroadcaster {
	return &fakeBroadcaster{events: make(map[string][]*Event)}
}

func (f *fakeBroadcaster) Broadcast(roomID string, event *Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[roomID] = append(f.events[roomID], event)
}

func (f *fakeBroadcaster) eventsOfType(roomID string, eventType EventType) []*Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	matched := []*Event{}
	for _, e := range f.events[roomID] {
		if e.Type == eventType {
			matched = append(matched, e)
		}
	}
	return matched
}

func (f *fakeBroadcaster) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = make(map[string][]*Event)
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRoomRepo  *roomMocks.MockRepository
	mockAnswers   *answerMocks.MockRepository
	mockAllocator *letterMocks.MockAllocator
	mockClock     *clockMocks.MockClock
	broadcaster   *fakeBroadcaster
	service       Service
	ctx           context.Context

	testTime time.Time
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRoomRepo = roomMocks.NewMockRepository(s.mockCtrl)
	s.mockAnswers = answerMocks.NewMockRepository(s.mockCtrl)
	s.mockAllocator = letterMocks.NewMockAllocator(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.broadcaster = newFakeBroadcaster()

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockRoomRepo.EXPECT().SaveRoom(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	s.mockAnswers.EXPECT().SaveRoundAnswers(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.service = s.newService(4, 26, 0)
}

func (s *GameServiceTestSuite) newService(maxPlayers, totalRounds int, grace time.Duration) Service {
	svc, err := New(&Config{
		MaxPlayers:    maxPlayers,
		TotalRounds:   totalRounds,
		GraceDuration: grace,
		RoomRepo:      s.mockRoomRepo,
		AnswerRepo:    s.mockAnswers,
		Allocator:     s.mockAllocator,
		Clock:         s.mockClock,
		Broadcaster:   s.broadcaster,
	})
	s.Require().NoError(err)
	return svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

// createRoomWithPlayers creates room ABC1 hosted by Alice with Bob joined.
func (s *GameServiceTestSuite) createRoomWithPlayers() {
	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID:   "ABC1",
		HostID:   "conn-alice",
		HostName: "Alice",
	})
	s.Require().NoError(err)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{
		RoomID:     "ABC1",
		PlayerID:   "conn-bob",
		PlayerName: "Bob",
	})
	s.Require().NoError(err)
}

// startRound starts the game expecting the given letter for round 1.
func (s *GameServiceTestSuite) startRound(letter string) {
	s.mockAllocator.EXPECT().Next(gomock.Any()).Return(letter, nil)

	out, err := s.service.StartGame(s.ctx, &StartGameInput{
		RoomID:   "ABC1",
		PlayerID: "conn-alice",
	})
	s.Require().NoError(err)
	s.Equal(letter, out.Letter)
}

func (s *GameServiceTestSuite) submit(playerID string, answers map[models.Category]string) *SubmitAnswersOutput {
	out, err := s.service.SubmitAnswers(s.ctx, &SubmitAnswersInput{
		RoomID:   "ABC1",
		PlayerID: playerID,
		Answers:  answers,
	})
	s.Require().NoError(err)
	return out
}

func (s *GameServiceTestSuite) snapshot() *RoomSnapshot {
	out, err := s.service.GetRoom(s.ctx, &GetRoomInput{RoomID: "ABC1"})
	s.Require().NoError(err)
	return out.Room
}

func (s *GameServiceTestSuite) TestCreateRoom() {
	out, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID:   "ABC1",
		HostID:   "conn-alice",
		HostName: "Alice",
		Secret:   "s3cret",
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Room)

	s.Equal("ABC1", out.Room.RoomID)
	s.Equal("conn-alice", out.Room.HostID)
	s.Require().Len(out.Room.Players, 1)
	s.Equal("Alice", out.Room.Players[0].Name)
	s.True(out.Room.Players[0].IsHost)
	s.Equal(0, out.Room.Round)
	s.Equal("idle", out.Room.State)

	s.Len(s.broadcaster.eventsOfType("ABC1", EventRoomUpdate), 1)
}

func (s *GameServiceTestSuite) TestCreateRoomDuplicate() {
	s.createRoomWithPlayers()

	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID:   "ABC1",
		HostID:   "conn-carol",
		HostName: "Carol",
	})
	s.Require().ErrorIs(err, ErrDuplicateRoom)
}

func (s *GameServiceTestSuite) TestJoinRoomKeepsJoinOrder() {
	s.createRoomWithPlayers()

	snapshot := s.snapshot()
	s.Require().Len(snapshot.Players, 2)
	s.Equal("conn-alice", snapshot.Players[0].ID)
	s.Equal("conn-bob", snapshot.Players[1].ID)
}

func (s *GameServiceTestSuite) TestJoinRoomRejoinIsNoop() {
	s.createRoomWithPlayers()

	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{
		RoomID:     "ABC1",
		PlayerID:   "conn-bob",
		PlayerName: "Bob",
	})
	s.Require().NoError(err)
	s.Len(s.snapshot().Players, 2)
}

func (s *GameServiceTestSuite) TestJoinRoomNotFound() {
	_, err := s.service.JoinRoom(s.ctx, &JoinRoomInput{
		RoomID:     "nope",
		PlayerID:   "conn-bob",
		PlayerName: "Bob",
	})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *GameServiceTestSuite) TestJoinRoomFull() {
	svc := s.newService(2, 26, 0)

	_, err := svc.CreateRoom(s.ctx, &CreateRoomInput{RoomID: "tiny", HostID: "p1", HostName: "One"})
	s.Require().NoError(err)
	_, err = svc.JoinRoom(s.ctx, &JoinRoomInput{RoomID: "tiny", PlayerID: "p2", PlayerName: "Two"})
	s.Require().NoError(err)

	_, err = svc.JoinRoom(s.ctx, &JoinRoomInput{RoomID: "tiny", PlayerID: "p3", PlayerName: "Three"})
	s.Require().ErrorIs(err, ErrRoomFull)
}

func (s *GameServiceTestSuite) TestJoinRoomWrongSecret() {
	_, err := s.service.CreateRoom(s.ctx, &CreateRoomInput{
		RoomID:   "locked",
		HostID:   "conn-alice",
		HostName: "Alice",
		Secret:   "s3cret",
	})
	s.Require().NoError(err)

	_, err = s.service.JoinRoom(s.ctx, &JoinRoomInput{
		RoomID:     "locked",
		PlayerID:   "conn-bob",
		PlayerName: "Bob",
		Secret:     "wrong",
	})
	s.Require().ErrorIs(err, ErrWrongSecret)
}

func (s *GameServiceTestSuite) TestHostOnlyActionsRejectNonHost() {
	s.createRoomWithPlayers()

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: "ABC1", PlayerID: "conn-bob"})
	s.ErrorIs(err, ErrNotHost)

	s.startRound("B")
	s.scoreViaFullSubmission()

	_, err = s.service.NextRound(s.ctx, &NextRoundInput{RoomID: "ABC1", PlayerID: "conn-bob"})
	s.ErrorIs(err, ErrNotHost)

	_, err = s.service.InvalidateAnswer(s.ctx, &InvalidateAnswerInput{
		RoomID:   "ABC1",
		PlayerID: "conn-bob",
		TargetID: "conn-alice",
		Round:    1,
		Category: models.CategoryCity,
	})
	s.ErrorIs(err, ErrNotHost)
}

func (s *GameServiceTestSuite) TestStartGame() {
	s.createRoomWithPlayers()
	s.startRound("B")

	snapshot := s.snapshot()
	s.Equal(1, snapshot.Round)
	s.Equal("B", snapshot.Letter)
	s.Equal([]string{"B"}, snapshot.UsedLetters)
	s.Equal("round_active", snapshot.State)

	started := s.broadcaster.eventsOfType("ABC1", EventRoundStarted)
	s.Require().Len(started, 1)
	payload := started[0].Payload.(*RoundStartedPayload)
	s.Equal(1, payload.Round)
	s.Equal("B", payload.Letter)
	s.Equal(26, payload.TotalRounds)
}

func (s *GameServiceTestSuite) TestStartGameTwice() {
	s.createRoomWithPlayers()
	s.startRound("B")

	_, err := s.service.StartGame(s.ctx, &StartGameInput{RoomID: "ABC1", PlayerID: "conn-alice"})
	s.Require().ErrorIs(err, ErrInvalidState)
}

func (s *GameServiceTestSuite) TestSubmitBeforeStart() {
	s.createRoomWithPlayers()

	_, err := s.service.SubmitAnswers(s.ctx, &SubmitAnswersInput{
		RoomID:   "ABC1",
		PlayerID: "conn-alice",
		Answers:  map[models.Category]string{models.CategoryCity: "Berlin"},
	})
	s.Require().ErrorIs(err, ErrInvalidState)
}

func (s *GameServiceTestSuite) TestSubmitNonMember() {
	s.createRoomWithPlayers()
	s.startRound("B")

	_, err := s.service.SubmitAnswers(s.ctx, &SubmitAnswersInput{
		RoomID:   "ABC1",
		PlayerID: "conn-mallory",
		Answers:  map[models.Category]string{models.CategoryCity: "Berlin"},
	})
	s.Require().ErrorIs(err, ErrPlayerNotFound)
}

func (s *GameServiceTestSuite) TestDraftDoesNotTriggerScoring() {
	s.createRoomWithPlayers()
	s.startRound("B")

	_, err := s.service.DraftUpdate(s.ctx, &DraftUpdateInput{
		RoomID:   "ABC1",
		PlayerID: "conn-alice",
		Answers:  map[models.Category]string{models.CategoryCity: "Berlin"},
	})
	s.Require().NoError(err)

	// Bob's explicit submit is the only submission; Alice's draft must not
	// count toward the full-submission trigger
	out := s.submit("conn-bob", map[models.Category]string{models.CategoryCity: "Bonn"})
	s.False(out.RoundScored)
	s.Empty(s.broadcaster.eventsOfType("ABC1", EventRoundScored))
	s.Equal("round_active", s.snapshot().State)
}

// scoreViaFullSubmission plays the canonical round: Alice and Bob share
// City and Thing (5 each) and differ on Name and Animal (10 each),
// putting both players at 30.
func (s *GameServiceTestSuite) scoreViaFullSubmission() {
	s.submit("conn-alice", map[models.Category]string{
		models.CategoryName:   "Bob",
		models.CategoryCity:   "Berlin",
		models.CategoryThing:  "Ball",
		models.CategoryAnimal: "Bear",
	})
	out := s.submit("conn-bob", map[models.Category]string{
		models.CategoryName:   "Ben",
		models.CategoryCity:   "Berlin",
		models.CategoryThing:  "Ball",
		models.CategoryAnimal: "Bat",
	})
	s.Require().True(out.RoundScored)
}

func (s *GameServiceTestSuite) TestFullSubmissionScoresRound() {
	s.createRoomWithPlayers()
	s.startRound("B")
	s.scoreViaFullSubmission()
	scored := s.broadcaster.eventsOfType("ABC1", EventRoundScored)
	s.Require().Len(scored, 1)
	payload := scored[0].Payload.(*RoundScoredPayload)
	s.Equal(1, payload.Round)
	s.Equal(30, payload.Points["conn-alice"])
	s.Equal(30, payload.Points["conn-bob"])
	s.Equal(map[string]int{"conn-alice": 30, "conn-bob": 30}, payload.Totals)
	s.Len(payload.Submissions, 2)

	// The submitted notice itself carries no answer content
	submittedEvents := s.broadcaster.eventsOfType("ABC1", EventPlayerSubmitted)
	s.Require().Len(submittedEvents, 2)
	notice := submittedEvents[0].Payload.(*PlayerSubmittedPayload)
	s.Equal("conn-alice", notice.PlayerID)
	s.Equal(1, notice.Round)

	s.Equal("round_scored", s.snapshot().State)
}

func (s *GameServiceTestSuite) TestScoringIsIdempotent() {
	s.createRoomWithPlayers()
	s.startRound("B")
	s.scoreViaFullSubmission()

	before := s.snapshot()
	s.broadcaster.reset()

	out, err := s.service.ForceScore(s.ctx, &ForceScoreInput{RoomID: "ABC1", PlayerID: "conn-bob"})
	s.Require().NoError(err)
	s.True(out.AlreadyScored)

	// Scoring again never changes totals and emits nothing
	s.Empty(s.broadcaster.eventsOfType("ABC1", EventRoundScored))
	s.Equal(before.Players, s.snapshot().Players)
}

func (s *GameServiceTestSuite) TestForceScorePartialRound() {
	s.createRoomWithPlayers()
	s.startRound("B")

	s.submit("conn-alice", map[models.Category]string{models.CategoryCity: "Berlin"})

	out, err := s.service.ForceScore(s.ctx, &ForceScoreInput{RoomID: "ABC1", PlayerID: "conn-alice"})
	s.Require().NoError(err)
	s.False(out.AlreadyScored)

	scored := s.broadcaster.eventsOfType("ABC1", EventRoundScored)
	s.Require().Len(scored, 1)
	payload := scored[0].Payload.(*RoundScoredPayload)
	s.Equal(10, payload.Points["conn-alice"])
	s.Equal(0, payload.Totals["conn-bob"])
}

func (s *GameServiceTestSuite) TestNextRoundRequiresScoredRound() {
	s.createRoomWithPlayers()
	s.startRound("B")

	_, err := s.service.NextRound(s.ctx, &NextRoundInput{RoomID: "ABC1", PlayerID: "conn-alice"})
	s.Require().ErrorIs(err, ErrInvalidState)
}

func (s *GameServiceTestSuite) TestNextRoundAdvances() {
	s.createRoomWithPlayers()
	s.startRound("B")
	s.scoreViaFullSubmission()

	s.mockAllocator.EXPECT().Next(gomock.Any()).Return("K", nil)

	out, err := s.service.NextRound(s.ctx, &NextRoundInput{RoomID: "ABC1", PlayerID: "conn-alice"})
	s.Require().NoError(err)
	s.Equal(2, out.Round)
	s.Equal("K", out.Letter)
	s.False(out.GameOver)

	snapshot := s.snapshot()
	s.Equal([]string{"B", "K"}, snapshot.UsedLetters)
	s.Equal("round_active", snapshot.State)
}

func (s *GameServiceTestSuite) TestGameOverAfterFinalRound() {
	svc := s.newService(4, 2, 0)

	_, err := svc.CreateRoom(s.ctx, &CreateRoomInput{RoomID: "short", HostID: "conn-alice", HostName: "Alice"})
	s.Require().NoError(err)
	_, err = svc.JoinRoom(s.ctx, &JoinRoomInput{RoomID: "short", PlayerID: "conn-bob", PlayerName: "Bob"})
	s.Require().NoError(err)

	s.mockAllocator.EXPECT().Next(gomock.Any()).Return("B", nil)
	_, err = svc.StartGame(s.ctx, &StartGameInput{RoomID: "short", PlayerID: "conn-alice"})
	s.Require().NoError(err)

	playRound := func(aliceCity string) {
		_, err := svc.SubmitAnswers(s.ctx, &SubmitAnswersInput{
			RoomID:   "short",
			PlayerID: "conn-alice",
			Answers:  map[models.Category]string{models.CategoryCity: aliceCity},
		})
		s.Require().NoError(err)
		_, err = svc.SubmitAnswers(s.ctx, &SubmitAnswersInput{
			RoomID:   "short",
			PlayerID: "conn-bob",
			Answers:  map[models.Category]string{},
		})
		s.Require().NoError(err)
	}

	playRound("Berlin")

	s.mockAllocator.EXPECT().Next(gomock.Any()).Return("K", nil)
	out, err := svc.NextRound(s.ctx, &NextRoundInput{RoomID: "short", PlayerID: "conn-alice"})
	s.Require().NoError(err)
	s.False(out.GameOver)

	playRound("Kiel")

	out, err = svc.NextRound(s.ctx, &NextRoundInput{RoomID: "short", PlayerID: "conn-alice"})
	s.Require().NoError(err)
	s.True(out.GameOver)

	over := s.broadcaster.eventsOfType("short", EventGameOver)
	s.Require().Len(over, 1)
	payload := over[0].Payload.(*GameOverPayload)
	s.Require().Len(payload.Standings, 2)

	// Alice scored 10 per round, Bob nothing; descending order
	s.Equal("conn-alice", payload.Standings[0].PlayerID)
	s.Equal(20, payload.Standings[0].Score)
	s.Equal("conn-bob", payload.Standings[1].PlayerID)
	s.Equal(0, payload.Standings[1].Score)

	_, err = svc.NextRound(s.ctx, &NextRoundInput{RoomID: "short", PlayerID: "conn-alice"})
	s.Require().ErrorIs(err, ErrInvalidState)
}

func (s *GameServiceTestSuite) TestGameOverTieKeepsJoinOrder() {
	s.createRoomWithPlayers()
	s.startRound("B")
	s.scoreViaFullSubmission()

	svcImpl := s.service.(*service)
	sess, err := svcImpl.session("ABC1")
	s.Require().NoError(err)

	// Both players are tied at 30; finish the game and check join order
	// breaks the tie
	sess.mu.Lock()
	sess.room.Round = 26
	sess.ledger[26] = sess.ledger[1]
	sess.mu.Unlock()

	out, err := s.service.NextRound(s.ctx, &NextRoundInput{RoomID: "ABC1", PlayerID: "conn-alice"})
	s.Require().NoError(err)
	s.True(out.GameOver)

	over := s.broadcaster.eventsOfType("ABC1", EventGameOver)
	s.Require().Len(over, 1)
	payload := over[0].Payload.(*GameOverPayload)
	s.Equal("conn-alice", payload.Standings[0].PlayerID)
	s.Equal("conn-bob", payload.Standings[1].PlayerID)
}

func (s *GameServiceTestSuite) TestInvalidateAnswerRecomputesAndRestores() {
	s.createRoomWithPlayers()
	s.startRound("B")
	s.scoreViaFullSubmission()

	before := s.snapshot()
	s.Equal(30, before.Players[0].Score)

	// Invalidate Alice's unique Name answer: 30 -> 20
	out, err := s.service.InvalidateAnswer(s.ctx, &InvalidateAnswerInput{
		RoomID:   "ABC1",
		PlayerID: "conn-alice",
		TargetID: "conn-alice",
		Round:    1,
		Category: models.CategoryName,
	})
	s.Require().NoError(err)
	s.True(out.Invalidated)

	after := s.snapshot()
	s.Equal(20, after.Players[0].Score)
	s.Equal(30, after.Players[1].Score)

	// Toggling again restores the pre-invalidation value exactly
	out, err = s.service.InvalidateAnswer(s.ctx, &InvalidateAnswerInput{
		RoomID:   "ABC1",
		PlayerID: "conn-alice",
		TargetID: "conn-alice",
		Round:    1,
		Category: models.CategoryName,
	})
	s.Require().NoError(err)
	s.False(out.Invalidated)
	s.Equal(before.Players, s.snapshot().Players)
}

func (s *GameServiceTestSuite) TestInvalidateDuplicatePromotesSurvivor() {
	s.createRoomWithPlayers()
	s.startRound("B")
	s.scoreViaFullSubmission()

	// City was a 5/5 split; knocking out Bob's copy promotes Alice to 10
	_, err := s.service.InvalidateAnswer(s.ctx, &InvalidateAnswerInput{
		RoomID:   "ABC1",
		PlayerID: "conn-alice",
		TargetID: "conn-bob",
		Round:    1,
		Category: models.CategoryCity,
	})
	s.Require().NoError(err)

	snapshot := s.snapshot()
	s.Equal(35, snapshot.Players[0].Score)
	s.Equal(25, snapshot.Players[1].Score)
}

func (s *GameServiceTestSuite) TestInvalidateUnknownRound() {
	s.createRoomWithPlayers()
	s.startRound("B")

	_, err := s.service.InvalidateAnswer(s.ctx, &InvalidateAnswerInput{
		RoomID:   "ABC1",
		PlayerID: "conn-alice",
		TargetID: "conn-bob",
		Round:    7,
		Category: models.CategoryCity,
	})
	s.Require().ErrorIs(err, ErrRoundNotFound)
}

func (s *GameServiceTestSuite) TestLeaveReassignsHost() {
	s.createRoomWithPlayers()

	out, err := s.service.Leave(s.ctx, &LeaveInput{PlayerID: "conn-alice"})
	s.Require().NoError(err)
	s.Equal([]string{"ABC1"}, out.RoomIDs)

	snapshot := s.snapshot()
	s.Equal("conn-bob", snapshot.HostID)
	s.Require().Len(snapshot.Players, 1)
	s.True(snapshot.Players[0].IsHost)
}

func (s *GameServiceTestSuite) TestLeaveLastPlayerDropsRoom() {
	s.createRoomWithPlayers()

	_, err := s.service.Leave(s.ctx, &LeaveInput{PlayerID: "conn-alice"})
	s.Require().NoError(err)
	_, err = s.service.Leave(s.ctx, &LeaveInput{PlayerID: "conn-bob"})
	s.Require().NoError(err)

	_, err = s.service.GetRoom(s.ctx, &GetRoomInput{RoomID: "ABC1"})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}

func (s *GameServiceTestSuite) TestLeaveUnknownPlayerIsHarmless() {
	s.createRoomWithPlayers()

	out, err := s.service.Leave(s.ctx, &LeaveInput{PlayerID: "conn-ghost"})
	s.Require().NoError(err)
	s.Empty(out.RoomIDs)
}

func (s *GameServiceTestSuite) TestLeaveCompletesRound() {
	s.createRoomWithPlayers()
	s.startRound("B")

	s.submit("conn-alice", map[models.Category]string{models.CategoryCity: "Berlin"})

	// Bob never submits and disconnects; Alice is now the only player and
	// she has submitted, so the round scores
	_, err := s.service.Leave(s.ctx, &LeaveInput{PlayerID: "conn-bob"})
	s.Require().NoError(err)

	scored := s.broadcaster.eventsOfType("ABC1", EventRoundScored)
	s.Require().Len(scored, 1)
	s.Equal("round_scored", s.snapshot().State)
}

func (s *GameServiceTestSuite) TestGraceTimerForcesScore() {
	svc := s.newService(4, 26, 25*time.Millisecond)
	defer svc.(*service).Close()

	_, err := svc.CreateRoom(s.ctx, &CreateRoomInput{RoomID: "slow", HostID: "conn-alice", HostName: "Alice"})
	s.Require().NoError(err)
	_, err = svc.JoinRoom(s.ctx, &JoinRoomInput{RoomID: "slow", PlayerID: "conn-bob", PlayerName: "Bob"})
	s.Require().NoError(err)

	s.mockAllocator.EXPECT().Next(gomock.Any()).Return("B", nil)
	_, err = svc.StartGame(s.ctx, &StartGameInput{RoomID: "slow", PlayerID: "conn-alice"})
	s.Require().NoError(err)

	_, err = svc.SubmitAnswers(s.ctx, &SubmitAnswersInput{
		RoomID:   "slow",
		PlayerID: "conn-alice",
		Answers:  map[models.Category]string{models.CategoryCity: "Berlin"},
	})
	s.Require().NoError(err)

	s.Eventually(func() bool {
		return len(s.broadcaster.eventsOfType("slow", EventRoundScored)) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// The late force-score from a racing client is absorbed
	out, err := svc.ForceScore(s.ctx, &ForceScoreInput{RoomID: "slow", PlayerID: "conn-bob"})
	s.Require().NoError(err)
	s.True(out.AlreadyScored)
}

func (s *GameServiceTestSuite) TestInvalidCategoryRejected() {
	s.createRoomWithPlayers()
	s.startRound("B")

	_, err := s.service.SubmitAnswers(s.ctx, &SubmitAnswersInput{
		RoomID:   "ABC1",
		PlayerID: "conn-alice",
		Answers:  map[models.Category]string{"color": "Blue"},
	})
	s.Require().ErrorIs(err, ErrInvalidCategory)
}
