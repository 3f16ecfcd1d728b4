package game

import (
	"time"

	"github.com/Yunus705/alpharush/internal/models"
	answersRepo "github.com/Yunus705/alpharush/internal/repositories/answers"
	roomRepo "github.com/Yunus705/alpharush/internal/repositories/room"
	"go.uber.org/mock/gomock"
)

func (s *GameServiceTestSuite) storedRoomFixture() *models.Room {
	return &models.Room{
		ID:     "ABC1",
		HostID: "conn-alice",
		Players: []*models.Player{
			{ID: "conn-alice", Name: "Alice", Score: 20},
			{ID: "conn-bob", Name: "Bob", Score: 20},
		},
		UsedLetters: []string{"B"},
		Round:       1,
		CreatedAt:   s.testTime,
		UpdatedAt:   s.testTime,
	}
}

func (s *GameServiceTestSuite) storedRoundFixture() *models.RoundAnswers {
	submittedAt := s.testTime.Add(30 * time.Second)
	return &models.RoundAnswers{
		RoomID: "ABC1",
		Round:  1,
		Letter: "B",
		State:  models.RoundStateScored,
		Submissions: map[string]*models.Submission{
			"conn-alice": {
				PlayerID: "conn-alice",
				Answers: map[models.Category]string{
					models.CategoryName: "Bob",
					models.CategoryCity: "Berlin",
				},
				SubmittedAt: &submittedAt,
				Invalidated: map[models.Category]bool{},
			},
			"conn-bob": {
				PlayerID: "conn-bob",
				Answers: map[models.Category]string{
					models.CategoryCity: "Berlin",
				},
				SubmittedAt: &submittedAt,
				Invalidated: map[models.Category]bool{
					models.CategoryCity: true,
				},
			},
		},
	}
}

func (s *GameServiceTestSuite) TestExportAnswers() {
	s.mockRoomRepo.EXPECT().
		GetRoom(gomock.Any(), &roomRepo.GetRoomInput{RoomID: "ABC1"}).
		Return(s.storedRoomFixture(), nil)
	s.mockAnswers.EXPECT().
		GetRoundAnswersForRoom(gomock.Any(), &answersRepo.GetRoundAnswersForRoomInput{RoomID: "ABC1"}).
		Return(&answersRepo.GetRoundAnswersForRoomOutput{
			Rounds: []*models.RoundAnswers{s.storedRoundFixture()},
		}, nil)

	out, err := s.service.ExportAnswers(s.ctx, &ExportAnswersInput{RoomID: "ABC1"})
	s.Require().NoError(err)

	// One row per player per category, players in join order
	s.Require().Len(out.Rows, 2*len(models.Categories()))
	s.Equal("conn-alice", out.Rows[0].PlayerID)
	s.Equal("Alice", out.Rows[0].PlayerName)

	rowFor := func(playerID string, category models.Category) ExportRow {
		for _, row := range out.Rows {
			if row.PlayerID == playerID && row.Category == category {
				return row
			}
		}
		s.FailNowf("row not found", "player %s category %s", playerID, category)
		return ExportRow{}
	}

	// Bob's Berlin is invalidated, which promotes Alice's copy to unique
	aliceCity := rowFor("conn-alice", models.CategoryCity)
	s.Equal("Berlin", aliceCity.Answer)
	s.False(aliceCity.Invalidated)
	s.Equal(10, aliceCity.Points)

	bobCity := rowFor("conn-bob", models.CategoryCity)
	s.Equal("Berlin", bobCity.Answer)
	s.True(bobCity.Invalidated)
	s.Equal(0, bobCity.Points)

	aliceName := rowFor("conn-alice", models.CategoryName)
	s.Equal("Bob", aliceName.Answer)
	s.Equal(10, aliceName.Points)

	// Categories never answered still get a row, empty and worthless
	aliceThing := rowFor("conn-alice", models.CategoryThing)
	s.Equal("", aliceThing.Answer)
	s.Equal(0, aliceThing.Points)

	s.Equal("B", out.Rows[0].Letter)
	s.Equal(1, out.Rows[0].Round)
}

func (s *GameServiceTestSuite) TestExportAnswersDepartedPlayerLast() {
	room := s.storedRoomFixture()
	room.Players = room.Players[:1]

	s.mockRoomRepo.EXPECT().
		GetRoom(gomock.Any(), gomock.Any()).
		Return(room, nil)
	s.mockAnswers.EXPECT().
		GetRoundAnswersForRoom(gomock.Any(), gomock.Any()).
		Return(&answersRepo.GetRoundAnswersForRoomOutput{
			Rounds: []*models.RoundAnswers{s.storedRoundFixture()},
		}, nil)

	out, err := s.service.ExportAnswers(s.ctx, &ExportAnswersInput{RoomID: "ABC1"})
	s.Require().NoError(err)

	// Bob has left the room; his rows trail Alice's and fall back to the
	// player ID for the name
	s.Require().Len(out.Rows, 2*len(models.Categories()))
	s.Equal("conn-alice", out.Rows[0].PlayerID)
	departed := out.Rows[len(models.Categories())]
	s.Equal("conn-bob", departed.PlayerID)
	s.Equal("conn-bob", departed.PlayerName)
}

func (s *GameServiceTestSuite) TestExportAnswersRoomNotFound() {
	s.mockRoomRepo.EXPECT().
		GetRoom(gomock.Any(), gomock.Any()).
		Return(nil, roomRepo.ErrRoomNotFound)

	_, err := s.service.ExportAnswers(s.ctx, &ExportAnswersInput{RoomID: "gone"})
	s.Require().ErrorIs(err, ErrRoomNotFound)
}
