package board

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ireh1214/discodebot/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newBoard() *models.SignupBoard {
	board := &models.SignupBoard{
		ID:        "test-board-id",
		ChannelID: "test-channel-id",
		MessageID: "test-message-id",
		CreatorID: "test-creator-id",
		Dungeon:   "자쿰",
		TimeText:  "2025-07-15 09:00",
		Note:      "오시는 분들 환영",
		Slots:     models.NewRoleSlots(),
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
	board.Slots[0].Members = []models.Participant{
		{ID: "user-1", DisplayName: "루니클"},
	}

	return board
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetBoard() {
	board := s.newBoard()

	err := s.repo.SaveBoard(context.Background(), &SaveBoardInput{Board: board})
	s.Require().NoError(err)

	got, err := s.repo.GetBoard(context.Background(), &GetBoardInput{BoardID: board.ID})
	s.Require().NoError(err)

	s.Equal(board.ID, got.ID)
	s.Equal(board.Dungeon, got.Dungeon)
	s.Require().Len(got.Slots, len(models.Roles))
	s.Equal(models.RoleDealer, got.Slots[0].Role)
	s.Require().Len(got.Slots[0].Members, 1)
	s.Equal("루니클", got.Slots[0].Members[0].DisplayName)
}

func (s *RedisRepositoryTestSuite) TestGetBoardNotFound() {
	_, err := s.repo.GetBoard(context.Background(), &GetBoardInput{BoardID: "missing"})
	s.ErrorIs(err, ErrBoardNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveOverwritesExistingState() {
	board := s.newBoard()

	err := s.repo.SaveBoard(context.Background(), &SaveBoardInput{Board: board})
	s.Require().NoError(err)

	board.Slots[0].Members = nil
	err = s.repo.SaveBoard(context.Background(), &SaveBoardInput{Board: board})
	s.Require().NoError(err)

	got, err := s.repo.GetBoard(context.Background(), &GetBoardInput{BoardID: board.ID})
	s.Require().NoError(err)
	s.Empty(got.Slots[0].Members)
}
