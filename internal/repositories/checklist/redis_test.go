package checklist

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

func (s *RedisRepositoryTestSuite) newChecklist() *models.PayoutChecklist {
	return &models.PayoutChecklist{
		ID:        "test-checklist-id",
		ChannelID: "test-channel-id",
		MessageID: "test-message-id",
		AuthorID:  "test-author-id",
		Boxes: []*models.PayoutCheckbox{
			{Label: "루니클", UserID: "user-1", Checked: true},
			{Label: "용병"},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetChecklist() {
	checklist := s.newChecklist()

	err := s.repo.SaveChecklist(context.Background(), &SaveChecklistInput{Checklist: checklist})
	s.Require().NoError(err)

	got, err := s.repo.GetChecklist(context.Background(), &GetChecklistInput{
		ChecklistID: checklist.ID,
	})
	s.Require().NoError(err)

	s.Equal(checklist.AuthorID, got.AuthorID)
	s.Require().Len(got.Boxes, 2)
	s.True(got.Boxes[0].Checked)
	s.Empty(got.Boxes[1].UserID)
}

func (s *RedisRepositoryTestSuite) TestGetChecklistNotFound() {
	_, err := s.repo.GetChecklist(context.Background(), &GetChecklistInput{ChecklistID: "missing"})
	s.ErrorIs(err, ErrChecklistNotFound)
}
