package channeldraw

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/ireh1214/discodebot/internal/common/clock/mocks"
	uuidMocks "github.com/ireh1214/discodebot/internal/common/uuid/mocks"
	"github.com/ireh1214/discodebot/internal/draw"
	drawMocks "github.com/ireh1214/discodebot/internal/draw/mocks"
	"github.com/ireh1214/discodebot/internal/models"
	drawRepo "github.com/ireh1214/discodebot/internal/repositories/channeldraw"
	repoMocks "github.com/ireh1214/discodebot/internal/repositories/channeldraw/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DrawServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockDrawRepo *repoMocks.MockRepository
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	mockPicker   *drawMocks.MockPicker
	drawService  Service
	ctx          context.Context

	// Test data
	testTime      time.Time
	testDrawID    string
	testChannelID string
	testAuthorID  string
}

func (s *DrawServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDrawRepo = repoMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockPicker = drawMocks.NewMockPicker(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.testDrawID = "test-draw-id"
	s.testChannelID = "test-channel-id"
	s.testAuthorID = "test-author-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testDrawID).AnyTimes()

	svc, err := NewService(&Config{
		DrawRepo: s.mockDrawRepo,
		Clock:    s.mockClock,
		UUID:     s.mockUUID,
		Picker:   s.mockPicker,
	})
	s.Require().NoError(err)
	s.drawService = svc
}

func (s *DrawServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDrawServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DrawServiceTestSuite))
}

func (s *DrawServiceTestSuite) flaggedDraw() *models.ChannelDraw {
	return &models.ChannelDraw{
		ID:        s.testDrawID,
		ChannelID: s.testChannelID,
		AuthorID:  s.testAuthorID,
		Number:    2,
		Category:  models.ChannelProduction,
		ExpiresAt: s.testTime.Add(DefaultRetryWindow),
		CreatedAt: s.testTime,
	}
}

func (s *DrawServiceTestSuite) TestDrawNeverPicksExcludedChannels() {
	available := models.AvailableChannels()
	s.Len(available, 40)

	for _, n := range available {
		s.NotEqual(11, n)
		s.NotEqual(19, n)
	}
}

func (s *DrawServiceTestSuite) TestDrawNormalOutcomeIsNotSaved() {
	// available[0] == 1, a normal channel; no SaveDraw expectation
	s.mockPicker.EXPECT().Intn(40).Return(0)

	output, err := s.drawService.Draw(s.ctx, &DrawInput{
		ChannelID: s.testChannelID,
		AuthorID:  s.testAuthorID,
	})
	s.Require().NoError(err)

	s.Equal(1, output.Draw.Number)
	s.Equal(models.ChannelNormal, output.Draw.Category)
	s.False(output.Draw.Flagged())
}

func (s *DrawServiceTestSuite) TestDrawProductionChannelArmsRetry() {
	// available[1] == 2, the production channel
	s.mockPicker.EXPECT().Intn(40).Return(1)
	s.mockDrawRepo.EXPECT().
		SaveDraw(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *drawRepo.SaveDrawInput) error {
			s.Equal(2*DefaultRetryWindow, input.TTL)
			s.Equal(s.testTime.Add(DefaultRetryWindow), input.Draw.ExpiresAt)
			return nil
		})

	output, err := s.drawService.Draw(s.ctx, &DrawInput{
		ChannelID: s.testChannelID,
		AuthorID:  s.testAuthorID,
	})
	s.Require().NoError(err)

	s.Equal(2, output.Draw.Number)
	s.Equal(models.ChannelProduction, output.Draw.Category)
	s.True(output.Draw.Flagged())
}

func (s *DrawServiceTestSuite) TestDrawFieldRaidChannelIsFlagged() {
	// channels 11 and 19 are excluded, so available[11] == 13
	s.mockPicker.EXPECT().Intn(40).Return(11)
	s.mockDrawRepo.EXPECT().SaveDraw(s.ctx, gomock.Any()).Return(nil)

	output, err := s.drawService.Draw(s.ctx, &DrawInput{
		ChannelID: s.testChannelID,
		AuthorID:  s.testAuthorID,
	})
	s.Require().NoError(err)

	s.Equal(13, output.Draw.Number)
	s.Equal(models.ChannelFieldRaid, output.Draw.Category)
}

func (s *DrawServiceTestSuite) TestRetryRunsAFreshDraw() {
	previous := s.flaggedDraw()

	s.mockDrawRepo.EXPECT().
		GetDraw(s.ctx, &drawRepo.GetDrawInput{DrawID: s.testDrawID}).
		Return(previous, nil)
	// consumed draw saved, then the fresh flagged draw saved
	s.mockDrawRepo.EXPECT().SaveDraw(s.ctx, gomock.Any()).Return(nil).Times(2)
	s.mockPicker.EXPECT().Intn(40).Return(1)

	output, err := s.drawService.Retry(s.ctx, &RetryInput{
		DrawID:  s.testDrawID,
		ActorID: s.testAuthorID,
	})
	s.Require().NoError(err)

	s.True(output.Previous.RetryUsed)
	s.Equal(2, output.Draw.Number)
}

func (s *DrawServiceTestSuite) TestRetryRejectsOtherActor() {
	s.mockDrawRepo.EXPECT().
		GetDraw(s.ctx, gomock.Any()).
		Return(s.flaggedDraw(), nil)

	_, err := s.drawService.Retry(s.ctx, &RetryInput{
		DrawID:  s.testDrawID,
		ActorID: "someone-else",
	})
	s.ErrorIs(err, ErrNotAuthorized)
}

func (s *DrawServiceTestSuite) TestRetryRejectsSecondUse() {
	previous := s.flaggedDraw()
	previous.RetryUsed = true

	s.mockDrawRepo.EXPECT().
		GetDraw(s.ctx, gomock.Any()).
		Return(previous, nil)

	_, err := s.drawService.Retry(s.ctx, &RetryInput{
		DrawID:  s.testDrawID,
		ActorID: s.testAuthorID,
	})
	s.ErrorIs(err, ErrRetryConsumed)
}

func (s *DrawServiceTestSuite) TestRetryRejectsExpiredWindow() {
	previous := s.flaggedDraw()
	previous.ExpiresAt = s.testTime.Add(-time.Second)

	s.mockDrawRepo.EXPECT().
		GetDraw(s.ctx, gomock.Any()).
		Return(previous, nil)

	_, err := s.drawService.Retry(s.ctx, &RetryInput{
		DrawID:  s.testDrawID,
		ActorID: s.testAuthorID,
	})
	s.ErrorIs(err, ErrRetryExpired)
}

func (s *DrawServiceTestSuite) TestRetryEvictedDrawReadsAsExpired() {
	s.mockDrawRepo.EXPECT().
		GetDraw(s.ctx, gomock.Any()).
		Return(nil, drawRepo.ErrDrawNotFound)

	_, err := s.drawService.Retry(s.ctx, &RetryInput{
		DrawID:  s.testDrawID,
		ActorID: s.testAuthorID,
	})
	s.ErrorIs(err, ErrRetryExpired)
}

func (s *DrawServiceTestSuite) TestNewServiceValidatesDependencies() {
	_, err := NewService(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = NewService(&Config{
		Clock:  s.mockClock,
		UUID:   s.mockUUID,
		Picker: s.mockPicker,
	})
	s.ErrorIs(err, ErrNilDrawRepo)

	_, err = NewService(&Config{
		DrawRepo: s.mockDrawRepo,
		UUID:     s.mockUUID,
		Picker:   s.mockPicker,
	})
	s.ErrorIs(err, ErrNilClock)
}

// compile-time check that the default picker satisfies the service dependency
var _ draw.Picker = draw.New(&draw.Config{Seed: 1})
