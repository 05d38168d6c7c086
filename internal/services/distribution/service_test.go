package distribution

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/ireh1214/discodebot/internal/common/clock/mocks"
	uuidMocks "github.com/ireh1214/discodebot/internal/common/uuid/mocks"
	"github.com/ireh1214/discodebot/internal/models"
	checklistRepo "github.com/ireh1214/discodebot/internal/repositories/checklist"
	checklistMocks "github.com/ireh1214/discodebot/internal/repositories/checklist/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DistributionServiceTestSuite struct {
	suite.Suite
	mockCtrl          *gomock.Controller
	mockChecklistRepo *checklistMocks.MockRepository
	mockClock         *clockMocks.MockClock
	mockUUID          *uuidMocks.MockUUID
	distService       Service
	ctx               context.Context

	// Test data
	testTime        time.Time
	testChecklistID string
	testChannelID   string
	testAuthorID    string

	expectedChecklist *models.PayoutChecklist
}

func (s *DistributionServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockChecklistRepo = checklistMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	s.testChecklistID = "test-checklist-id"
	s.testChannelID = "test-channel-id"
	s.testAuthorID = "test-author-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	s.expectedChecklist = &models.PayoutChecklist{
		ID:        s.testChecklistID,
		ChannelID: s.testChannelID,
		AuthorID:  s.testAuthorID,
		Boxes: []*models.PayoutCheckbox{
			{Label: "루니클", UserID: "user-1"},
			{Label: "용병"},
		},
		CreatedAt: s.testTime,
		UpdatedAt: s.testTime,
	}

	svc, err := NewService(&Config{
		ChecklistRepo: s.mockChecklistRepo,
		Clock:         s.mockClock,
		UUID:          s.mockUUID,
	})
	s.Require().NoError(err)
	s.distService = svc
}

func (s *DistributionServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDistributionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DistributionServiceTestSuite))
}

func (s *DistributionServiceTestSuite) TestCreateChecklist() {
	s.mockUUID.EXPECT().NewUUID().Return(s.testChecklistID)
	s.mockChecklistRepo.EXPECT().
		SaveChecklist(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *checklistRepo.SaveChecklistInput) error {
			s.Equal(s.testChecklistID, input.Checklist.ID)
			s.Len(input.Checklist.Boxes, 2)
			return nil
		})

	output, err := s.distService.CreateChecklist(s.ctx, &CreateChecklistInput{
		ChannelID: s.testChannelID,
		AuthorID:  s.testAuthorID,
		Recipients: []Recipient{
			{UserID: "user-1", Label: "루니클"},
			{Label: "용병"},
		},
	})
	s.Require().NoError(err)

	s.Equal(s.testChecklistID, output.Checklist.ID)
	s.Equal("user-1", output.Checklist.Boxes[0].UserID)
	s.Empty(output.Checklist.Boxes[1].UserID)
}

func (s *DistributionServiceTestSuite) TestCreateChecklistRejectsEmptyList() {
	_, err := s.distService.CreateChecklist(s.ctx, &CreateChecklistInput{
		ChannelID: s.testChannelID,
		AuthorID:  s.testAuthorID,
	})
	s.ErrorIs(err, ErrNoRecipients)
}

func (s *DistributionServiceTestSuite) TestToggleCheckbox() {
	s.mockChecklistRepo.EXPECT().
		GetChecklist(s.ctx, &checklistRepo.GetChecklistInput{ChecklistID: s.testChecklistID}).
		Return(s.expectedChecklist, nil)
	s.mockChecklistRepo.EXPECT().
		SaveChecklist(s.ctx, gomock.Any()).
		Return(nil)

	output, err := s.distService.ToggleCheckbox(s.ctx, &ToggleCheckboxInput{
		ChecklistID: s.testChecklistID,
		Index:       0,
		ActorID:     "user-1",
	})
	s.Require().NoError(err)

	s.True(output.Checked)
	s.False(output.Completed)
}

func (s *DistributionServiceTestSuite) TestToggleCheckboxCompletes() {
	s.expectedChecklist.Boxes[0].Checked = true

	s.mockChecklistRepo.EXPECT().
		GetChecklist(s.ctx, gomock.Any()).
		Return(s.expectedChecklist, nil)
	s.mockChecklistRepo.EXPECT().
		SaveChecklist(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *checklistRepo.SaveChecklistInput) error {
			s.True(input.Checklist.Announced)
			return nil
		})

	output, err := s.distService.ToggleCheckbox(s.ctx, &ToggleCheckboxInput{
		ChecklistID: s.testChecklistID,
		Index:       1,
		ActorID:     s.testAuthorID,
	})
	s.Require().NoError(err)

	s.True(output.Completed)
}

func (s *DistributionServiceTestSuite) TestToggleCheckboxUnauthorizedDoesNotSave() {
	// no SaveChecklist expectation: a rejected press must not persist anything
	s.mockChecklistRepo.EXPECT().
		GetChecklist(s.ctx, gomock.Any()).
		Return(s.expectedChecklist, nil)

	_, err := s.distService.ToggleCheckbox(s.ctx, &ToggleCheckboxInput{
		ChecklistID: s.testChecklistID,
		Index:       1, // text-only box
		ActorID:     "user-1",
	})
	s.ErrorIs(err, models.ErrNotAuthorized)
	s.False(s.expectedChecklist.Boxes[1].Checked)
}

func (s *DistributionServiceTestSuite) TestToggleCheckboxChecklistNotFound() {
	s.mockChecklistRepo.EXPECT().
		GetChecklist(s.ctx, gomock.Any()).
		Return(nil, checklistRepo.ErrChecklistNotFound)

	_, err := s.distService.ToggleCheckbox(s.ctx, &ToggleCheckboxInput{
		ChecklistID: "missing",
		Index:       0,
		ActorID:     "user-1",
	})
	s.ErrorIs(err, ErrChecklistNotFound)
}
