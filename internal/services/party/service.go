package party

import (
	"context"
	"errors"
	"fmt"

	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/common/uuid"
	"github.com/ireh1214/discodebot/internal/models"
	boardRepo "github.com/ireh1214/discodebot/internal/repositories/board"
	"github.com/ireh1214/discodebot/internal/timeparse"
)

// service implements the Service interface
type service struct {
	boardRepo  boardRepo.Repository
	clock      clock.Clock
	uuid       uuid.UUID
	timeParser *timeparse.Parser
}

// NewService creates a new party service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BoardRepo == nil {
		return nil, ErrNilBoardRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	if cfg.TimeParser == nil {
		return nil, ErrNilTimeParser
	}

	return &service{
		boardRepo:  cfg.BoardRepo,
		clock:      cfg.Clock,
		uuid:       cfg.UUID,
		timeParser: cfg.TimeParser,
	}, nil
}

// CreateBoard parses the party time and creates a new signup board
func (s *service) CreateBoard(ctx context.Context, input *CreateBoardInput) (*CreateBoardOutput, error) {
	if input.Dungeon == "" {
		return nil, ErrMissingDungeon
	}

	startTime, err := s.timeParser.Parse(input.TimeText)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	board := &models.SignupBoard{
		ID:        s.uuid.NewUUID(),
		ChannelID: input.ChannelID,
		CreatorID: input.CreatorID,
		Dungeon:   input.Dungeon,
		StartTime: startTime,
		TimeText:  startTime.Format(timeparse.Layout),
		Note:      input.Note,
		Slots:     models.NewRoleSlots(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.boardRepo.SaveBoard(ctx, &boardRepo.SaveBoardInput{Board: board}); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &CreateBoardOutput{Board: board}, nil
}

// AttachMessage binds a board to the message it was posted on
func (s *service) AttachMessage(ctx context.Context, input *AttachMessageInput) error {
	board, err := s.getBoard(ctx, input.BoardID)
	if err != nil {
		return err
	}

	board.MessageID = input.MessageID
	board.UpdatedAt = s.clock.Now()

	if err := s.boardRepo.SaveBoard(ctx, &boardRepo.SaveBoardInput{Board: board}); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	return nil
}

// ToggleRole flips a participant's membership in a role slot
func (s *service) ToggleRole(ctx context.Context, input *ToggleRoleInput) (*ToggleRoleOutput, error) {
	board, err := s.getBoard(ctx, input.BoardID)
	if err != nil {
		return nil, err
	}

	joined, err := board.Toggle(input.Role, input.Participant)
	if err != nil {
		// conflict or unknown role; nothing was mutated, nothing is saved
		return nil, err
	}

	board.UpdatedAt = s.clock.Now()

	if err := s.boardRepo.SaveBoard(ctx, &boardRepo.SaveBoardInput{Board: board}); err != nil {
		return nil, fmt.Errorf("failed to save board: %w", err)
	}

	return &ToggleRoleOutput{
		Board:  board,
		Joined: joined,
	}, nil
}

// FinalizeBoard produces the scheduled event record for a board. The board
// stays interactive; finalizing does not consume the signups.
func (s *service) FinalizeBoard(ctx context.Context, input *FinalizeBoardInput) (*FinalizeBoardOutput, error) {
	board, err := s.getBoard(ctx, input.BoardID)
	if err != nil {
		return nil, err
	}

	return &FinalizeBoardOutput{
		Board:       board,
		Name:        fmt.Sprintf("%s 파티 모집", board.Dungeon),
		StartTime:   board.StartTime,
		EndTime:     board.StartTime.Add(EventDuration),
		Description: fmt.Sprintf("파티 내용: %s", board.Note),
		Location:    "디스코드 파티 모집",
	}, nil
}

func (s *service) getBoard(ctx context.Context, boardID string) (*models.SignupBoard, error) {
	board, err := s.boardRepo.GetBoard(ctx, &boardRepo.GetBoardInput{BoardID: boardID})
	if err != nil {
		if errors.Is(err, boardRepo.ErrBoardNotFound) {
			return nil, ErrBoardNotFound
		}
		return nil, err
	}

	return board, nil
}
