package distribution

import (
	"context"
	"errors"
	"fmt"

	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/common/uuid"
	"github.com/ireh1214/discodebot/internal/models"
	checklistRepo "github.com/ireh1214/discodebot/internal/repositories/checklist"
)

// service implements the Service interface
type service struct {
	checklistRepo checklistRepo.Repository
	clock         clock.Clock
	uuid          uuid.UUID
}

// NewService creates a new distribution service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.ChecklistRepo == nil {
		return nil, ErrNilChecklistRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	return &service{
		checklistRepo: cfg.ChecklistRepo,
		clock:         cfg.Clock,
		uuid:          cfg.UUID,
	}, nil
}

// CreateChecklist creates a checklist from a recipient list
func (s *service) CreateChecklist(ctx context.Context, input *CreateChecklistInput) (*CreateChecklistOutput, error) {
	if len(input.Recipients) == 0 {
		return nil, ErrNoRecipients
	}

	boxes := make([]*models.PayoutCheckbox, 0, len(input.Recipients))
	for _, r := range input.Recipients {
		boxes = append(boxes, &models.PayoutCheckbox{
			Label:  r.Label,
			UserID: r.UserID,
		})
	}

	now := s.clock.Now()

	checklist := &models.PayoutChecklist{
		ID:        s.uuid.NewUUID(),
		ChannelID: input.ChannelID,
		AuthorID:  input.AuthorID,
		Boxes:     boxes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.checklistRepo.SaveChecklist(ctx, &checklistRepo.SaveChecklistInput{Checklist: checklist}); err != nil {
		return nil, fmt.Errorf("failed to save checklist: %w", err)
	}

	return &CreateChecklistOutput{Checklist: checklist}, nil
}

// AttachMessage binds a checklist to the message it was posted on
func (s *service) AttachMessage(ctx context.Context, input *AttachMessageInput) error {
	checklist, err := s.getChecklist(ctx, input.ChecklistID)
	if err != nil {
		return err
	}

	checklist.MessageID = input.MessageID
	checklist.UpdatedAt = s.clock.Now()

	if err := s.checklistRepo.SaveChecklist(ctx, &checklistRepo.SaveChecklistInput{Checklist: checklist}); err != nil {
		return fmt.Errorf("failed to save checklist: %w", err)
	}

	return nil
}

// ToggleCheckbox flips one recipient's confirmation on behalf of an actor.
// An unauthorized press leaves the checklist untouched.
func (s *service) ToggleCheckbox(ctx context.Context, input *ToggleCheckboxInput) (*ToggleCheckboxOutput, error) {
	checklist, err := s.getChecklist(ctx, input.ChecklistID)
	if err != nil {
		return nil, err
	}

	checked, completed, err := checklist.Toggle(input.Index, input.ActorID)
	if err != nil {
		return nil, err
	}

	checklist.UpdatedAt = s.clock.Now()

	if err := s.checklistRepo.SaveChecklist(ctx, &checklistRepo.SaveChecklistInput{Checklist: checklist}); err != nil {
		return nil, fmt.Errorf("failed to save checklist: %w", err)
	}

	return &ToggleCheckboxOutput{
		Checklist: checklist,
		Checked:   checked,
		Completed: completed,
	}, nil
}

func (s *service) getChecklist(ctx context.Context, checklistID string) (*models.PayoutChecklist, error) {
	checklist, err := s.checklistRepo.GetChecklist(ctx, &checklistRepo.GetChecklistInput{
		ChecklistID: checklistID,
	})
	if err != nil {
		if errors.Is(err, checklistRepo.ErrChecklistNotFound) {
			return nil, ErrChecklistNotFound
		}
		return nil, err
	}

	return checklist, nil
}
