package channeldraw

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/common/uuid"
	"github.com/ireh1214/discodebot/internal/draw"
	"github.com/ireh1214/discodebot/internal/models"
	drawRepo "github.com/ireh1214/discodebot/internal/repositories/channeldraw"
)

// service implements the Service interface
type service struct {
	drawRepo    drawRepo.Repository
	clock       clock.Clock
	uuid        uuid.UUID
	picker      draw.Picker
	retryWindow time.Duration
}

// NewService creates a new channel draw service
func NewService(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DrawRepo == nil {
		return nil, ErrNilDrawRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUID == nil {
		return nil, ErrNilUUID
	}

	if cfg.Picker == nil {
		return nil, ErrNilPicker
	}

	retryWindow := cfg.RetryWindow
	if retryWindow <= 0 {
		retryWindow = DefaultRetryWindow
	}

	return &service{
		drawRepo:    cfg.DrawRepo,
		clock:       cfg.Clock,
		uuid:        cfg.UUID,
		picker:      cfg.Picker,
		retryWindow: retryWindow,
	}, nil
}

// Draw picks a channel, classifies it, and arms a retry when flagged.
// Only flagged draws are persisted; a normal outcome has no retry to track.
func (s *service) Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error) {
	available := models.AvailableChannels()
	number := available[s.picker.Intn(len(available))]

	now := s.clock.Now()

	d := &models.ChannelDraw{
		ID:        s.uuid.NewUUID(),
		ChannelID: input.ChannelID,
		AuthorID:  input.AuthorID,
		Number:    number,
		Category:  models.ClassifyChannel(number),
		CreatedAt: now,
	}

	if d.Flagged() {
		d.ExpiresAt = now.Add(s.retryWindow)

		// keep the stored draw around a bit past expiry so a press that
		// races the deadline still resolves to "expired" rather than
		// "unknown button"
		if err := s.drawRepo.SaveDraw(ctx, &drawRepo.SaveDrawInput{
			Draw: d,
			TTL:  2 * s.retryWindow,
		}); err != nil {
			return nil, fmt.Errorf("failed to save draw: %w", err)
		}
	}

	return &DrawOutput{Draw: d}, nil
}

// AttachMessage binds a flagged draw to the message it was posted on
func (s *service) AttachMessage(ctx context.Context, input *AttachMessageInput) error {
	d, err := s.getDraw(ctx, input.DrawID)
	if err != nil {
		return err
	}

	d.MessageID = input.MessageID

	ttl := 2 * s.retryWindow
	if err := s.drawRepo.SaveDraw(ctx, &drawRepo.SaveDrawInput{Draw: d, TTL: ttl}); err != nil {
		return fmt.Errorf("failed to save draw: %w", err)
	}

	return nil
}

// Retry consumes a draw's retry control and runs a fresh draw
func (s *service) Retry(ctx context.Context, input *RetryInput) (*RetryOutput, error) {
	previous, err := s.getDraw(ctx, input.DrawID)
	if err != nil {
		return nil, err
	}

	if input.ActorID != previous.AuthorID {
		return nil, ErrNotAuthorized
	}

	if previous.RetryUsed {
		return nil, ErrRetryConsumed
	}

	if previous.Expired(s.clock.Now()) {
		return nil, ErrRetryExpired
	}

	previous.RetryUsed = true
	if err := s.drawRepo.SaveDraw(ctx, &drawRepo.SaveDrawInput{
		Draw: previous,
		TTL:  2 * s.retryWindow,
	}); err != nil {
		return nil, fmt.Errorf("failed to save draw: %w", err)
	}

	output, err := s.Draw(ctx, &DrawInput{
		ChannelID: previous.ChannelID,
		AuthorID:  previous.AuthorID,
	})
	if err != nil {
		return nil, err
	}

	return &RetryOutput{
		Previous: previous,
		Draw:     output.Draw,
	}, nil
}

func (s *service) getDraw(ctx context.Context, drawID string) (*models.ChannelDraw, error) {
	d, err := s.drawRepo.GetDraw(ctx, &drawRepo.GetDrawInput{DrawID: drawID})
	if err != nil {
		if errors.Is(err, drawRepo.ErrDrawNotFound) {
			// evicted by TTL: the window is over either way
			return nil, ErrRetryExpired
		}
		return nil, err
	}

	return d, nil
}
