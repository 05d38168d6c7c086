package channeldraw

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ireh1214/discodebot/internal/repositories/channeldraw Repository

import (
	"context"

	"github.com/ireh1214/discodebot/internal/models"
)

// Repository defines the interface for channel draw persistence
type Repository interface {
	// SaveDraw persists a draw, optionally with a time-to-live
	SaveDraw(ctx context.Context, input *SaveDrawInput) error

	// GetDraw retrieves a draw by ID
	GetDraw(ctx context.Context, input *GetDrawInput) (*models.ChannelDraw, error)
}
