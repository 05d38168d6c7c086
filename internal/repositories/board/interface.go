package board

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ireh1214/discodebot/internal/repositories/board Repository

import (
	"context"

	"github.com/ireh1214/discodebot/internal/models"
)

// Repository defines the interface for signup board persistence
type Repository interface {
	// SaveBoard persists a board
	SaveBoard(ctx context.Context, input *SaveBoardInput) error

	// GetBoard retrieves a board by ID
	GetBoard(ctx context.Context, input *GetBoardInput) (*models.SignupBoard, error)
}
