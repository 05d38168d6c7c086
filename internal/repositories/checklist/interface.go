package checklist

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/ireh1214/discodebot/internal/repositories/checklist Repository

import (
	"context"

	"github.com/ireh1214/discodebot/internal/models"
)

// Repository defines the interface for payout checklist persistence
type Repository interface {
	// SaveChecklist persists a checklist
	SaveChecklist(ctx context.Context, input *SaveChecklistInput) error

	// GetChecklist retrieves a checklist by ID
	GetChecklist(ctx context.Context, input *GetChecklistInput) (*models.PayoutChecklist, error)
}
