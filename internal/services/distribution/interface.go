package distribution

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ireh1214/discodebot/internal/services/distribution Service

import "context"

// Service manages payout checklists
type Service interface {
	// CreateChecklist creates a checklist from a recipient list
	CreateChecklist(ctx context.Context, input *CreateChecklistInput) (*CreateChecklistOutput, error)

	// AttachMessage binds a checklist to the message it was posted on
	AttachMessage(ctx context.Context, input *AttachMessageInput) error

	// ToggleCheckbox flips one recipient's confirmation on behalf of an actor
	ToggleCheckbox(ctx context.Context, input *ToggleCheckboxInput) (*ToggleCheckboxOutput, error)
}
