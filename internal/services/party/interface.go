package party

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ireh1214/discodebot/internal/services/party Service

import "context"

// Service manages party signup boards
type Service interface {
	// CreateBoard parses the party time and creates a new signup board
	CreateBoard(ctx context.Context, input *CreateBoardInput) (*CreateBoardOutput, error)

	// AttachMessage binds a board to the message it was posted on
	AttachMessage(ctx context.Context, input *AttachMessageInput) error

	// ToggleRole flips a participant's membership in a role slot
	ToggleRole(ctx context.Context, input *ToggleRoleInput) (*ToggleRoleOutput, error)

	// FinalizeBoard produces the scheduled event record for a board
	FinalizeBoard(ctx context.Context, input *FinalizeBoardInput) (*FinalizeBoardOutput, error)
}
