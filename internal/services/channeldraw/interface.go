package channeldraw

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ireh1214/discodebot/internal/services/channeldraw Service

import "context"

// Service runs channel draws and their one-shot retries
type Service interface {
	// Draw picks a channel, classifies it, and arms a retry when flagged
	Draw(ctx context.Context, input *DrawInput) (*DrawOutput, error)

	// AttachMessage binds a flagged draw to the message it was posted on
	AttachMessage(ctx context.Context, input *AttachMessageInput) error

	// Retry consumes a draw's retry control and runs a fresh draw
	Retry(ctx context.Context, input *RetryInput) (*RetryOutput, error)
}
