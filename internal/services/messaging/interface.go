package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/ireh1214/discodebot/internal/services/messaging Service

import "context"

// Service hands out the bot's canned copy: greetings, intros, titles and
// flavor lines, selected at random per call
type Service interface {
	// GetGreeting returns a greeting for the greet command
	GetGreeting(ctx context.Context, input *GetGreetingInput) (*GetGreetingOutput, error)

	// GetDistributionIntro returns an intro line for a new payout checklist
	GetDistributionIntro(ctx context.Context, input *GetDistributionIntroInput) (*GetDistributionIntroOutput, error)

	// GetItemSplitTitle returns an embed title for an item sale split
	GetItemSplitTitle(ctx context.Context, input *GetItemSplitTitleInput) (*GetItemSplitTitleOutput, error)

	// GetDrawFlavor returns a flavor line for a normal channel draw
	GetDrawFlavor(ctx context.Context, input *GetDrawFlavorInput) (*GetDrawFlavorOutput, error)

	// PickToken returns one of the given tokens uniformly at random
	PickToken(ctx context.Context, input *PickTokenInput) (*PickTokenOutput, error)
}
