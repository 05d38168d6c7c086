package messaging

import "github.com/ireh1214/discodebot/internal/draw"

// Config holds the dependencies for the messaging service
type Config struct {
	// Picker supplies the randomness; defaults to a time-seeded picker
	Picker draw.Picker
}

// GetGreetingInput holds the parameters for GetGreeting
type GetGreetingInput struct{}

// GetGreetingOutput holds the results of GetGreeting
type GetGreetingOutput struct {
	// Message is the selected greeting
	Message string
}

// GetDistributionIntroInput holds the parameters for GetDistributionIntro
type GetDistributionIntroInput struct{}

// GetDistributionIntroOutput holds the results of GetDistributionIntro
type GetDistributionIntroOutput struct {
	// Message is the selected intro line
	Message string
}

// GetItemSplitTitleInput holds the parameters for GetItemSplitTitle
type GetItemSplitTitleInput struct{}

// GetItemSplitTitleOutput holds the results of GetItemSplitTitle
type GetItemSplitTitleOutput struct {
	// Title is the selected embed title
	Title string
}

// GetDrawFlavorInput holds the parameters for GetDrawFlavor
type GetDrawFlavorInput struct{}

// GetDrawFlavorOutput holds the results of GetDrawFlavor
type GetDrawFlavorOutput struct {
	// Message is the selected flavor line
	Message string
}

// PickTokenInput holds the parameters for PickToken
type PickTokenInput struct {
	// Tokens are the candidates; must not be empty
	Tokens []string
}

// PickTokenOutput holds the results of PickToken
type PickTokenOutput struct {
	// Token is the selected candidate
	Token string
}
