package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/ireh1214/discodebot/internal/services/messaging"
)

// GreetCommand handles the greeting command
type GreetCommand struct {
	BaseCommand
	messagingService messaging.Service
}

// NewGreetCommand creates a new greet command handler
func NewGreetCommand(messagingService messaging.Service) *GreetCommand {
	return &GreetCommand{
		BaseCommand: BaseCommand{
			Name:        "greet",
			Description: "퍼리가 인사해줍니다 🐾",
		},
		messagingService: messagingService,
	}
}

// Handle processes the greet slash command
func (c *GreetCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.messagingService.GetGreeting(context.Background(), &messaging.GetGreetingInput{})
	if err != nil {
		return fmt.Errorf("failed to pick greeting: %w", err)
	}

	return RespondWithMessage(s, i, out.Message)
}
