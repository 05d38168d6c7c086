package discord

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ireh1214/discodebot/internal/services/messaging"
)

// PickCommand handles the random pick command
type PickCommand struct {
	BaseCommand
	messagingService messaging.Service
}

// NewPickCommand creates a new pick command handler
func NewPickCommand(messagingService messaging.Service) *PickCommand {
	return &PickCommand{
		BaseCommand: BaseCommand{
			Name:        "pick",
			Description: "입력한 항목 중 하나를 무작위로 선택합니다.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "항목",
					Description: "선택할 항목을 공백으로 구분해 입력하세요.",
					Required:    true,
				},
			},
		},
		messagingService: messagingService,
	}
}

// Handle processes the pick slash command
func (c *PickCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	opts := optionMap(i.ApplicationCommandData().Options)

	var raw string
	if opt, ok := opts["항목"]; ok {
		raw = opt.StringValue()
	}

	out, err := c.messagingService.PickToken(context.Background(), &messaging.PickTokenInput{
		Tokens: strings.Fields(raw),
	})
	if err != nil {
		if errors.Is(err, messaging.ErrNoTokens) {
			return RespondWithEphemeralMessage(s, i, "❌ 선택할 항목을 입력해 주세요. 예: `/pick 차숙희 공홍 안세린 사늑`")
		}
		return fmt.Errorf("failed to pick token: %w", err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("🎲 랜덤 선택 결과는?: \n# %s 🎉", out.Token))
}
