package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/payout"
	"github.com/ireh1214/discodebot/internal/services/messaging"
	"github.com/ireh1214/discodebot/internal/timeparse"
)

// SplitCommand handles the payout calculators
type SplitCommand struct {
	BaseCommand
	messagingService messaging.Service
	clock            clock.Clock
}

// NewSplitCommand creates a new split command handler
func NewSplitCommand(messagingService messaging.Service, clk clock.Clock) *SplitCommand {
	return &SplitCommand{
		BaseCommand: BaseCommand{
			Name:        "split",
			Description: "분배금을 계산합니다.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "simple",
					Description: "총 판매금액에서 제작비를 뺀 금액을 분배합니다.",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "총금액",
							Description: "총 판매금액 (185숲, 185, 1850000)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "인원수",
							Description: "파티 인원 수 (기본: 8명)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "제작비",
							Description: "제작비 (기본: 0)",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "items",
					Description: "성수 판매 분배금을 계산합니다.",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "성수개수",
							Description: "성수 개수를 숫자로 적어주세요 (예: 8)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "판매금액",
							Description: "성수 가격 (185숲, 1,850,000, 185)",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "인원수",
							Description: "파티 인원 수 (기본: 8명)",
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "수수료몇퍼",
							Description: "경매장 수수료 할인율 % (기본: 0%)",
						},
					},
				},
			},
		},
		messagingService: messagingService,
		clock:            clk,
	}
}

// Handle processes the split slash command
func (c *SplitCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithEphemeralMessage(s, i, "하위 명령어를 선택해 주세요.")
	}

	sub := data.Options[0]
	switch sub.Name {
	case "simple":
		return c.handleSimple(s, i, optionMap(sub.Options))
	case "items":
		return c.handleItems(s, i, optionMap(sub.Options))
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("알 수 없는 하위 명령어예요: %s", sub.Name))
	}
}

// handleSimple computes and posts a flat split
func (c *SplitCommand) handleSimple(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &payout.SimpleSplitInput{
		PartySize: payout.DefaultPartySize,
		CostRaw:   "0",
	}
	if opt, ok := opts["총금액"]; ok {
		input.TotalPriceRaw = opt.StringValue()
	}
	if opt, ok := opts["인원수"]; ok {
		input.PartySize = int(opt.IntValue())
	}
	if opt, ok := opts["제작비"]; ok {
		input.CostRaw = opt.StringValue()
	}

	out, err := payout.SimpleSplit(input)
	if err != nil {
		switch {
		case errors.Is(err, payout.ErrInvalidAmount):
			return RespondWithEphemeralMessage(s, i, "❌ 제작비는 숫자 또는 숲 단위로 입력해 주세요. 예: `80`, `80숲`, `800000`")
		case errors.Is(err, payout.ErrInsufficientFunds):
			return RespondWithEphemeralMessage(s, i, "❌ 손해입니다! 총 판매가에서 제작비를 뺀 값이 음수예요.")
		case errors.Is(err, payout.ErrInvalidPartySize):
			return RespondWithEphemeralMessage(s, i, "❌ 인원 수는 1명 이상이어야 해요.")
		default:
			log.Printf("Error computing simple split: %v", err)
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("계산에 실패했어요: %v", err))
		}
	}

	return RespondWithMessage(s, i, renderSimpleSplitMessage(out, input.PartySize))
}

// handleItems computes and posts a holy water sale split
func (c *SplitCommand) handleItems(s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) error {
	ctx := context.Background()

	// The discount day is decided in Korean time regardless of host zone
	input := &payout.ItemSaleSplitInput{
		PartySize: payout.DefaultPartySize,
		Weekday:   c.clock.Now().In(timeparse.KST).Weekday(),
	}
	if opt, ok := opts["성수개수"]; ok {
		input.Count = int(opt.IntValue())
	}
	if opt, ok := opts["판매금액"]; ok {
		input.RawPrice = opt.StringValue()
	}
	if opt, ok := opts["인원수"]; ok {
		input.PartySize = int(opt.IntValue())
	}
	if opt, ok := opts["수수료몇퍼"]; ok {
		input.FeeDiscountPercent = int(opt.IntValue())
	}

	out, err := payout.ItemSaleSplit(input)
	if err != nil {
		switch {
		case errors.Is(err, payout.ErrInvalidAmount):
			return RespondWithEphemeralMessage(s, i, "❌ 성수 가격 형식이 잘못되었습니다. 예: `100`, `100숲`, `1000000`")
		case errors.Is(err, payout.ErrInsufficientFunds):
			return RespondWithEphemeralMessage(s, i, "❌ 손해입니다. 제작비와 수수료를 고려한 수익이 적자입니다!")
		case errors.Is(err, payout.ErrInvalidCount):
			return RespondWithEphemeralMessage(s, i, "❌ 성수 개수는 1개 이상이어야 해요.")
		case errors.Is(err, payout.ErrInvalidPartySize):
			return RespondWithEphemeralMessage(s, i, "❌ 인원 수는 1명 이상이어야 해요.")
		default:
			log.Printf("Error computing item split: %v", err)
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("계산에 실패했어요: %v", err))
		}
	}

	title, err := c.messagingService.GetItemSplitTitle(ctx, &messaging.GetItemSplitTitleInput{})
	if err != nil {
		return fmt.Errorf("failed to pick split title: %w", err)
	}

	return RespondWithEmbed(s, i, renderItemSplitEmbed(title.Title, out, input.Count, input.PartySize))
}
