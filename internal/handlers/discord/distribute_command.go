package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/ireh1214/discodebot/internal/models"
	"github.com/ireh1214/discodebot/internal/services/distribution"
	"github.com/ireh1214/discodebot/internal/services/messaging"
)

// mentionPattern matches a user mention token like <@123> or <@!123>
var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>$`)

// DistributeCommand handles the payout checklist command and its checkboxes
type DistributeCommand struct {
	BaseCommand
	distributionService distribution.Service
	messagingService    messaging.Service
}

// NewDistributeCommand creates a new distribute command handler
func NewDistributeCommand(distributionService distribution.Service, messagingService messaging.Service) *DistributeCommand {
	return &DistributeCommand{
		BaseCommand: BaseCommand{
			Name:        "distribute",
			Description: "분배금 수령 체크리스트를 생성합니다.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "파티원",
					Description: "파티원 멘션 또는 이름을 공백으로 구분해 입력하세요.",
					Required:    true,
				},
			},
		},
		distributionService: distributionService,
		messagingService:    messagingService,
	}
}

// Handle processes the distribute slash command
func (c *DistributeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	opts := optionMap(i.ApplicationCommandData().Options)
	userID, _ := interactionUser(i)

	var raw string
	if opt, ok := opts["파티원"]; ok {
		raw = opt.StringValue()
	}

	recipients := c.parseRecipients(s, i.GuildID, strings.Fields(raw))
	if len(recipients) == 0 {
		return RespondWithEphemeralMessage(s, i, "👥 파티원 이름 또는 멘션을 입력해 주세요. 예: `/distribute @루니클 @차숙희 @공홍`")
	}

	out, err := c.distributionService.CreateChecklist(ctx, &distribution.CreateChecklistInput{
		ChannelID:  i.ChannelID,
		AuthorID:   userID,
		Recipients: recipients,
	})
	if err != nil {
		log.Printf("Error creating checklist: %v", err)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("체크리스트 생성에 실패했어요: %v", err))
	}

	intro, err := c.messagingService.GetDistributionIntro(ctx, &messaging.GetDistributionIntroInput{})
	if err != nil {
		return fmt.Errorf("failed to pick intro line: %w", err)
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    intro.Message,
			Components: renderRows(out.Checklist.Components()),
		},
	}); err != nil {
		return fmt.Errorf("failed to post checklist message: %w", err)
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return fmt.Errorf("failed to fetch checklist message: %w", err)
	}

	if err := c.distributionService.AttachMessage(ctx, &distribution.AttachMessageInput{
		ChecklistID: out.Checklist.ID,
		MessageID:   msg.ID,
	}); err != nil {
		log.Printf("Error attaching checklist message: %v", err)
		// Not critical, continue
	}

	return nil
}

// parseRecipients turns the typed tokens into recipients. Mention tokens are
// resolved to guild members; unresolvable mentions are skipped, anything else
// becomes a text-only entry.
func (c *DistributeCommand) parseRecipients(s *discordgo.Session, guildID string, tokens []string) []distribution.Recipient {
	var recipients []distribution.Recipient
	for _, token := range tokens {
		m := mentionPattern.FindStringSubmatch(token)
		if m == nil {
			recipients = append(recipients, distribution.Recipient{Label: token})
			continue
		}

		member, err := s.GuildMember(guildID, m[1])
		if err != nil {
			log.Printf("Error resolving member %s: %v", m[1], err)
			continue
		}

		label := member.User.Username
		if member.Nick != "" {
			label = member.Nick
		}

		recipients = append(recipients, distribution.Recipient{
			UserID: member.User.ID,
			Label:  label,
		})
	}

	return recipients
}

// handleCheckboxButton handles a press on one checklist checkbox
func (c *DistributeCommand) handleCheckboxButton(s *discordgo.Session, i *discordgo.InteractionCreate, checklistID string, index int) error {
	ctx := context.Background()

	userID, _ := interactionUser(i)

	out, err := c.distributionService.ToggleCheckbox(ctx, &distribution.ToggleCheckboxInput{
		ChecklistID: checklistID,
		Index:       index,
		ActorID:     userID,
	})
	if err != nil {
		var authErr *models.CheckboxAuthError
		if errors.As(err, &authErr) {
			if authErr.TextOnly {
				return RespondWithEphemeralMessage(s, i, "❌ 이 버튼은 명령어 실행자만 누를 수 있어요!")
			}
			return RespondWithEphemeralMessage(s, i, "❌ 이 버튼은 본인 또는 명령어 실행자만 누를 수 있어요!")
		}
		if errors.Is(err, distribution.ErrChecklistNotFound) {
			return RespondWithEphemeralMessage(s, i, "이 체크리스트는 더 이상 유효하지 않아요.")
		}
		log.Printf("Error toggling checkbox: %v", err)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("체크에 실패했어요: %v", err))
	}

	if err := UpdateWithComponents(s, i, nil, renderRows(out.Checklist.Components())); err != nil {
		return err
	}

	// Announce completion exactly once, on the press that checked the last box
	if out.Completed {
		if _, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
			Content: "🎉 모두에게 분배금이 지급 완료되었습니다!",
			Flags:   discordgo.MessageFlagsEphemeral,
		}); err != nil {
			log.Printf("Error sending completion notice: %v", err)
		}
	}

	return nil
}
