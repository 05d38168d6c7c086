package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/ireh1214/discodebot/internal/models"
	"github.com/ireh1214/discodebot/internal/services/party"
	"github.com/ireh1214/discodebot/internal/timeparse"
)

// threadArchiveMinutes is the auto-archive duration for party threads
const threadArchiveMinutes = 60

// PartyCommand handles the party recruitment command and its buttons
type PartyCommand struct {
	BaseCommand
	partyService party.Service
}

// NewPartyCommand creates a new party command handler
func NewPartyCommand(partyService party.Service) *PartyCommand {
	return &PartyCommand{
		BaseCommand: BaseCommand{
			Name:        "party",
			Description: "파티 모집 메시지를 생성합니다.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "던전",
					Description: "던전 이름을 입력하세요.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "시간",
					Description: "시작 시간을 입력하세요.(24시간제로) 예: 7-15-9시, 7.15 09:00",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "내용",
					Description: "파티 모집 내용을 입력하세요.",
					Required:    true,
				},
			},
		},
		partyService: partyService,
	}
}

// Handle processes the party slash command
func (c *PartyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	opts := optionMap(i.ApplicationCommandData().Options)
	userID, _ := interactionUser(i)

	input := &party.CreateBoardInput{
		ChannelID: i.ChannelID,
		CreatorID: userID,
	}
	if opt, ok := opts["던전"]; ok {
		input.Dungeon = opt.StringValue()
	}
	if opt, ok := opts["시간"]; ok {
		input.TimeText = opt.StringValue()
	}
	if opt, ok := opts["내용"]; ok {
		input.Note = opt.StringValue()
	}

	out, err := c.partyService.CreateBoard(ctx, input)
	if err != nil {
		if errors.Is(err, timeparse.ErrNoTimestamp) || errors.Is(err, timeparse.ErrInvalidDate) {
			return RespondWithEphemeralMessage(s, i, "시간 형식이 올바르지 않습니다. 예: 7-15-9시")
		}
		log.Printf("Error creating board: %v", err)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("파티 생성에 실패했어요: %v", err))
	}

	// Post the recruitment message with the role and finalize buttons
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{renderBoardEmbed(out.Board)},
			Components: renderBoardRows(out.Board),
		},
	}); err != nil {
		return fmt.Errorf("failed to post board message: %w", err)
	}

	msg, err := s.InteractionResponse(i.Interaction)
	if err != nil {
		return fmt.Errorf("failed to fetch board message: %w", err)
	}

	if err := c.partyService.AttachMessage(ctx, &party.AttachMessageInput{
		BoardID:   out.Board.ID,
		MessageID: msg.ID,
	}); err != nil {
		log.Printf("Error attaching board message: %v", err)
		// Not critical, continue
	}

	// Open a discussion thread under the recruitment message
	if _, err := s.MessageThreadStartComplex(i.ChannelID, msg.ID, &discordgo.ThreadStart{
		Name:                out.Board.Dungeon,
		AutoArchiveDuration: threadArchiveMinutes,
	}); err != nil {
		log.Printf("Error creating board thread: %v", err)
		// Not critical, continue
	}

	return nil
}

// handleRoleButton handles a press on one of the board's role buttons
func (c *PartyCommand) handleRoleButton(s *discordgo.Session, i *discordgo.InteractionCreate, boardID string, role models.Role) error {
	ctx := context.Background()

	userID, displayName := interactionUser(i)

	out, err := c.partyService.ToggleRole(ctx, &party.ToggleRoleInput{
		BoardID: boardID,
		Role:    role,
		Participant: models.Participant{
			ID:          userID,
			DisplayName: displayName,
		},
	})
	if err != nil {
		var conflict *models.RoleConflictError
		if errors.As(err, &conflict) {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("❌ 이미 `%s` 역할로 참가 중입니다!", conflict.Role))
		}
		if errors.Is(err, party.ErrBoardNotFound) {
			return RespondWithEphemeralMessage(s, i, "이 모집은 더 이상 유효하지 않아요.")
		}
		log.Printf("Error toggling role: %v", err)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("역할 변경에 실패했어요: %v", err))
	}

	return UpdateWithComponents(s, i,
		[]*discordgo.MessageEmbed{renderBoardEmbed(out.Board)},
		renderBoardRows(out.Board))
}

// handleFinalizeButton handles a press on the board's finalize button and
// publishes the party as a guild scheduled event
func (c *PartyCommand) handleFinalizeButton(s *discordgo.Session, i *discordgo.InteractionCreate, boardID string) error {
	ctx := context.Background()

	out, err := c.partyService.FinalizeBoard(ctx, &party.FinalizeBoardInput{BoardID: boardID})
	if err != nil {
		if errors.Is(err, party.ErrBoardNotFound) {
			return RespondWithEphemeralMessage(s, i, "이 모집은 더 이상 유효하지 않아요.")
		}
		log.Printf("Error finalizing board: %v", err)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("이벤트 생성에 실패했어요: %v", err))
	}

	startTime := out.StartTime
	endTime := out.EndTime

	event, err := s.GuildScheduledEventCreate(i.GuildID, &discordgo.GuildScheduledEventParams{
		Name:               out.Name,
		Description:        out.Description,
		ScheduledStartTime: &startTime,
		ScheduledEndTime:   &endTime,
		PrivacyLevel:       discordgo.GuildScheduledEventPrivacyLevelGuildOnly,
		EntityType:         discordgo.GuildScheduledEventEntityTypeExternal,
		EntityMetadata: &discordgo.GuildScheduledEventEntityMetadata{
			Location: out.Location,
		},
	})
	if err != nil {
		log.Printf("Error creating scheduled event: %v", err)
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("이벤트 생성에 실패했어요: %v", err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("✅ 이벤트 생성 완료: %s", event.Name))
}
