package discord

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/models"
	"github.com/ireh1214/discodebot/internal/services/channeldraw"
	"github.com/ireh1214/discodebot/internal/services/messaging"
)

// drawAnimationCycles is how many times the frame sequence repeats
const drawAnimationCycles = 3

// ChannelCommand handles the channel draw command and its retry button
type ChannelCommand struct {
	BaseCommand
	drawService      channeldraw.Service
	messagingService messaging.Service
	clock            clock.Clock
	animationDelay   time.Duration
}

// NewChannelCommand creates a new channel draw command handler
func NewChannelCommand(drawService channeldraw.Service, messagingService messaging.Service, clk clock.Clock, animationDelay time.Duration) *ChannelCommand {
	return &ChannelCommand{
		BaseCommand: BaseCommand{
			Name:        "channel",
			Description: "오늘의 사냥 채널을 점지해 드립니다.",
		},
		drawService:      drawService,
		messagingService: messagingService,
		clock:            clk,
		animationDelay:   animationDelay,
	}
}

// Handle processes the channel slash command
func (c *ChannelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()

	userID, _ := interactionUser(i)

	// Post the first frame immediately, then animate by editing
	if err := RespondWithMessage(s, i, drawAnimationFrames[0]); err != nil {
		return fmt.Errorf("failed to post draw message: %w", err)
	}

	c.animate(func(frame string) {
		if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
			Content: &frame,
		}); err != nil {
			log.Printf("Error editing draw animation: %v", err)
		}
	})

	out, err := c.drawService.Draw(ctx, &channeldraw.DrawInput{
		ChannelID: i.ChannelID,
		AuthorID:  userID,
	})
	if err != nil {
		log.Printf("Error drawing channel: %v", err)
		message := "채널 점지에 실패했어요. 다시 시도해 주세요!"
		_, _ = s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Content: &message})
		return err
	}

	content, components, err := c.renderOutcome(ctx, out.Draw)
	if err != nil {
		return err
	}

	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &components,
	}); err != nil {
		return fmt.Errorf("failed to post draw result: %w", err)
	}

	if out.Draw.Flagged() {
		msg, err := s.InteractionResponse(i.Interaction)
		if err != nil {
			return fmt.Errorf("failed to fetch draw message: %w", err)
		}

		if err := c.drawService.AttachMessage(ctx, &channeldraw.AttachMessageInput{
			DrawID:    out.Draw.ID,
			MessageID: msg.ID,
		}); err != nil {
			log.Printf("Error attaching draw message: %v", err)
			// Not critical, continue
		}
	}

	return nil
}

// handleRetryButton handles a press on a flagged draw's retry button.
// release drops the message lock and is called once the draw state is
// settled, before the animation starts.
func (c *ChannelCommand) handleRetryButton(s *discordgo.Session, i *discordgo.InteractionCreate, drawID string, release func()) error {
	ctx := context.Background()

	userID, _ := interactionUser(i)

	out, err := c.drawService.Retry(ctx, &channeldraw.RetryInput{
		DrawID:  drawID,
		ActorID: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, channeldraw.ErrNotAuthorized):
			return RespondWithEphemeralMessage(s, i, "❌ 이 버튼은 명령어 실행자만 사용할 수 있어요!")
		case errors.Is(err, channeldraw.ErrRetryConsumed), errors.Is(err, channeldraw.ErrRetryExpired):
			// A late press gets no reply; the control just goes gray
			return UpdateWithComponents(s, i, nil, spentRetryRows(drawID, c.clock.Now()))
		default:
			log.Printf("Error retrying draw: %v", err)
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("다시 뽑기에 실패했어요: %v", err))
		}
	}

	// Disable the consumed button on the old result message
	if err := UpdateWithComponents(s, i, nil,
		renderRows([]models.Component{out.Previous.RetryComponent(c.clock.Now())})); err != nil {
		return fmt.Errorf("failed to disable retry button: %w", err)
	}

	// The draw state is settled; the animation runs outside the message lock
	release()

	// The fresh outcome gets its own animated message below the old one
	msg, err := s.ChannelMessageSend(i.ChannelID, drawAnimationFrames[0])
	if err != nil {
		return fmt.Errorf("failed to post retry message: %w", err)
	}

	c.animate(func(frame string) {
		if _, err := s.ChannelMessageEdit(i.ChannelID, msg.ID, frame); err != nil {
			log.Printf("Error editing retry animation: %v", err)
		}
	})

	content, components, err := c.renderOutcome(ctx, out.Draw)
	if err != nil {
		return err
	}

	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    i.ChannelID,
		ID:         msg.ID,
		Content:    &content,
		Components: &components,
	}); err != nil {
		return fmt.Errorf("failed to post retry result: %w", err)
	}

	if out.Draw.Flagged() {
		if err := c.drawService.AttachMessage(ctx, &channeldraw.AttachMessageInput{
			DrawID:    out.Draw.ID,
			MessageID: msg.ID,
		}); err != nil {
			log.Printf("Error attaching retry message: %v", err)
			// Not critical, continue
		}
	}

	return nil
}

// spentRetryRows renders the retry button for a draw whose retry is no
// longer available, so the pressed message ends up with a disabled control
func spentRetryRows(drawID string, now time.Time) []discordgo.MessageComponent {
	spent := &models.ChannelDraw{ID: drawID, RetryUsed: true}
	return renderRows([]models.Component{spent.RetryComponent(now)})
}

// animate runs the frame sequence through edit, pausing animationDelay
// between frames. A zero delay shows only the last frame.
func (c *ChannelCommand) animate(edit func(frame string)) {
	if c.animationDelay <= 0 {
		return
	}

	for cycle := 0; cycle < drawAnimationCycles; cycle++ {
		for _, frame := range drawAnimationFrames {
			time.Sleep(c.animationDelay)
			edit(frame)
		}
	}
}

// renderOutcome builds the result text and, for flagged draws, the retry row
func (c *ChannelCommand) renderOutcome(ctx context.Context, d *models.ChannelDraw) (string, []discordgo.MessageComponent, error) {
	var flavor string
	if !d.Flagged() {
		out, err := c.messagingService.GetDrawFlavor(ctx, &messaging.GetDrawFlavorInput{})
		if err != nil {
			return "", nil, fmt.Errorf("failed to pick flavor line: %w", err)
		}
		flavor = out.Message
	}

	content := renderDrawResult(d, flavor)

	var components []discordgo.MessageComponent
	if d.Flagged() {
		components = renderRows([]models.Component{d.RetryComponent(c.clock.Now())})
	}

	return content, components, nil
}
