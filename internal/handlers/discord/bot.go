package discord

import (
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/models"
	"github.com/ireh1214/discodebot/internal/services/channeldraw"
	"github.com/ireh1214/discodebot/internal/services/distribution"
	"github.com/ireh1214/discodebot/internal/services/messaging"
	"github.com/ireh1214/discodebot/internal/services/party"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config

	partyCmd      *PartyCommand
	distributeCmd *DistributeCommand
	channelCmd    *ChannelCommand

	// messageLocks serializes component presses per message so concurrent
	// toggles read-modify-write one aggregate at a time. Messages share
	// stripes by hash, which bounds the memory the locks ever take.
	messageLocks [messageLockStripes]sync.Mutex
}

// messageLockStripes is the fixed number of message lock stripes
const messageLockStripes = 64

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Party service
	PartyService party.Service

	// Distribution service
	DistributionService distribution.Service

	// Channel draw service
	DrawService channeldraw.Service

	// Messaging service
	MessagingService messaging.Service

	// Clock supplies timestamps for component rendering
	Clock clock.Clock

	// AnimationDelay is the pause between draw animation frames; zero
	// disables the pauses (used by tests)
	AnimationDelay time.Duration
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.PartyService == nil {
		return nil, errors.New("party service cannot be nil")
	}

	if cfg.DistributionService == nil {
		return nil, errors.New("distribution service cannot be nil")
	}

	if cfg.DrawService == nil {
		return nil, errors.New("draw service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	if cfg.Clock == nil {
		return nil, errors.New("clock cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	bot := &Bot{
		session:    session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
	}

	bot.partyCmd = NewPartyCommand(cfg.PartyService)
	bot.distributeCmd = NewDistributeCommand(cfg.DistributionService, cfg.MessagingService)
	bot.channelCmd = NewChannelCommand(cfg.DrawService, cfg.MessagingService, cfg.Clock, cfg.AnimationDelay)

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		b.partyCmd,
		b.distributeCmd,
		b.channelCmd,
		NewSplitCommand(b.config.MessagingService, b.config.Clock),
		NewGreetCommand(b.config.MessagingService),
		NewPickCommand(b.config.MessagingService),
		NewHelpCommand(),
	}

	for _, h := range handlers {
		if err := b.RegisterCommand(h); err != nil {
			return fmt.Errorf("failed to register %s command: %w", h.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// Register the command with Discord
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := ""
	if b.config.GuildID != "" {
		guildID = b.config.GuildID
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	// A panic in one press must not take the session down
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic handling interaction: %v", r)
			_ = RespondWithEphemeralMessage(s, i, "⚠️ 처리 중 문제가 발생했어요. 잠시 후 다시 시도해 주세요!")
		}
	}()

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		// Handle slash commands
		if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
			if err := h.Handle(s, i); err != nil {
				log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
			}
		}
	case discordgo.InteractionMessageComponent:
		// Handle buttons and other components
		if err := b.handleComponentInteraction(s, i); err != nil {
			log.Printf("Error handling component interaction: %v", err)
		}
	}
}

// lockStripe maps a message ID onto its lock stripe
func lockStripe(messageID string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(messageID))
	return h.Sum32() % messageLockStripes
}

// lockMessage serializes component handling for one message. The returned
// function releases the lock and may be called more than once.
func (b *Bot) lockMessage(messageID string) func() {
	m := &b.messageLocks[lockStripe(messageID)]
	m.Lock()

	var once sync.Once
	return func() {
		once.Do(m.Unlock)
	}
}

// handleComponentInteraction routes button clicks by their custom ID prefix
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	customID := i.MessageComponentData().CustomID
	parts := strings.Split(customID, models.CustomIDSeparator)

	release := func() {}
	if i.Message != nil {
		release = b.lockMessage(i.Message.ID)
	}
	defer release()

	switch parts[0] {
	case models.ComponentPartyRole:
		if len(parts) != 3 {
			return fmt.Errorf("malformed role button ID: %s", customID)
		}
		return b.partyCmd.handleRoleButton(s, i, parts[1], models.Role(parts[2]))
	case models.ComponentPartyDone:
		if len(parts) != 2 {
			return fmt.Errorf("malformed finalize button ID: %s", customID)
		}
		return b.partyCmd.handleFinalizeButton(s, i, parts[1])
	case models.ComponentPayoutCheck:
		if len(parts) != 3 {
			return fmt.Errorf("malformed checkbox ID: %s", customID)
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil {
			return fmt.Errorf("malformed checkbox index in %s: %w", customID, err)
		}
		return b.distributeCmd.handleCheckboxButton(s, i, parts[1], index)
	case models.ComponentChannelRetry:
		if len(parts) != 2 {
			return fmt.Errorf("malformed retry button ID: %s", customID)
		}
		return b.channelCmd.handleRetryButton(s, i, parts[1], release)
	default:
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("알 수 없는 버튼이에요: %s", customID))
	}
}
