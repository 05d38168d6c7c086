package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/common/uuid"
	"github.com/ireh1214/discodebot/internal/draw"
	"github.com/ireh1214/discodebot/internal/handlers/discord"
	boardRepo "github.com/ireh1214/discodebot/internal/repositories/board"
	drawRepo "github.com/ireh1214/discodebot/internal/repositories/channeldraw"
	checklistRepo "github.com/ireh1214/discodebot/internal/repositories/checklist"
	channeldrawService "github.com/ireh1214/discodebot/internal/services/channeldraw"
	distributionService "github.com/ireh1214/discodebot/internal/services/distribution"
	messagingService "github.com/ireh1214/discodebot/internal/services/messaging"
	partyService "github.com/ireh1214/discodebot/internal/services/party"
	"github.com/ireh1214/discodebot/internal/timeparse"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// animationDelay is the pause between channel draw animation frames
const animationDelay = 400 * time.Millisecond

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	boards, err := boardRepo.NewRedis(&boardRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create board repository: %v", err)
	}

	checklists, err := checklistRepo.NewRedis(&checklistRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create checklist repository: %v", err)
	}

	draws, err := drawRepo.NewRedis(&drawRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create draw repository: %v", err)
	}

	// Shared utilities
	systemClock := &clock.DefaultClock{}
	uuider := uuid.New()
	picker := draw.New(&draw.Config{})
	timeParser := timeparse.New(&timeparse.Config{Clock: systemClock})

	// Initialize services
	partySvc, err := partyService.NewService(&partyService.Config{
		BoardRepo:  boards,
		Clock:      systemClock,
		UUID:       uuider,
		TimeParser: timeParser,
	})
	if err != nil {
		log.Fatalf("Failed to create party service: %v", err)
	}

	distributionSvc, err := distributionService.NewService(&distributionService.Config{
		ChecklistRepo: checklists,
		Clock:         systemClock,
		UUID:          uuider,
	})
	if err != nil {
		log.Fatalf("Failed to create distribution service: %v", err)
	}

	drawSvc, err := channeldrawService.NewService(&channeldrawService.Config{
		DrawRepo: draws,
		Clock:    systemClock,
		UUID:     uuider,
		Picker:   picker,
	})
	if err != nil {
		log.Fatalf("Failed to create channel draw service: %v", err)
	}

	messagingSvc, err := messagingService.NewService(&messagingService.Config{
		Picker: picker,
	})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:               discordToken,
		ApplicationID:       applicationID,
		GuildID:             guildID,
		PartyService:        partySvc,
		DistributionService: distributionSvc,
		DrawService:         drawSvc,
		MessagingService:    messagingSvc,
		Clock:               systemClock,
		AnimationDelay:      animationDelay,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
