package channeldraw

import (
	"time"

	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/common/uuid"
	"github.com/ireh1214/discodebot/internal/draw"
	"github.com/ireh1214/discodebot/internal/models"
	drawRepo "github.com/ireh1214/discodebot/internal/repositories/channeldraw"
)

// DefaultRetryWindow is how long a flagged draw's retry stays pressable
const DefaultRetryWindow = 30 * time.Second

// Config holds the dependencies for the channel draw service
type Config struct {
	// DrawRepo persists flagged draws while their retry is live
	DrawRepo drawRepo.Repository

	// Clock supplies timestamps and expiry checks
	Clock clock.Clock

	// UUID generates draw IDs
	UUID uuid.UUID

	// Picker supplies the randomness
	Picker draw.Picker

	// RetryWindow overrides DefaultRetryWindow when positive
	RetryWindow time.Duration
}

// DrawInput holds the parameters for Draw
type DrawInput struct {
	// ChannelID is the chat channel the draw runs in
	ChannelID string

	// AuthorID is the user running the draw
	AuthorID string
}

// DrawOutput holds the results of Draw
type DrawOutput struct {
	// Draw is the outcome; flagged draws carry a live retry control
	Draw *models.ChannelDraw
}

// AttachMessageInput holds the parameters for AttachMessage
type AttachMessageInput struct {
	// DrawID is the draw to bind
	DrawID string

	// MessageID is the posted result message
	MessageID string
}

// RetryInput holds the parameters for Retry
type RetryInput struct {
	// DrawID is the draw whose retry was pressed
	DrawID string

	// ActorID is the pressing user
	ActorID string
}

// RetryOutput holds the results of Retry
type RetryOutput struct {
	// Previous is the consumed draw
	Previous *models.ChannelDraw

	// Draw is the fresh outcome
	Draw *models.ChannelDraw
}
