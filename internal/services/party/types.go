package party

import (
	"time"

	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/common/uuid"
	"github.com/ireh1214/discodebot/internal/models"
	boardRepo "github.com/ireh1214/discodebot/internal/repositories/board"
	"github.com/ireh1214/discodebot/internal/timeparse"
)

// EventDuration is how long a scheduled party event lasts
const EventDuration = 2 * time.Hour

// Config holds the dependencies for the party service
type Config struct {
	// BoardRepo persists signup boards
	BoardRepo boardRepo.Repository

	// Clock supplies timestamps
	Clock clock.Clock

	// UUID generates board IDs
	UUID uuid.UUID

	// TimeParser parses the loosely formatted party time
	TimeParser *timeparse.Parser
}

// CreateBoardInput holds the parameters for CreateBoard
type CreateBoardInput struct {
	// ChannelID is where the create command ran
	ChannelID string

	// CreatorID is the user who ran the command
	CreatorID string

	// Dungeon is the dungeon label
	Dungeon string

	// TimeText is the party time as typed, e.g. "7-15-9시"
	TimeText string

	// Note is the free-text recruitment note
	Note string
}

// CreateBoardOutput holds the results of CreateBoard
type CreateBoardOutput struct {
	// Board is the newly created board
	Board *models.SignupBoard
}

// AttachMessageInput holds the parameters for AttachMessage
type AttachMessageInput struct {
	// BoardID is the board to bind
	BoardID string

	// MessageID is the posted recruitment message
	MessageID string
}

// ToggleRoleInput holds the parameters for ToggleRole
type ToggleRoleInput struct {
	// BoardID is the board being toggled
	BoardID string

	// Role is the role button that was pressed
	Role models.Role

	// Participant is the pressing user
	Participant models.Participant
}

// ToggleRoleOutput holds the results of ToggleRole
type ToggleRoleOutput struct {
	// Board is the board after the toggle
	Board *models.SignupBoard

	// Joined is true when the participant was added, false when removed
	Joined bool
}

// FinalizeBoardInput holds the parameters for FinalizeBoard
type FinalizeBoardInput struct {
	// BoardID is the board to finalize
	BoardID string
}

// FinalizeBoardOutput holds the scheduled event record for a board
type FinalizeBoardOutput struct {
	// Board is the finalized board
	Board *models.SignupBoard

	// Name is the event title
	Name string

	// StartTime is the party start in KST
	StartTime time.Time

	// EndTime is StartTime plus EventDuration
	EndTime time.Time

	// Description is the event body text
	Description string

	// Location is the external event location label
	Location string
}
