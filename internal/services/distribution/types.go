package distribution

import (
	"github.com/ireh1214/discodebot/internal/common/clock"
	"github.com/ireh1214/discodebot/internal/common/uuid"
	"github.com/ireh1214/discodebot/internal/models"
	checklistRepo "github.com/ireh1214/discodebot/internal/repositories/checklist"
)

// Config holds the dependencies for the distribution service
type Config struct {
	// ChecklistRepo persists payout checklists
	ChecklistRepo checklistRepo.Repository

	// Clock supplies timestamps
	Clock clock.Clock

	// UUID generates checklist IDs
	UUID uuid.UUID
}

// Recipient is one entry of the recipient list: either a resolved user or
// a free-text name
type Recipient struct {
	// UserID is the resolved user, empty for text-only names
	UserID string

	// Label is the display name for the checkbox
	Label string
}

// CreateChecklistInput holds the parameters for CreateChecklist
type CreateChecklistInput struct {
	// ChannelID is where the command ran
	ChannelID string

	// AuthorID is the user who started the distribution
	AuthorID string

	// Recipients are the payout recipients in the order given
	Recipients []Recipient
}

// CreateChecklistOutput holds the results of CreateChecklist
type CreateChecklistOutput struct {
	// Checklist is the newly created checklist
	Checklist *models.PayoutChecklist
}

// AttachMessageInput holds the parameters for AttachMessage
type AttachMessageInput struct {
	// ChecklistID is the checklist to bind
	ChecklistID string

	// MessageID is the posted checklist message
	MessageID string
}

// ToggleCheckboxInput holds the parameters for ToggleCheckbox
type ToggleCheckboxInput struct {
	// ChecklistID is the checklist being toggled
	ChecklistID string

	// Index is the checkbox position in the list
	Index int

	// ActorID is the pressing user
	ActorID string
}

// ToggleCheckboxOutput holds the results of ToggleCheckbox
type ToggleCheckboxOutput struct {
	// Checklist is the checklist after the toggle
	Checklist *models.PayoutChecklist

	// Checked is the checkbox state after the toggle
	Checked bool

	// Completed is true only when this toggle transitioned the checklist
	// into the all-checked state
	Completed bool
}
