package checklist

import "github.com/ireh1214/discodebot/internal/models"

// SaveChecklistInput holds the parameters for SaveChecklist
type SaveChecklistInput struct {
	// Checklist is the checklist to persist
	Checklist *models.PayoutChecklist
}

// GetChecklistInput holds the parameters for GetChecklist
type GetChecklistInput struct {
	// ChecklistID is the checklist to retrieve
	ChecklistID string
}
