package models

// Participant is a chat-platform user as seen by the bot
type Participant struct {
	// ID is the platform user ID; participants are equal when IDs are equal
	ID string

	// DisplayName is the server nickname, falling back to the username
	DisplayName string
}

// Mention renders the participant as a platform mention token
func (p Participant) Mention() string {
	return "<@" + p.ID + ">"
}
