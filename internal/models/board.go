package models

import (
	"fmt"
	"time"
)

// Role is a party role bucket on a signup board
type Role string

const (
	// RoleDealer is the damage dealer role (딜러)
	RoleDealer Role = "딜러"

	// RoleSega is the holy arrow support role (세가)
	RoleSega Role = "세가"

	// RoleSeba is the shadow partner support role (세바)
	RoleSeba Role = "세바"
)

// Roles is the fixed role set, in display order
var Roles = []Role{RoleDealer, RoleSega, RoleSeba}

// Style returns the button color associated with the role
func (r Role) Style() ComponentStyle {
	switch r {
	case RoleDealer:
		return StyleDanger
	case RoleSega:
		return StylePrimary
	case RoleSeba:
		return StyleSuccess
	default:
		return StyleSecondary
	}
}

// RoleConflictError is returned when a participant tries to join a second
// role while still signed up for another one
type RoleConflictError struct {
	// Role is the role the participant already occupies
	Role Role
}

// Error implements the error interface
func (e *RoleConflictError) Error() string {
	return fmt.Sprintf("participant already signed up as %s", e.Role)
}

// RoleSlot holds the participants signed up for one role
type RoleSlot struct {
	// Role is the role this slot collects signups for
	Role Role

	// Members are the signed-up participants in signup order
	Members []Participant
}

// Has reports whether the participant is signed up in this slot
func (s *RoleSlot) Has(participantID string) bool {
	for _, m := range s.Members {
		if m.ID == participantID {
			return true
		}
	}

	return false
}

// remove drops the participant, preserving the order of the rest
func (s *RoleSlot) remove(participantID string) {
	kept := s.Members[:0]
	for _, m := range s.Members {
		if m.ID != participantID {
			kept = append(kept, m)
		}
	}

	s.Members = kept
}

// SignupBoard is one party recruitment post and its role signups
type SignupBoard struct {
	// ID is the unique identifier for the board
	ID string

	// ChannelID is the channel the recruitment message was posted in
	ChannelID string

	// MessageID is the live recruitment message; set once posted
	MessageID string

	// CreatorID is the user who ran the create command
	CreatorID string

	// Dungeon is the dungeon label
	Dungeon string

	// StartTime is the parsed party start time (KST)
	StartTime time.Time

	// TimeText is the normalized display form of StartTime
	TimeText string

	// Note is the free-text recruitment note
	Note string

	// Slots holds one RoleSlot per entry in Roles, in display order
	Slots []*RoleSlot

	// CreatedAt is when the board was created
	CreatedAt time.Time

	// UpdatedAt is when the board state last changed
	UpdatedAt time.Time
}

// NewRoleSlots returns empty slots for the fixed role set
func NewRoleSlots() []*RoleSlot {
	slots := make([]*RoleSlot, 0, len(Roles))
	for _, role := range Roles {
		slots = append(slots, &RoleSlot{Role: role})
	}

	return slots
}

// Slot returns the slot for the given role, or nil if the role is unknown
func (b *SignupBoard) Slot(role Role) *RoleSlot {
	for _, s := range b.Slots {
		if s.Role == role {
			return s
		}
	}

	return nil
}

// RoleOf returns the role the participant currently occupies, if any
func (b *SignupBoard) RoleOf(participantID string) (Role, bool) {
	for _, s := range b.Slots {
		if s.Has(participantID) {
			return s.Role, true
		}
	}

	return "", false
}

// Toggle flips the participant's membership in the given role slot.
//
// A participant already signed up under a different role is rejected with a
// RoleConflictError naming that role, and nothing changes. Toggling the role
// the participant already occupies removes them. Otherwise they are appended
// to the slot, preserving signup order.
func (b *SignupBoard) Toggle(role Role, p Participant) (joined bool, err error) {
	slot := b.Slot(role)
	if slot == nil {
		return false, fmt.Errorf("unknown role: %s", role)
	}

	if current, ok := b.RoleOf(p.ID); ok && current != role {
		return false, &RoleConflictError{Role: current}
	}

	if slot.Has(p.ID) {
		slot.remove(p.ID)
		return false, nil
	}

	slot.Members = append(slot.Members, p)
	return true, nil
}

// roleSlotComponent is the signup button for one role slot
type roleSlotComponent struct {
	board *SignupBoard
	slot  *RoleSlot
}

// CustomID returns the wire identifier for this role button
func (c *roleSlotComponent) CustomID() string {
	return ComponentPartyRole + CustomIDSeparator + c.board.ID + CustomIDSeparator + string(c.slot.Role)
}

// Authorize always allows: anyone may toggle their own membership
func (c *roleSlotComponent) Authorize(actorID string) bool {
	return true
}

// Render returns the role name in the role's color
func (c *roleSlotComponent) Render() ComponentRender {
	return ComponentRender{
		Label: string(c.slot.Role),
		Style: c.slot.Role.Style(),
	}
}

// finalizeComponent is the board's "recruitment done" button
type finalizeComponent struct {
	board *SignupBoard
}

// CustomID returns the wire identifier for the finalize button
func (c *finalizeComponent) CustomID() string {
	return ComponentPartyDone + CustomIDSeparator + c.board.ID
}

// Authorize always allows; finalizing does not lock the signups
func (c *finalizeComponent) Authorize(actorID string) bool {
	return true
}

// Render returns the finalize label
func (c *finalizeComponent) Render() ComponentRender {
	return ComponentRender{
		Label: "파티 모집 완료",
		Style: StyleSecondary,
	}
}

// RoleComponents returns one signup button per role slot, in display order
func (b *SignupBoard) RoleComponents() []Component {
	components := make([]Component, 0, len(b.Slots))
	for _, s := range b.Slots {
		components = append(components, &roleSlotComponent{board: b, slot: s})
	}

	return components
}

// FinalizeComponent returns the board's finalize button
func (b *SignupBoard) FinalizeComponent() Component {
	return &finalizeComponent{board: b}
}
