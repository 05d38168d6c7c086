package models

import (
	"errors"
	"strconv"
	"time"
)

// ErrUnknownCheckbox is returned for a checkbox index outside the checklist
var ErrUnknownCheckbox = errors.New("unknown checkbox")

// CheckboxAuthError is returned when an actor may not flip a checkbox
type CheckboxAuthError struct {
	// TextOnly marks a checkbox with no bound user, which only the
	// checklist author may flip
	TextOnly bool
}

// Error implements the error interface
func (e *CheckboxAuthError) Error() string {
	if e.TextOnly {
		return "only the checklist author may toggle a text-only checkbox"
	}

	return "only the bound user or the checklist author may toggle this checkbox"
}

// Unwrap matches errors.Is against ErrNotAuthorized
func (e *CheckboxAuthError) Unwrap() error {
	return ErrNotAuthorized
}

// PayoutCheckbox is one recipient's confirmation toggle on a checklist.
// A checkbox is either bound to a resolved user (UserID set) or carries a
// free-text name only.
type PayoutCheckbox struct {
	// Label is the display name shown on the button
	Label string

	// UserID is the bound user, empty for text-only entries
	UserID string

	// Checked reports whether the payout was confirmed
	Checked bool
}

// CanToggle reports whether the actor may flip this checkbox. The bound
// user and the checklist author may; for text-only entries, only the author.
func (c *PayoutCheckbox) CanToggle(actorID, authorID string) bool {
	if actorID == authorID {
		return true
	}

	return c.UserID != "" && c.UserID == actorID
}

// PayoutChecklist is one distribution post and its confirmation checkboxes
type PayoutChecklist struct {
	// ID is the unique identifier for the checklist
	ID string

	// ChannelID is the channel the checklist message was posted in
	ChannelID string

	// MessageID is the live checklist message; set once posted
	MessageID string

	// AuthorID is the user who started the distribution
	AuthorID string

	// Boxes are the checkboxes in the order the recipients were listed
	Boxes []*PayoutCheckbox

	// Announced reports whether the completion notice went out for the
	// current all-checked run; unchecking any box re-arms it
	Announced bool

	// CreatedAt is when the checklist was created
	CreatedAt time.Time

	// UpdatedAt is when the checklist state last changed
	UpdatedAt time.Time
}

// AllChecked reports whether every checkbox is checked
func (l *PayoutChecklist) AllChecked() bool {
	for _, box := range l.Boxes {
		if !box.Checked {
			return false
		}
	}

	return len(l.Boxes) > 0
}

// Toggle flips the checkbox at index on behalf of the actor.
//
// completed is true only on the transition into the all-checked state, at
// most once per entry into that state. Unchecking a box re-arms the notice.
func (l *PayoutChecklist) Toggle(index int, actorID string) (checked, completed bool, err error) {
	if index < 0 || index >= len(l.Boxes) {
		return false, false, ErrUnknownCheckbox
	}

	box := l.Boxes[index]
	if !box.CanToggle(actorID, l.AuthorID) {
		return box.Checked, false, &CheckboxAuthError{TextOnly: box.UserID == ""}
	}

	box.Checked = !box.Checked

	if !box.Checked {
		l.Announced = false
		return false, false, nil
	}

	if l.AllChecked() && !l.Announced {
		l.Announced = true
		return true, true, nil
	}

	return true, false, nil
}

// checkboxComponent is the button for one payout checkbox
type checkboxComponent struct {
	list  *PayoutChecklist
	index int
}

// CustomID returns the wire identifier for this checkbox button
func (c *checkboxComponent) CustomID() string {
	return ComponentPayoutCheck + CustomIDSeparator + c.list.ID + CustomIDSeparator + strconv.Itoa(c.index)
}

// Authorize applies the bound-user-or-author rule
func (c *checkboxComponent) Authorize(actorID string) bool {
	return c.list.Boxes[c.index].CanToggle(actorID, c.list.AuthorID)
}

// Render marks checked boxes with a trailing check and success color
func (c *checkboxComponent) Render() ComponentRender {
	box := c.list.Boxes[c.index]
	if box.Checked {
		return ComponentRender{
			Label: box.Label + " ✅",
			Style: StyleSuccess,
		}
	}

	return ComponentRender{
		Label: box.Label,
		Style: StyleSecondary,
	}
}

// Components returns one checkbox button per recipient, in list order
func (l *PayoutChecklist) Components() []Component {
	components := make([]Component, 0, len(l.Boxes))
	for i := range l.Boxes {
		components = append(components, &checkboxComponent{list: l, index: i})
	}

	return components
}
