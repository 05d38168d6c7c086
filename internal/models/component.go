package models

import "errors"

// ComponentStyle is a platform-neutral button color
type ComponentStyle string

const (
	// StylePrimary is the platform's primary (blue) style
	StylePrimary ComponentStyle = "primary"

	// StyleSecondary is the platform's secondary (grey) style
	StyleSecondary ComponentStyle = "secondary"

	// StyleSuccess is the platform's success (green) style
	StyleSuccess ComponentStyle = "success"

	// StyleDanger is the platform's danger (red) style
	StyleDanger ComponentStyle = "danger"
)

// Custom ID prefixes for interactive components. The wire format is
// "<prefix>:<aggregate id>[:<discriminator>]".
const (
	// ComponentPartyRole identifies a role signup button on a board
	ComponentPartyRole = "party_role"

	// ComponentPartyDone identifies a board's finalize button
	ComponentPartyDone = "party_done"

	// ComponentPayoutCheck identifies one checkbox on a payout checklist
	ComponentPayoutCheck = "payout_check"

	// ComponentChannelRetry identifies a channel draw's retry button
	ComponentChannelRetry = "channel_retry"
)

// CustomIDSeparator joins the parts of a component custom ID
const CustomIDSeparator = ":"

// ErrNotAuthorized is returned when an actor presses a component bound to
// someone else
var ErrNotAuthorized = errors.New("actor is not allowed to use this component")

// ComponentRender is the label/color projection of a component
type ComponentRender struct {
	// Label is the button text
	Label string

	// Style is the button color
	Style ComponentStyle

	// Disabled renders the button greyed out and unpressable
	Disabled bool
}

// Component is a single interactive control attached to a live message.
// Each aggregate exposes its buttons as Components; the handler layer maps
// renders onto platform buttons and routes presses back by custom ID.
type Component interface {
	// CustomID returns the wire identifier presses come back with
	CustomID() string

	// Authorize reports whether the actor may toggle this component
	Authorize(actorID string) bool

	// Render returns the component's current label and style
	Render() ComponentRender
}
