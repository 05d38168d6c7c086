package models

import "time"

const (
	// ChannelMin is the lowest drawable channel number
	ChannelMin = 1

	// ChannelMax is the highest drawable channel number
	ChannelMax = 42

	// ProductionChannel is the crafting channel, flagged for a redraw
	ProductionChannel = 2
)

// ExcludedChannels are never drawn
var ExcludedChannels = []int{11, 19}

// FieldRaidChannels host field raids and are flagged for a redraw
var FieldRaidChannels = []int{12, 13, 14, 15}

// ChannelCategory classifies a drawn channel number
type ChannelCategory string

const (
	// ChannelNormal is an unremarkable channel; no retry offered
	ChannelNormal ChannelCategory = "normal"

	// ChannelProduction is the crafting channel; retry offered
	ChannelProduction ChannelCategory = "production"

	// ChannelFieldRaid is a field raid channel; retry offered
	ChannelFieldRaid ChannelCategory = "field_raid"
)

// AvailableChannels returns the drawable channel numbers in ascending order
func AvailableChannels() []int {
	channels := make([]int, 0, ChannelMax)
	for n := ChannelMin; n <= ChannelMax; n++ {
		excluded := false
		for _, e := range ExcludedChannels {
			if n == e {
				excluded = true
				break
			}
		}

		if !excluded {
			channels = append(channels, n)
		}
	}

	return channels
}

// ClassifyChannel returns the category for a drawn channel number
func ClassifyChannel(number int) ChannelCategory {
	if number == ProductionChannel {
		return ChannelProduction
	}

	for _, c := range FieldRaidChannels {
		if number == c {
			return ChannelFieldRaid
		}
	}

	return ChannelNormal
}

// ChannelDraw is the outcome of one channel draw, including the state of
// its one-shot retry control when the outcome was flagged
type ChannelDraw struct {
	// ID is the unique identifier for the draw
	ID string

	// ChannelID is the chat channel the draw was posted in
	ChannelID string

	// MessageID is the live draw result message; set once posted
	MessageID string

	// AuthorID is the user who ran the draw; only they may retry
	AuthorID string

	// Number is the drawn game channel number
	Number int

	// Category is the classification of Number
	Category ChannelCategory

	// RetryUsed reports whether the one-shot retry was consumed
	RetryUsed bool

	// ExpiresAt is when the retry control stops responding
	ExpiresAt time.Time

	// CreatedAt is when the draw happened
	CreatedAt time.Time
}

// Flagged reports whether the outcome warrants a retry control
func (d *ChannelDraw) Flagged() bool {
	return d.Category != ChannelNormal
}

// Expired reports whether the retry window has passed
func (d *ChannelDraw) Expired(now time.Time) bool {
	return now.After(d.ExpiresAt)
}

// retryComponent is the draw's one-shot redraw button
type retryComponent struct {
	draw *ChannelDraw
	now  time.Time
}

// CustomID returns the wire identifier for the retry button
func (c *retryComponent) CustomID() string {
	return ComponentChannelRetry + CustomIDSeparator + c.draw.ID
}

// Authorize allows only the draw's author
func (c *retryComponent) Authorize(actorID string) bool {
	return actorID == c.draw.AuthorID
}

// Render disables the button once the retry is used or expired
func (c *retryComponent) Render() ComponentRender {
	return ComponentRender{
		Label:    "🔄 다시 뽑기",
		Style:    StylePrimary,
		Disabled: c.draw.RetryUsed || c.draw.Expired(c.now),
	}
}

// RetryComponent returns the retry button as of now
func (d *ChannelDraw) RetryComponent(now time.Time) Component {
	return &retryComponent{draw: d, now: now}
}
