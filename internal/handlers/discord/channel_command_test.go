package discord

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpentRetryRowsDisablesControl(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	rows := spentRetryRows("draw-1", now)
	require.Len(t, rows, 1)

	row, ok := rows[0].(discordgo.ActionsRow)
	require.True(t, ok)
	require.Len(t, row.Components, 1)

	button, ok := row.Components[0].(discordgo.Button)
	require.True(t, ok)
	assert.Equal(t, "🔄 다시 뽑기", button.Label)
	assert.Equal(t, "channel_retry:draw-1", button.CustomID)
	assert.Equal(t, discordgo.PrimaryButton, button.Style)
	assert.True(t, button.Disabled)
}

func TestAnimateRunsEveryFrame(t *testing.T) {
	cmd := &ChannelCommand{animationDelay: time.Nanosecond}

	var frames []string
	cmd.animate(func(frame string) {
		frames = append(frames, frame)
	})

	require.Len(t, frames, drawAnimationCycles*len(drawAnimationFrames))
	assert.Equal(t, drawAnimationFrames[0], frames[0])
	assert.Equal(t, drawAnimationFrames[len(drawAnimationFrames)-1], frames[len(frames)-1])
}

func TestAnimateSkipsOnZeroDelay(t *testing.T) {
	cmd := &ChannelCommand{}

	edits := 0
	cmd.animate(func(string) {
		edits++
	})

	assert.Zero(t, edits)
}
