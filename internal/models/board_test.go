package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard() *SignupBoard {
	return &SignupBoard{
		ID:        "board-1",
		ChannelID: "channel-1",
		CreatorID: "creator-1",
		Dungeon:   "자쿰",
		Slots:     NewRoleSlots(),
	}
}

func TestSignupBoardToggleJoins(t *testing.T) {
	board := newTestBoard()
	p := Participant{ID: "user-1", DisplayName: "루니클"}

	joined, err := board.Toggle(RoleDealer, p)
	require.NoError(t, err)
	assert.True(t, joined)

	role, ok := board.RoleOf(p.ID)
	require.True(t, ok)
	assert.Equal(t, RoleDealer, role)
}

func TestSignupBoardToggleSameSlotRemoves(t *testing.T) {
	board := newTestBoard()
	p := Participant{ID: "user-1", DisplayName: "루니클"}

	_, err := board.Toggle(RoleSega, p)
	require.NoError(t, err)

	joined, err := board.Toggle(RoleSega, p)
	require.NoError(t, err)
	assert.False(t, joined)

	_, ok := board.RoleOf(p.ID)
	assert.False(t, ok)
}

func TestSignupBoardToggleRejectsSecondRole(t *testing.T) {
	board := newTestBoard()
	p := Participant{ID: "user-1", DisplayName: "루니클"}

	_, err := board.Toggle(RoleDealer, p)
	require.NoError(t, err)

	_, err = board.Toggle(RoleSeba, p)

	var conflict *RoleConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, RoleDealer, conflict.Role)

	// no mutation: still only in the original role
	role, ok := board.RoleOf(p.ID)
	require.True(t, ok)
	assert.Equal(t, RoleDealer, role)
	assert.False(t, board.Slot(RoleSeba).Has(p.ID))
}

func TestSignupBoardPreservesSignupOrder(t *testing.T) {
	board := newTestBoard()

	names := []string{"차숙희", "공홍", "안세린"}
	for i, name := range names {
		_, err := board.Toggle(RoleDealer, Participant{ID: string(rune('a' + i)), DisplayName: name})
		require.NoError(t, err)
	}

	// removing the middle member keeps the order of the rest
	_, err := board.Toggle(RoleDealer, Participant{ID: "b", DisplayName: "공홍"})
	require.NoError(t, err)

	members := board.Slot(RoleDealer).Members
	require.Len(t, members, 2)
	assert.Equal(t, "차숙희", members[0].DisplayName)
	assert.Equal(t, "안세린", members[1].DisplayName)
}

func TestSignupBoardToggleUnknownRole(t *testing.T) {
	board := newTestBoard()

	_, err := board.Toggle(Role("탱커"), Participant{ID: "user-1"})
	assert.Error(t, err)
}

func TestRoleComponents(t *testing.T) {
	board := newTestBoard()

	components := board.RoleComponents()
	require.Len(t, components, len(Roles))

	assert.Equal(t, "party_role:board-1:딜러", components[0].CustomID())
	assert.True(t, components[0].Authorize("anyone"))

	render := components[0].Render()
	assert.Equal(t, "딜러", render.Label)
	assert.Equal(t, StyleDanger, render.Style)

	assert.Equal(t, StylePrimary, components[1].Render().Style)
	assert.Equal(t, StyleSuccess, components[2].Render().Style)
}

func TestFinalizeComponent(t *testing.T) {
	board := newTestBoard()

	done := board.FinalizeComponent()
	assert.Equal(t, "party_done:board-1", done.CustomID())
	assert.True(t, done.Authorize("anyone"))
	assert.Equal(t, "파티 모집 완료", done.Render().Label)
	assert.Equal(t, StyleSecondary, done.Render().Style)
}
