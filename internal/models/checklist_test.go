package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecklist() *PayoutChecklist {
	return &PayoutChecklist{
		ID:       "list-1",
		AuthorID: "author-1",
		Boxes: []*PayoutCheckbox{
			{Label: "루니클", UserID: "user-1"},
			{Label: "차숙희", UserID: "user-2"},
			{Label: "용병"}, // text-only entry
		},
	}
}

func TestChecklistToggleByBoundUser(t *testing.T) {
	list := newTestChecklist()

	checked, completed, err := list.Toggle(0, "user-1")
	require.NoError(t, err)
	assert.True(t, checked)
	assert.False(t, completed)
	assert.True(t, list.Boxes[0].Checked)
}

func TestChecklistToggleByAuthor(t *testing.T) {
	list := newTestChecklist()

	// the author may toggle any box, including text-only ones
	for i := range list.Boxes {
		_, _, err := list.Toggle(i, "author-1")
		require.NoError(t, err)
	}

	assert.True(t, list.AllChecked())
}

func TestChecklistToggleRejectsOtherActor(t *testing.T) {
	list := newTestChecklist()

	_, _, err := list.Toggle(0, "user-2")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.False(t, list.Boxes[0].Checked)

	var authErr *CheckboxAuthError
	require.ErrorAs(t, err, &authErr)
	assert.False(t, authErr.TextOnly)

	// text-only box rejects even a listed recipient
	_, _, err = list.Toggle(2, "user-1")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.False(t, list.Boxes[2].Checked)

	require.ErrorAs(t, err, &authErr)
	assert.True(t, authErr.TextOnly)
}

func TestChecklistCompletionFiresOnce(t *testing.T) {
	list := newTestChecklist()

	_, completed, err := list.Toggle(0, "user-1")
	require.NoError(t, err)
	assert.False(t, completed)

	_, completed, err = list.Toggle(1, "user-2")
	require.NoError(t, err)
	assert.False(t, completed)

	// the last box transitions the list into all-checked
	_, completed, err = list.Toggle(2, "author-1")
	require.NoError(t, err)
	assert.True(t, completed)

	// a later toggle pair must not re-fire while the notice stays armed
	_, completed, err = list.Toggle(0, "user-1")
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestChecklistCompletionReArmsAfterUncheck(t *testing.T) {
	list := newTestChecklist()

	for i := range list.Boxes {
		list.Toggle(i, "author-1")
	}

	// leave and re-enter the all-checked state
	_, completed, err := list.Toggle(1, "author-1")
	require.NoError(t, err)
	assert.False(t, completed)

	_, completed, err = list.Toggle(1, "author-1")
	require.NoError(t, err)
	assert.True(t, completed)
}

func TestChecklistToggleUnknownIndex(t *testing.T) {
	list := newTestChecklist()

	_, _, err := list.Toggle(3, "author-1")
	assert.ErrorIs(t, err, ErrUnknownCheckbox)

	_, _, err = list.Toggle(-1, "author-1")
	assert.ErrorIs(t, err, ErrUnknownCheckbox)
}

func TestEmptyChecklistIsNeverComplete(t *testing.T) {
	list := &PayoutChecklist{ID: "list-2", AuthorID: "author-1"}
	assert.False(t, list.AllChecked())
}

func TestChecklistComponents(t *testing.T) {
	list := newTestChecklist()
	list.Boxes[0].Checked = true

	components := list.Components()
	require.Len(t, components, 3)

	assert.Equal(t, "payout_check:list-1:0", components[0].CustomID())
	assert.Equal(t, "payout_check:list-1:2", components[2].CustomID())

	checkedRender := components[0].Render()
	assert.Equal(t, "루니클 ✅", checkedRender.Label)
	assert.Equal(t, StyleSuccess, checkedRender.Style)

	uncheckedRender := components[1].Render()
	assert.Equal(t, "차숙희", uncheckedRender.Label)
	assert.Equal(t, StyleSecondary, uncheckedRender.Style)

	assert.True(t, components[0].Authorize("user-1"))
	assert.True(t, components[0].Authorize("author-1"))
	assert.False(t, components[0].Authorize("user-2"))
	assert.False(t, components[2].Authorize("user-1"))
}
