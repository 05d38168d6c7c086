package messaging

import (
	"context"
	"testing"

	"github.com/ireh1214/discodebot/internal/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) Service {
	svc, err := NewService(&Config{
		Picker: draw.New(&draw.Config{Seed: 42}),
	})
	require.NoError(t, err)

	return svc
}

func TestPickTokenReturnsACandidate(t *testing.T) {
	svc := newTestService(t)
	tokens := []string{"차숙희", "공홍", "안세린", "사늑"}

	out, err := svc.PickToken(context.Background(), &PickTokenInput{Tokens: tokens})
	require.NoError(t, err)
	assert.Contains(t, tokens, out.Token)
}

func TestPickTokenRejectsEmptyList(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.PickToken(context.Background(), &PickTokenInput{})
	assert.ErrorIs(t, err, ErrNoTokens)
}

func TestCannedCopyComesFromThePools(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	greeting, err := svc.GetGreeting(ctx, &GetGreetingInput{})
	require.NoError(t, err)
	assert.Contains(t, greetings, greeting.Message)

	intro, err := svc.GetDistributionIntro(ctx, &GetDistributionIntroInput{})
	require.NoError(t, err)
	assert.Contains(t, distributionIntros, intro.Message)

	title, err := svc.GetItemSplitTitle(ctx, &GetItemSplitTitleInput{})
	require.NoError(t, err)
	assert.Contains(t, itemSplitTitles, title.Title)

	flavor, err := svc.GetDrawFlavor(ctx, &GetDrawFlavorInput{})
	require.NoError(t, err)
	assert.Contains(t, drawFlavors, flavor.Message)
}
