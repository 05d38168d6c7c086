package channeldraw

import (
	"time"

	"github.com/ireh1214/discodebot/internal/models"
)

// SaveDrawInput holds the parameters for SaveDraw
type SaveDrawInput struct {
	// Draw is the draw to persist
	Draw *models.ChannelDraw

	// TTL expires the stored draw after the retry window; zero keeps it
	TTL time.Duration
}

// GetDrawInput holds the parameters for GetDraw
type GetDrawInput struct {
	// DrawID is the draw to retrieve
	DrawID string
}
