package draw

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/ireh1214/discodebot/internal/draw Picker

// Picker provides uniform random selection
type Picker interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Pick returns one of the given choices uniformly at random
	Pick(choices []string) string
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// randomPicker implements Picker using math/rand
type randomPicker struct {
	random *rand.Rand
}

// New creates a new random picker
func New(cfg *Config) *randomPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &randomPicker{
		random: rand.New(source),
	}
}

// Intn returns a random int in [0, n)
func (p *randomPicker) Intn(n int) int {
	if n < 1 {
		return 0
	}
	return p.random.Intn(n)
}

// Pick returns one of the given choices uniformly at random
func (p *randomPicker) Pick(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return choices[p.random.Intn(len(choices))]
}
