package timeparse

import (
	"errors"
	"regexp"
	"strconv"
	"time"

	"github.com/ireh1214/discodebot/internal/common/clock"
)

// KST is the fixed zone all party times are interpreted in
var KST = time.FixedZone("KST", 9*60*60)

// Layout is the normalized display format for parsed times
const Layout = "2006-01-02 15:04"

var (
	// ErrNoTimestamp is returned when the input has fewer than two numeric tokens
	ErrNoTimestamp = errors.New("no timestamp found in input")

	// ErrInvalidDate is returned when the numeric tokens do not form a valid date
	ErrInvalidDate = errors.New("invalid date")
)

var digitRuns = regexp.MustCompile(`\d+`)

// Parser turns loosely formatted text like "7-15-9시" or "7.15 09:00"
// into a KST timestamp in the current year.
type Parser struct {
	clock clock.Clock
}

// Config holds configuration for the parser
type Config struct {
	// Clock supplies the current year; defaults to the system clock
	Clock clock.Clock
}

// New creates a new time parser
func New(cfg *Config) *Parser {
	c := clock.Clock(&clock.DefaultClock{})
	if cfg != nil && cfg.Clock != nil {
		c = cfg.Clock
	}

	return &Parser{clock: c}
}

// Parse extracts month, day and an optional hour from the input and returns
// the corresponding KST time. The minute is always zero.
func (p *Parser) Parse(input string) (time.Time, error) {
	parts := digitRuns.FindAllString(input, -1)
	if len(parts) < 2 {
		return time.Time{}, ErrNoTimestamp
	}

	month, _ := strconv.Atoi(parts[0])
	day, _ := strconv.Atoi(parts[1])

	hour := 0
	if len(parts) >= 3 {
		hour, _ = strconv.Atoi(parts[2])
	}

	year := p.clock.Now().In(KST).Year()

	if month < 1 || month > 12 || day < 1 || hour < 0 || hour > 23 {
		return time.Time{}, ErrInvalidDate
	}

	t := time.Date(year, time.Month(month), day, hour, 0, 0, 0, KST)

	// time.Date normalizes overflow (e.g. June 31 -> July 1), so a changed
	// month or day means the input was not a real calendar date.
	if int(t.Month()) != month || t.Day() != day {
		return time.Time{}, ErrInvalidDate
	}

	return t, nil
}

// ParseFormatted parses the input and returns it rendered with Layout.
func (p *Parser) ParseFormatted(input string) (string, error) {
	t, err := p.Parse(input)
	if err != nil {
		return "", err
	}

	return t.Format(Layout), nil
}
