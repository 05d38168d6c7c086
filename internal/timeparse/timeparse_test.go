package timeparse

import (
	"fmt"
	"testing"
	"time"

	"github.com/ireh1214/discodebot/internal/common/clock/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TimeParseTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	parser    *Parser
	testNow   time.Time
}

func (s *TimeParseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)

	s.testNow = time.Date(2025, 7, 1, 12, 0, 0, 0, KST)
	s.mockClock.EXPECT().Now().Return(s.testNow).AnyTimes()

	s.parser = New(&Config{Clock: s.mockClock})
}

func TestTimeParseTestSuite(t *testing.T) {
	suite.Run(t, new(TimeParseTestSuite))
}

func (s *TimeParseTestSuite) TestParseMonthDayHour() {
	tests := []struct {
		input string
		want  string
	}{
		{"7-15-9시", "2025-07-15 09:00"},
		{"7.15 09:00", "2025-07-15 09:00"},
		{"12/25 21시", "2025-12-25 21:00"},
		{"3월 1일", "2025-03-01 00:00"},
		{"1 2 3", "2025-01-02 03:00"},
	}

	for _, tt := range tests {
		got, err := s.parser.ParseFormatted(tt.input)
		s.NoError(err, "input %q", tt.input)
		s.Equal(tt.want, got, "input %q", tt.input)
	}
}

func (s *TimeParseTestSuite) TestParseRoundTripsValidDates() {
	for _, month := range []int{1, 2, 6, 12} {
		for _, day := range []int{1, 15, 28} {
			for _, hour := range []int{0, 9, 23} {
				input := fmt.Sprintf("%d-%d-%d시", month, day, hour)
				want := fmt.Sprintf("2025-%02d-%02d %02d:00", month, day, hour)

				got, err := s.parser.ParseFormatted(input)
				s.NoError(err, "input %q", input)
				s.Equal(want, got, "input %q", input)
			}
		}
	}
}

func (s *TimeParseTestSuite) TestParseDefaultsHourToMidnight() {
	t, err := s.parser.Parse("7-15")
	s.NoError(err)
	s.Equal(time.Date(2025, 7, 15, 0, 0, 0, 0, KST), t)
}

func (s *TimeParseTestSuite) TestParseUsesKST() {
	t, err := s.parser.Parse("7-15-9")
	s.NoError(err)

	_, offset := t.Zone()
	s.Equal(9*60*60, offset)
}

func (s *TimeParseTestSuite) TestParseRejectsTooFewTokens() {
	for _, input := range []string{"soon", "", "곧", "7"} {
		_, err := s.parser.Parse(input)
		s.ErrorIs(err, ErrNoTimestamp, "input %q", input)
	}
}

func (s *TimeParseTestSuite) TestParseRejectsInvalidDates() {
	tests := []string{
		"13-1-0시", // month 13
		"2-30",    // February 30th
		"6-31",    // June 31st
		"1-32",    // day 32
		"7-15-24", // hour 24
		"0-15",    // month 0
		"7-0",     // day 0
	}

	for _, input := range tests {
		_, err := s.parser.Parse(input)
		s.ErrorIs(err, ErrInvalidDate, "input %q", input)
	}
}
