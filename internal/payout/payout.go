// Package payout computes profit-sharing amounts for in-game item sales.
// All functions are pure; the caller supplies the current weekday.
package payout

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// baseFeeRate is the auction-house fee before any discount (4%)
var baseFeeRate = decimal.New(4, -2)

// ParseMoney parses a currency amount as typed by a user.
//
// An amount containing the forest marker ("숲") is read as forest units and
// multiplied by 10,000. A bare digit string shorter than 7 characters is
// treated as the same shorthand even without the marker; anything longer is
// a literal base-currency amount. The shorthand rule means a literal 6-digit
// amount like "800000" cannot be typed without padding - this matches how
// the community already uses the bot, so it stays.
func ParseMoney(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, "숲") || strings.Contains(strings.ToLower(raw), "forest") {
		digits := nonDigits.ReplaceAllString(raw, "")
		if digits == "" {
			return 0, ErrInvalidAmount
		}

		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}

		return n * ForestUnit, nil
	}

	if isDigits(raw) && len(raw) < forestShorthandDigits {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, ErrInvalidAmount
		}

		return n * ForestUnit, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return n, nil
}

// SimpleSplit divides a sale total minus crafting cost evenly across the
// party. The remainder under the party size stays undistributed.
func SimpleSplit(input *SimpleSplitInput) (*SimpleSplitOutput, error) {
	if input.PartySize <= 0 {
		return nil, ErrInvalidPartySize
	}

	totalPrice, err := ParseMoney(input.TotalPriceRaw)
	if err != nil {
		return nil, err
	}

	costRaw := input.CostRaw
	if costRaw == "" {
		costRaw = "0"
	}

	totalCost, err := ParseMoney(costRaw)
	if err != nil {
		return nil, err
	}

	netProfit := totalPrice - totalCost
	if netProfit < 0 {
		return nil, ErrInsufficientFunds
	}

	return &SimpleSplitOutput{
		TotalPrice: totalPrice,
		TotalCost:  totalCost,
		NetProfit:  netProfit,
		PerPerson:  netProfit / int64(input.PartySize),
	}, nil
}

// ItemSaleSplit computes the holy water sale breakdown: auction fee, crafting
// cost (with the Wednesday discount), net profit and per-member share.
func ItemSaleSplit(input *ItemSaleSplitInput) (*ItemSaleSplitOutput, error) {
	if input.Count <= 0 {
		return nil, ErrInvalidCount
	}

	if input.PartySize <= 0 {
		return nil, ErrInvalidPartySize
	}

	unitPrice, err := ParseMoney(input.RawPrice)
	if err != nil {
		return nil, err
	}

	totalSale := unitPrice * int64(input.Count)

	// feeRate = 0.04 * (1 - discount/100), kept exact in decimal
	feeRate := baseFeeRate.
		Mul(decimal.NewFromInt(100 - int64(input.FeeDiscountPercent))).
		Div(decimal.NewFromInt(100))

	fee := decimal.NewFromInt(totalSale).Mul(feeRate).Floor().IntPart()

	unitCost := BaseUnitCost
	discountApplied := input.Weekday == DiscountWeekday
	if discountApplied {
		unitCost = DiscountUnitCost
	}

	totalCost := unitCost * int64(input.Count)

	netProfit := totalSale - totalCost - fee
	if netProfit < 0 {
		return nil, ErrInsufficientFunds
	}

	return &ItemSaleSplitOutput{
		UnitPrice:       unitPrice,
		TotalSale:       totalSale,
		Fee:             fee,
		UnitCost:        unitCost,
		TotalCost:       totalCost,
		NetProfit:       netProfit,
		PerPerson:       netProfit / int64(input.PartySize),
		DiscountApplied: discountApplied,
	}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
