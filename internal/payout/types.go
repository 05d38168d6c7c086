package payout

import "time"

const (
	// ForestUnit is the base-currency value of one forest (숲)
	ForestUnit int64 = 10_000

	// BaseUnitCost is the crafting cost per holy water on a normal day
	BaseUnitCost int64 = 800_000

	// DiscountUnitCost is the crafting cost per holy water on the discount day
	DiscountUnitCost int64 = 760_000

	// DiscountWeekday is the crafting discount day
	DiscountWeekday = time.Wednesday

	// DefaultPartySize is the party size assumed when none is given
	DefaultPartySize = 8

	// forestShorthandDigits is the digit-length threshold below which a bare
	// number is read as forest units rather than a literal amount
	forestShorthandDigits = 7
)

// SimpleSplitInput holds the inputs for a flat profit split
type SimpleSplitInput struct {
	// TotalPriceRaw is the sale total as typed ("185숲", "185", "1850000")
	TotalPriceRaw string

	// PartySize is the number of people splitting the profit
	PartySize int

	// CostRaw is the crafting cost as typed; "0" means no cost
	CostRaw string
}

// SimpleSplitOutput holds the results of a flat profit split
type SimpleSplitOutput struct {
	// TotalPrice is the parsed sale total in base currency
	TotalPrice int64

	// TotalCost is the parsed crafting cost in base currency
	TotalCost int64

	// NetProfit is TotalPrice minus TotalCost
	NetProfit int64

	// PerPerson is the floored per-member share
	PerPerson int64
}

// ItemSaleSplitInput holds the inputs for a holy water sale split
type ItemSaleSplitInput struct {
	// Count is the number of holy waters sold
	Count int

	// RawPrice is the per-unit sale price as typed
	RawPrice string

	// PartySize is the number of people splitting the profit
	PartySize int

	// FeeDiscountPercent is the auction-fee discount in percent
	FeeDiscountPercent int

	// Weekday decides whether the crafting discount applies. Callers pass
	// the current weekday; tests pass a fixed one.
	Weekday time.Weekday
}

// ItemSaleSplitOutput holds the results of a holy water sale split
type ItemSaleSplitOutput struct {
	// UnitPrice is the parsed per-unit sale price
	UnitPrice int64

	// TotalSale is UnitPrice times Count
	TotalSale int64

	// Fee is the floored auction fee
	Fee int64

	// UnitCost is the crafting cost per holy water for the given weekday
	UnitCost int64

	// TotalCost is UnitCost times Count
	TotalCost int64

	// NetProfit is TotalSale minus TotalCost minus Fee
	NetProfit int64

	// PerPerson is the floored per-member share
	PerPerson int64

	// DiscountApplied reports whether the Wednesday crafting discount applied
	DiscountApplied bool
}

// Forest converts a base-currency amount to whole forest units, truncating.
func Forest(amount int64) int64 {
	return amount / ForestUnit
}
