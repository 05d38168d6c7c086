package payout

// PayoutError is a custom error type for payout calculation errors
type PayoutError string

// Error implements the error interface
func (e PayoutError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidAmount     PayoutError = "amount must be a number or a forest amount"
	ErrInvalidPartySize  PayoutError = "party size must be at least 1"
	ErrInvalidCount      PayoutError = "item count must be at least 1"
	ErrInsufficientFunds PayoutError = "net profit is negative"
)
