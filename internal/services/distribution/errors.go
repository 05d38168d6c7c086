package distribution

// DistributionError is a custom error type for distribution service errors
type DistributionError string

// Error implements the error interface
func (e DistributionError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrChecklistNotFound DistributionError = "payout checklist not found"
	ErrNoRecipients      DistributionError = "recipient list cannot be empty"
	ErrNilConfig         DistributionError = "config cannot be nil"
	ErrNilChecklistRepo  DistributionError = "checklist repository cannot be nil"
	ErrNilClock          DistributionError = "clock cannot be nil"
	ErrNilUUID           DistributionError = "UUID generator cannot be nil"
)
