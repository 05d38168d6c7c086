package channeldraw

// DrawError is a custom error type for channel draw service errors
type DrawError string

// Error implements the error interface
func (e DrawError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrDrawNotFound  DrawError = "channel draw not found"
	ErrNotAuthorized DrawError = "only the drawing user may retry"
	ErrRetryExpired  DrawError = "retry window has passed"
	ErrRetryConsumed DrawError = "retry was already used"
	ErrNilConfig     DrawError = "config cannot be nil"
	ErrNilDrawRepo   DrawError = "draw repository cannot be nil"
	ErrNilClock      DrawError = "clock cannot be nil"
	ErrNilUUID       DrawError = "UUID generator cannot be nil"
	ErrNilPicker     DrawError = "picker cannot be nil"
)
