package party

// PartyError is a custom error type for party service errors
type PartyError string

// Error implements the error interface
func (e PartyError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrBoardNotFound  PartyError = "signup board not found"
	ErrNilConfig      PartyError = "config cannot be nil"
	ErrNilBoardRepo   PartyError = "board repository cannot be nil"
	ErrNilClock       PartyError = "clock cannot be nil"
	ErrNilUUID        PartyError = "UUID generator cannot be nil"
	ErrNilTimeParser  PartyError = "time parser cannot be nil"
	ErrMissingDungeon PartyError = "dungeon name cannot be empty"
)
