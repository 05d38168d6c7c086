package board

import "github.com/ireh1214/discodebot/internal/models"

// SaveBoardInput holds the parameters for SaveBoard
type SaveBoardInput struct {
	// Board is the board to persist
	Board *models.SignupBoard
}

// GetBoardInput holds the parameters for GetBoard
type GetBoardInput struct {
	// BoardID is the board to retrieve
	BoardID string
}
