package engine

import "errors"

// All engine failures are local, synchronous and recoverable; none are fatal
// to the process. "No legal moves" is not an error: ValidMoves returns an
// empty list and the caller is expected to pass the turn.
var (
	ErrGameNotFound     = errors.New("game not found")
	ErrWrongState       = errors.New("operation not allowed in current game state")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrColorTaken       = errors.New("color already taken")
	ErrGameFull         = errors.New("game is full")
	ErrNotEnoughPlayers = errors.New("not enough players")
	ErrIllegalMove      = errors.New("requested move is not legal")
	ErrPieceNotFound    = errors.New("piece not found")
	ErrPlayerNotFound   = errors.New("player not found")
)
