package game

import "time"

// MoveType classifies what a move does on the board.
type MoveType string

const (
	MoveExitJail  MoveType = "exit_jail"  // Piece leaves jail for its start cell
	MoveNormal    MoveType = "normal"     // Plain advance on the track
	MoveCapture   MoveType = "capture"    // Advance that evicts an opposing piece
	MoveEnterGoal MoveType = "enter_goal" // Advance into or inside the goal lane
)

// Move is one legal option for a piece given a die value. Moves are produced
// by GameState.LegalMoves and consumed by GameState.ApplyMove; the live
// engine and the search strategies share this one code path.
type Move struct {
	PlayerID string
	PieceID  string
	Type     MoveType
	From     int
	To       int
	Dice     int
}

// MoveRecord is the committed form of a move, appended to the game history.
type MoveRecord struct {
	Move
	CapturedPieceID string
	PlayedAt        time.Time
}
