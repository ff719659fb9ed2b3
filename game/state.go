package game

import (
	"fmt"
	"time"
)

// PieceStatus is derived from a piece's position and never stored.
type PieceStatus string

const (
	StatusHome     PieceStatus = "home"      // In jail
	StatusBoard    PieceStatus = "board"     // On a regular track cell
	StatusSafeZone PieceStatus = "safe_zone" // On a safe track cell or inside the lane
	StatusGoal     PieceStatus = "goal"      // Crowned
)

// Status is the game lifecycle phase.
type Status string

const (
	Waiting   Status = "waiting"
	Active    Status = "active"
	Finished  Status = "finished"
	Cancelled Status = "cancelled"
)

// Scoring awards, applied by ApplyMove.
const (
	PointsForCapture = 10
	PointsForGoal    = 50
	PointsForWin     = 100
)

// Piece is a single token. Only the position is stored; status is derived.
type Piece struct {
	ID       string
	Color    Color
	Position int
}

// Status derives the piece's status from its position.
func (p Piece) Status() PieceStatus {
	switch {
	case p.Position == Jailed:
		return StatusHome
	case p.Position == Crowned:
		return StatusGoal
	case IsLane(p.Position):
		return StatusSafeZone
	case IsSafeCell(p.Position):
		return StatusSafeZone
	default:
		return StatusBoard
	}
}

// Player holds one seat at the table. Pieces are a fixed-size array so that
// copying a Player copies its pieces with it.
type Player struct {
	ID          string
	Name        string
	Color       Color
	Pieces      [PiecesPerPlayer]Piece
	Score       int
	IsAI        bool
	Level       string // Difficulty tag for AI seats, empty for humans
	JailStrikes int    // Consecutive fully-jailed passes, resets at 3
}

// NewPlayer creates a seated player with all four pieces jailed.
func NewPlayer(id, name string, color Color) Player {
	p := Player{ID: id, Name: name, Color: color}
	for i := range p.Pieces {
		p.Pieces[i] = Piece{
			ID:       fmt.Sprintf("%s_%d", color, i),
			Color:    color,
			Position: Jailed,
		}
	}
	return p
}

// JailedCount returns how many of the player's pieces are in jail.
func (p *Player) JailedCount() int {
	n := 0
	for i := range p.Pieces {
		if p.Pieces[i].Position == Jailed {
			n++
		}
	}
	return n
}

// CrownedCount returns how many of the player's pieces are crowned.
func (p *Player) CrownedCount() int {
	n := 0
	for i := range p.Pieces {
		if p.Pieces[i].Position == Crowned {
			n++
		}
	}
	return n
}

// HasWon reports whether all four pieces are crowned.
func (p *Player) HasWon() bool {
	return p.CrownedCount() == PiecesPerPlayer
}

// GameState is the complete dynamic state of one game. Players are kept in
// turn order; Current indexes into Players while the game is active. The
// state is designed to be cheaply cloneable for tree search: player values
// carry their pieces inline and only the occupancy map and history need
// copying.
type GameState struct {
	ID      string
	Status  Status
	Players []Player
	Current int

	// Board maps a track cell (0-67) to the ids of the pieces on it. Only
	// track cells appear; jail and lane positions are not bucketed.
	Board map[int][]string

	Die1   int
	Die2   int
	IsPair bool

	History  []MoveRecord
	WinnerID string

	// Turns counts turn advances since the game started; reaching the
	// configured ceiling force-finishes the game with no winner.
	Turns int

	CreatedAt  time.Time
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewGameState creates an empty game in the waiting phase.
func NewGameState(id string, now time.Time) *GameState {
	return &GameState{
		ID:        id,
		Status:    Waiting,
		Board:     make(map[int][]string),
		CreatedAt: now,
	}
}

// Clone returns a deep copy sharing nothing mutable with the receiver. The
// history is not carried over: clones exist for search simulation and only
// the authoritative state keeps the append-only log.
func (gs *GameState) Clone() *GameState {
	clone := *gs

	clone.Players = make([]Player, len(gs.Players))
	copy(clone.Players, gs.Players) // Piece arrays copy by value

	clone.Board = make(map[int][]string, len(gs.Board))
	for cell, ids := range gs.Board {
		bucket := make([]string, len(ids))
		copy(bucket, ids)
		clone.Board[cell] = bucket
	}

	clone.History = nil
	return &clone
}

// Player returns the seated player with the given id, or nil.
func (gs *GameState) Player(id string) *Player {
	for i := range gs.Players {
		if gs.Players[i].ID == id {
			return &gs.Players[i]
		}
	}
	return nil
}

// PlayerByColor returns the seated player of the given color, or nil.
func (gs *GameState) PlayerByColor(c Color) *Player {
	for i := range gs.Players {
		if gs.Players[i].Color == c {
			return &gs.Players[i]
		}
	}
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil before start.
func (gs *GameState) CurrentPlayer() *Player {
	if gs.Status != Active || gs.Current >= len(gs.Players) {
		return nil
	}
	return &gs.Players[gs.Current]
}

// Piece locates a piece by owner and id.
func (gs *GameState) Piece(playerID, pieceID string) *Piece {
	player := gs.Player(playerID)
	if player == nil {
		return nil
	}
	for i := range player.Pieces {
		if player.Pieces[i].ID == pieceID {
			return &player.Pieces[i]
		}
	}
	return nil
}

// ColorAt returns the color occupying a track cell, if any. Transient
// multi-color occupancy (mid-capture, jail release) reports the first
// bucketed piece's color.
func (gs *GameState) ColorAt(cell int) (Color, bool) {
	ids := gs.Board[cell]
	if len(ids) == 0 {
		return "", false
	}
	if piece := gs.pieceByID(ids[0]); piece != nil {
		return piece.Color, true
	}
	return "", false
}

// OpponentsAt returns the pieces on a track cell not owned by the color.
func (gs *GameState) OpponentsAt(cell int, own Color) []*Piece {
	var out []*Piece
	for _, id := range gs.Board[cell] {
		if piece := gs.pieceByID(id); piece != nil && piece.Color != own {
			out = append(out, piece)
		}
	}
	return out
}

func (gs *GameState) pieceByID(id string) *Piece {
	for i := range gs.Players {
		for j := range gs.Players[i].Pieces {
			if gs.Players[i].Pieces[j].ID == id {
				return &gs.Players[i].Pieces[j]
			}
		}
	}
	return nil
}

// placeOnTrack adds a piece id to a track cell bucket.
func (gs *GameState) placeOnTrack(cell int, pieceID string) {
	gs.Board[cell] = append(gs.Board[cell], pieceID)
}

// RemovePieceFromTrack drops a piece id from a track cell bucket. Exposed
// for seat removal; gameplay goes through ApplyMove.
func (gs *GameState) RemovePieceFromTrack(cell int, pieceID string) {
	gs.removeFromTrack(cell, pieceID)
}

// removeFromTrack drops a piece id from a track cell bucket.
func (gs *GameState) removeFromTrack(cell int, pieceID string) {
	ids := gs.Board[cell]
	for i, id := range ids {
		if id == pieceID {
			gs.Board[cell] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}

// AdvanceTurn moves to the next player slot in the original turn order and
// counts the turn against the stall ceiling. Callers check the ceiling.
func (gs *GameState) AdvanceTurn() {
	if len(gs.Players) == 0 {
		return
	}
	gs.Current = (gs.Current + 1) % len(gs.Players)
	gs.Turns++
}

// CheckWinner returns the id of a player with all four pieces crowned, or "".
func (gs *GameState) CheckWinner() string {
	for i := range gs.Players {
		if gs.Players[i].HasWon() {
			return gs.Players[i].ID
		}
	}
	return ""
}
