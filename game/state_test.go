package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// activeTwoPlayer builds an active red-versus-blue game with every piece
// jailed. Tests move pieces around with place.
func activeTwoPlayer() *GameState {
	gs := NewGameState("g1", time.Now())
	gs.Players = append(gs.Players, NewPlayer("p-red", "Ana", Red))
	gs.Players = append(gs.Players, NewPlayer("p-blue", "Beto", Blue))
	gs.Status = Active
	return gs
}

// place moves one of the player's pieces to a position, keeping the board
// occupancy buckets consistent.
func place(gs *GameState, playerID string, idx, pos int) *Piece {
	piece := &gs.Player(playerID).Pieces[idx]
	if IsTrack(piece.Position) {
		gs.removeFromTrack(piece.Position, piece.ID)
	}
	piece.Position = pos
	if IsTrack(pos) {
		gs.placeOnTrack(pos, piece.ID)
	}
	return piece
}

func TestNewPlayer(t *testing.T) {
	t.Run("seats a player with four jailed pieces", func(t *testing.T) {
		p := NewPlayer("p1", "Ana", Red)

		require.Len(t, p.Pieces, PiecesPerPlayer)
		for _, piece := range p.Pieces {
			require.Equal(t, Jailed, piece.Position, "All pieces should start in jail")
			require.Equal(t, Red, piece.Color)
		}
		require.Equal(t, PiecesPerPlayer, p.JailedCount())
		require.False(t, p.HasWon())
	})
}

func TestPieceStatus(t *testing.T) {
	cases := []struct {
		name     string
		position int
		want     PieceStatus
	}{
		{"jailed piece is home", Jailed, StatusHome},
		{"regular track cell is board", 3, StatusBoard},
		{"safe track cell is safe zone", 5, StatusSafeZone},
		{"lane cell is safe zone", 70, StatusSafeZone},
		{"crowned cell is goal", Crowned, StatusGoal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			piece := Piece{ID: "red_0", Color: Red, Position: tc.position}
			require.Equal(t, tc.want, piece.Status())
		})
	}
}

func TestClone(t *testing.T) {
	t.Run("mutating the clone leaves the original alone", func(t *testing.T) {
		gs := activeTwoPlayer()
		place(gs, "p-red", 0, 10)
		gs.History = append(gs.History, MoveRecord{})

		clone := gs.Clone()
		clone.Players[0].Pieces[0].Position = 20
		clone.Board[10] = nil
		clone.AdvanceTurn()

		require.Equal(t, 10, gs.Players[0].Pieces[0].Position,
			"Original piece position should be untouched")
		require.Len(t, gs.Board[10], 1, "Original board bucket should be untouched")
		require.Equal(t, 0, gs.Current)
	})

	t.Run("clone drops the history", func(t *testing.T) {
		gs := activeTwoPlayer()
		gs.History = append(gs.History, MoveRecord{})

		clone := gs.Clone()
		require.Empty(t, clone.History,
			"Simulation copies should not drag the move log along")
	})
}

func TestCurrentPlayer(t *testing.T) {
	t.Run("nil before the game starts", func(t *testing.T) {
		gs := NewGameState("g1", time.Now())
		gs.Players = append(gs.Players, NewPlayer("p1", "Ana", Red))
		require.Nil(t, gs.CurrentPlayer())
	})

	t.Run("follows the turn index while active", func(t *testing.T) {
		gs := activeTwoPlayer()
		require.Equal(t, "p-red", gs.CurrentPlayer().ID)

		gs.AdvanceTurn()
		require.Equal(t, "p-blue", gs.CurrentPlayer().ID)

		gs.AdvanceTurn()
		require.Equal(t, "p-red", gs.CurrentPlayer().ID, "Turn order should wrap")
		require.Equal(t, 2, gs.Turns)
	})
}

func TestOpponentsAt(t *testing.T) {
	t.Run("reports only enemy pieces on the cell", func(t *testing.T) {
		gs := activeTwoPlayer()
		place(gs, "p-red", 0, 20)
		place(gs, "p-blue", 0, 20)

		enemies := gs.OpponentsAt(20, Red)
		require.Len(t, enemies, 1)
		require.Equal(t, Blue, enemies[0].Color)

		require.Empty(t, gs.OpponentsAt(21, Red), "An empty cell holds no enemies")
	})
}

func TestCheckWinner(t *testing.T) {
	t.Run("only a fully crowned player wins", func(t *testing.T) {
		gs := activeTwoPlayer()
		for i := 0; i < 3; i++ {
			place(gs, "p-red", i, Crowned)
		}
		require.Equal(t, "", gs.CheckWinner(), "Three crowned pieces are not a win")

		place(gs, "p-red", 3, Crowned)
		require.Equal(t, "p-red", gs.CheckWinner())
	})
}
