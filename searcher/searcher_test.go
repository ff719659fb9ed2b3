package searcher

import (
	"time"

	"golang.org/x/exp/rand"

	"parques/game"
)

// tableFor builds an active red-versus-blue state for strategy tests.
func tableFor() *game.GameState {
	gs := game.NewGameState("search-test", time.Now())
	gs.Players = append(gs.Players, game.NewPlayer("p-red", "Ana", game.Red))
	gs.Players = append(gs.Players, game.NewPlayer("p-blue", "Beto", game.Blue))
	gs.Status = game.Active
	return gs
}

// put moves a piece onto a position, keeping the track buckets consistent.
func put(gs *game.GameState, playerID string, idx, pos int) {
	piece := &gs.Player(playerID).Pieces[idx]
	if game.IsTrack(piece.Position) {
		gs.RemovePieceFromTrack(piece.Position, piece.ID)
	}
	piece.Position = pos
	if game.IsTrack(pos) {
		gs.Board[pos] = append(gs.Board[pos], piece.ID)
	}
}

// instantProfile strips a profile of its human veneer so tests run fast and
// deterministically shaped.
func instantProfile(p Profile) Profile {
	p.ThinkTime = 0
	p.MistakeProb = 0
	return p
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}
