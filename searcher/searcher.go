// Package searcher implements the move-choosing policies behind the
// computer opponents: a weighted-random picker, depth-limited minimax with
// alpha-beta pruning, and Monte Carlo Tree Search with UCT.
//
// Strategies simulate play through the game package's own move generation
// and application on cloned states, so search can never disagree with the
// live rules engine about what a move does.
package searcher

import (
	"context"
	"time"

	"golang.org/x/exp/rand"

	"parques/game"
)

// Strategy chooses one move among the legal options. Implementations never
// receive an empty list; detecting "no legal moves" is the caller's job. A
// cancelled context aborts any remaining thinking time and search effort and
// returns the best move found so far.
type Strategy interface {
	ChooseMove(ctx context.Context, state *game.GameState, legal []game.Move) game.Move
}

// newRNG seeds a searcher RNG, from the clock unless one is supplied.
func newRNG(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
}

// sampleDice throws simulated dice onto a scratch state and returns the die
// value to move with. Setting the pair flag lets the shared move generator
// offer jail exits during simulation.
func sampleDice(gs *game.GameState, rng *rand.Rand) int {
	d1 := rng.Intn(game.DiceMax) + 1
	d2 := rng.Intn(game.DiceMax) + 1
	gs.Die1, gs.Die2, gs.IsPair = d1, d2, d1 == d2
	return d1
}

// applySimulated plays a move on a scratch state and hands the turn over.
// Simulated plies do not model bonus rolls; one move per ply keeps the tree
// and rollout branching uniform.
func applySimulated(gs *game.GameState, move game.Move) {
	gs.ApplyMove(move, time.Time{})
	gs.AdvanceTurn()
}

// isTerminal reports whether someone has all four pieces crowned.
func isTerminal(gs *game.GameState) bool {
	return gs.Status == game.Finished || gs.CheckWinner() != ""
}
