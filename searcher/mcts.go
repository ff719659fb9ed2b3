package searcher

import (
	"context"

	"golang.org/x/exp/rand"

	"parques/game"
)

// rolloutCutoff bounds playout length; rollouts that run past it are scored
// by the heuristic evaluator instead of a win or loss.
const rolloutCutoff = 100

// MCTS is Monte Carlo Tree Search with UCB1 selection. Each iteration walks
// the tree to an expandable node, attaches one new child, plays a random
// rollout from it and backs the reward up to the root. The answer is the
// most-visited root child. Used for the expert level.
type MCTS struct {
	temperament
	iterations int
	cSquared   float64
}

// NewMCTS builds the strategy from a profile. A nil rng is seeded from the
// clock.
func NewMCTS(profile Profile, rng *rand.Rand) *MCTS {
	rng = newRNG(rng)
	return &MCTS{
		temperament: temperament{
			think:   profile.ThinkTime,
			mistake: profile.MistakeProb,
			rng:     rng,
		},
		iterations: profile.Simulations,
		cSquared:   profile.Exploration * profile.Exploration,
	}
}

// ChooseMove implements Strategy. Cancelling the context stops iterating
// and returns the best move found so far. A mistake degrades the pick to a
// uniform choice over all legal moves.
func (m *MCTS) ChooseMove(ctx context.Context, state *game.GameState, legal []game.Move) game.Move {
	m.pause(ctx)

	if m.blunders() {
		return legal[m.rng.Intn(len(legal))]
	}

	me := legal[0].PlayerID
	root := newNode(nil, game.Move{}, state.Clone(), append([]game.Move(nil), legal...))

	for i := 0; i < m.iterations; i++ {
		m.simulate(root, me)
		if ctx.Err() != nil {
			break
		}
	}

	if len(root.children) == 0 {
		return legal[m.rng.Intn(len(legal))]
	}
	return root.bestMove()
}

// simulate runs one selection, expansion, rollout and backup pass.
func (m *MCTS) simulate(root *node, me string) {
	cursor := root
	for len(cursor.untried) == 0 && len(cursor.children) > 0 {
		cursor = cursor.selectChild(m.cSquared)
	}
	if len(cursor.untried) > 0 {
		cursor = cursor.expand(m.rng)
	}
	cursor.backup(m.rollout(cursor.state, me))
}

// rollout plays random moves from a state until someone wins or the cutoff
// is hit, and scores the end position for the searching player on a 0..1
// scale.
func (m *MCTS) rollout(state *game.GameState, me string) float64 {
	gs := state.Clone()
	for ply := 0; ply < rolloutCutoff; ply++ {
		if winner := gs.CheckWinner(); winner != "" {
			if winner == me {
				return 1.0
			}
			return 0.0
		}

		mover := gs.CurrentPlayer()
		if mover == nil {
			break
		}

		dice := sampleDice(gs, m.rng)
		moves := gs.LegalMoves(mover.ID, dice)
		if len(moves) == 0 {
			gs.AdvanceTurn()
			continue
		}
		applySimulated(gs, moves[m.rng.Intn(len(moves))])
	}
	return game.EvaluateNormalized(gs, me)
}
