package searcher

import (
	"context"
	"math"

	"golang.org/x/exp/rand"

	"parques/game"
)

// Minimax is a depth-limited minimax search with alpha-beta pruning. The
// maximizing side is always the bot; the minimizing ply considers only the
// single most threatening opponent (highest heuristic score), which keeps
// the branching factor flat across 2-4 players. Leaves are scored by the
// heuristic evaluator from the bot's perspective.
type Minimax struct {
	temperament
	depth int
}

// NewMinimax builds the strategy from a profile. A nil rng is seeded from
// the clock.
func NewMinimax(profile Profile, rng *rand.Rand) *Minimax {
	rng = newRNG(rng)
	return &Minimax{
		temperament: temperament{
			think:   profile.ThinkTime,
			mistake: profile.MistakeProb,
			rng:     rng,
		},
		depth: profile.Depth,
	}
}

// ChooseMove implements Strategy. Root scores carry a small uniform
// perturbation (±0.5) so equal moves break ties non-deterministically. A
// mistake returns one of the bottom-ranked legal moves instead.
func (m *Minimax) ChooseMove(ctx context.Context, state *game.GameState, legal []game.Move) game.Move {
	m.pause(ctx)

	if m.blunders() {
		worst := legal
		if len(worst) > 3 {
			worst = worst[len(worst)-3:]
		}
		return worst[m.rng.Intn(len(worst))]
	}

	me := legal[0].PlayerID
	best := legal[0]
	bestScore := math.Inf(-1)

	for _, move := range legal {
		child := state.Clone()
		applySimulated(child, move)

		score := m.search(ctx, child, me, m.depth-1, false, math.Inf(-1), math.Inf(1))
		score += m.rng.Float64() - 0.5

		if score > bestScore {
			bestScore = score
			best = move
		}
		if ctx.Err() != nil {
			break
		}
	}
	return best
}

// search walks one ply. Opponent and self moves are generated through the
// shared game move generator on scratch clones with sampled dice.
func (m *Minimax) search(ctx context.Context, gs *game.GameState, me string, depth int, maximizing bool, alpha, beta float64) float64 {
	if depth <= 0 || isTerminal(gs) || ctx.Err() != nil {
		return game.Evaluate(gs, me)
	}

	mover := me
	if !maximizing {
		mover = m.mostThreateningOpponent(gs, me)
		if mover == "" {
			return game.Evaluate(gs, me)
		}
	}

	dice := sampleDice(gs, m.rng)
	moves := gs.LegalMoves(mover, dice)
	if len(moves) == 0 {
		return game.Evaluate(gs, me)
	}

	if maximizing {
		maxScore := math.Inf(-1)
		for _, move := range moves {
			child := gs.Clone()
			applySimulated(child, move)
			score := m.search(ctx, child, me, depth-1, false, alpha, beta)
			maxScore = math.Max(maxScore, score)
			alpha = math.Max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return maxScore
	}

	minScore := math.Inf(1)
	for _, move := range moves {
		child := gs.Clone()
		applySimulated(child, move)
		score := m.search(ctx, child, me, depth-1, true, alpha, beta)
		minScore = math.Min(minScore, score)
		beta = math.Min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return minScore
}

// mostThreateningOpponent picks the opponent with the highest heuristic
// score, or "" when the bot is alone.
func (m *Minimax) mostThreateningOpponent(gs *game.GameState, me string) string {
	best := ""
	bestScore := math.Inf(-1)
	for i := range gs.Players {
		id := gs.Players[i].ID
		if id == me {
			continue
		}
		if score := game.Evaluate(gs, id); score > bestScore {
			bestScore = score
			best = id
		}
	}
	return best
}
