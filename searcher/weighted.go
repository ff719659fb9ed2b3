package searcher

import (
	"context"
	"sort"

	"golang.org/x/exp/rand"

	"parques/game"
)

// Static move priorities for the weighted-random strategy.
const (
	priorityExitJail  = 10
	priorityEnterLane = 15
	priorityCapture   = 12
	prioritySafeCell  = 5
)

// Weighted picks among the legal moves by static priority: the candidates
// are scored, the top three kept, and one of those sampled uniformly. The
// cheapest opponent; used for the easy level.
type Weighted struct {
	temperament
}

// NewWeighted builds the strategy from a profile. A nil rng is seeded from
// the clock.
func NewWeighted(profile Profile, rng *rand.Rand) *Weighted {
	rng = newRNG(rng)
	return &Weighted{
		temperament: temperament{
			think:   profile.ThinkTime,
			mistake: profile.MistakeProb,
			rng:     rng,
		},
	}
}

// ChooseMove implements Strategy. A mistake degrades the pick to a uniform
// choice over all legal moves.
func (w *Weighted) ChooseMove(ctx context.Context, state *game.GameState, legal []game.Move) game.Move {
	w.pause(ctx)

	if w.blunders() {
		return legal[w.rng.Intn(len(legal))]
	}

	type scored struct {
		move     game.Move
		priority int
	}
	candidates := make([]scored, len(legal))
	for i, move := range legal {
		priority := 0
		if move.Type == game.MoveExitJail {
			priority += priorityExitJail
		}
		if move.Type == game.MoveEnterGoal {
			priority += priorityEnterLane
		}
		if move.Type == game.MoveCapture {
			priority += priorityCapture
		}
		if game.IsTrack(move.To) && game.IsSafeCell(move.To) {
			priority += prioritySafeCell
		}
		candidates[i] = scored{move: move, priority: priority}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].priority > candidates[j].priority
	})

	top := candidates
	if len(top) > 3 {
		top = top[:3]
	}
	return top[w.rng.Intn(len(top))].move
}
