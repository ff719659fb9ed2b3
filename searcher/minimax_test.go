package searcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"parques/game"
)

func TestMinimaxChooseMove(t *testing.T) {
	t.Run("crowning beats a plain advance", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, game.Crowned)
		put(gs, "p-red", 1, game.Crowned)
		put(gs, "p-red", 2, 74) // One step from the crowned cell
		put(gs, "p-red", 3, 10)
		gs.Die1, gs.Die2, gs.IsPair = 1, 4, false

		legal := gs.LegalMoves("p-red", 1)
		require.Len(t, legal, 2, "The lane piece and the track piece can move")

		profile := instantProfile(ProfileFor(Medium))
		profile.Depth = 1
		m := NewMinimax(profile, testRNG())

		move := m.ChooseMove(context.Background(), gs, legal)
		require.Equal(t, game.Crowned, move.To,
			"The heuristic gap between crowning and advancing dwarfs the root jitter")
	})

	t.Run("returns a legal move at greater depth", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, 4)
		put(gs, "p-blue", 0, 10)
		gs.Die1, gs.Die2, gs.IsPair = 6, 3, false

		legal := gs.LegalMoves("p-red", 6)
		profile := instantProfile(ProfileFor(Hard))
		m := NewMinimax(profile, testRNG())

		move := m.ChooseMove(context.Background(), gs, legal)
		require.Contains(t, legal, move)
	})

	t.Run("a cancelled context still yields a move", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, 10)
		gs.Die1, gs.Die2, gs.IsPair = 3, 2, false

		legal := gs.LegalMoves("p-red", 3)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m := NewMinimax(instantProfile(ProfileFor(Hard)), testRNG())
		move := m.ChooseMove(ctx, gs, legal)
		require.Contains(t, legal, move)
	})
}
