package searcher

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"parques/game"
)

func TestNodeMechanics(t *testing.T) {
	t.Run("expand pops untried moves one at a time", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, 10)
		put(gs, "p-red", 1, 20)
		gs.Die1, gs.Die2, gs.IsPair = 3, 5, false

		legal := gs.LegalMoves("p-red", 3)
		require.Len(t, legal, 2)

		root := newNode(nil, game.Move{}, gs.Clone(), legal)
		rng := testRNG()

		first := root.expand(rng)
		require.Len(t, root.untried, 1)
		require.Len(t, root.children, 1)
		require.Same(t, root, first.parent)

		second := root.expand(rng)
		require.Empty(t, root.untried, "Both moves should now be expanded")
		require.NotEqual(t, first.move.PieceID, second.move.PieceID)
	})

	t.Run("backup walks rewards up to the root", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, 10)
		gs.Die1, gs.Die2, gs.IsPair = 3, 5, false

		root := newNode(nil, game.Move{}, gs.Clone(), gs.LegalMoves("p-red", 3))
		child := root.expand(testRNG())

		child.backup(0.75)

		require.Equal(t, 1, child.visits)
		require.Equal(t, 1, root.visits)
		require.InDelta(t, 0.75, root.rewards, 0.0001)
	})

	t.Run("best move is the most visited child", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, 10)
		put(gs, "p-red", 1, 20)
		gs.Die1, gs.Die2, gs.IsPair = 3, 5, false

		root := newNode(nil, game.Move{}, gs.Clone(), gs.LegalMoves("p-red", 3))
		rng := testRNG()
		a := root.expand(rng)
		b := root.expand(rng)

		a.backup(0.0)
		b.backup(1.0)
		b.backup(1.0)

		require.Equal(t, b.move, root.bestMove(),
			"Visits decide the answer, not raw rewards")
	})
}

func TestMCTSChooseMove(t *testing.T) {
	t.Run("a single iteration expands exactly one child", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, 10)
		put(gs, "p-red", 1, 20)
		gs.Die1, gs.Die2, gs.IsPair = 3, 5, false

		legal := gs.LegalMoves("p-red", 3)
		profile := instantProfile(ProfileFor(Expert))
		profile.Simulations = 1
		m := NewMCTS(profile, testRNG())

		move := m.ChooseMove(context.Background(), gs, legal)
		require.Contains(t, legal, move)
	})

	t.Run("search favors the immediately winning move", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, game.Crowned)
		put(gs, "p-red", 1, game.Crowned)
		put(gs, "p-red", 2, game.Crowned)
		put(gs, "p-red", 3, 74)
		put(gs, "p-blue", 0, 30)
		gs.Die1, gs.Die2, gs.IsPair = 1, 3, false

		legal := gs.LegalMoves("p-red", 1)
		require.Len(t, legal, 1, "Only the crowning move exists")

		profile := instantProfile(ProfileFor(Expert))
		profile.Simulations = 50
		m := NewMCTS(profile, testRNG())

		move := m.ChooseMove(context.Background(), gs, legal)
		require.Equal(t, game.Crowned, move.To)
	})

	t.Run("a cancelled context still yields a move", func(t *testing.T) {
		gs := tableFor()
		put(gs, "p-red", 0, 10)
		gs.Die1, gs.Die2, gs.IsPair = 4, 2, false

		legal := gs.LegalMoves("p-red", 4)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m := NewMCTS(instantProfile(ProfileFor(Expert)), testRNG())
		move := m.ChooseMove(ctx, gs, legal)
		require.Contains(t, legal, move)
	})
}
