package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfileFor(t *testing.T) {
	t.Run("each level has its own algorithm", func(t *testing.T) {
		require.Equal(t, AlgorithmWeighted, ProfileFor(Easy).Algorithm)
		require.Equal(t, AlgorithmMinimax, ProfileFor(Medium).Algorithm)
		require.Equal(t, AlgorithmMinimax, ProfileFor(Hard).Algorithm)
		require.Equal(t, AlgorithmMCTS, ProfileFor(Expert).Algorithm)
	})

	t.Run("mistakes thin out as levels rise", func(t *testing.T) {
		levels := Levels()
		for i := 1; i < len(levels); i++ {
			require.Less(t,
				ProfileFor(levels[i]).MistakeProb,
				ProfileFor(levels[i-1]).MistakeProb,
				"%s should blunder less than %s", levels[i], levels[i-1])
		}
	})

	t.Run("unknown levels fall back to medium", func(t *testing.T) {
		require.Equal(t, ProfileFor(Medium), ProfileFor("nightmare"))
	})
}

func TestNewStrategy(t *testing.T) {
	t.Run("builds the strategy the profile names", func(t *testing.T) {
		s, err := NewStrategy(Easy, testRNG())
		require.NoError(t, err)
		require.IsType(t, &Weighted{}, s)

		s, err = NewStrategy(Hard, testRNG())
		require.NoError(t, err)
		require.IsType(t, &Minimax{}, s)

		s, err = NewStrategy(Expert, testRNG())
		require.NoError(t, err)
		require.IsType(t, &MCTS{}, s)
	})
}
