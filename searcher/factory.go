package searcher

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// NewStrategy creates the move-choosing strategy for a difficulty level. A
// nil rng lets each strategy seed its own.
func NewStrategy(level Level, rng *rand.Rand) (Strategy, error) {
	profile := ProfileFor(level)
	switch profile.Algorithm {
	case AlgorithmWeighted:
		return NewWeighted(profile, rng), nil
	case AlgorithmMinimax:
		return NewMinimax(profile, rng), nil
	case AlgorithmMCTS:
		return NewMCTS(profile, rng), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s", profile.Algorithm)
	}
}
