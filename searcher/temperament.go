package searcher

import (
	"context"
	"time"

	"golang.org/x/exp/rand"
)

// temperament is the human-like veneer shared by all strategies: an
// artificial thinking delay so a UI can animate, and a per-decision mistake
// roll that swaps the computed answer for a deliberately weaker one.
type temperament struct {
	think   time.Duration
	mistake float64
	rng     *rand.Rand
}

// pause sleeps for the thinking delay, jittered plus or minus 30%. Returns
// early if the context is cancelled. The delay has no bearing on search
// quality.
func (t *temperament) pause(ctx context.Context) {
	if t.think <= 0 {
		return
	}
	jittered := time.Duration(float64(t.think) * (0.7 + 0.6*t.rng.Float64()))
	timer := time.NewTimer(jittered)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// blunders rolls the configured mistake probability once.
func (t *temperament) blunders() bool {
	return t.rng.Float64() < t.mistake
}
