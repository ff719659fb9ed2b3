package engine

import "time"

// Clock is the engine's opaque time source. Move timestamps come from here
// so that a caller with a synchronized wall clock can supply it; the engine
// never inspects the values it stamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by the local wall clock.
func SystemClock() Clock { return systemClock{} }
