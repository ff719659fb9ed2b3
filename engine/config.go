package engine

import (
	"os"
	"strconv"
)

// Config carries the engine's rule knobs.
type Config struct {
	// MaxTurns is the hard ceiling of turn advances before a game is
	// force-finished with no winner. Counted unconditionally on every turn
	// change; it is a turn cap, not a progress detector.
	MaxTurns int

	// JailStrikeLimit is how many fully-jailed passes accumulate before the
	// strike counter resets. The reset is reported to the caller, which may
	// grant whatever bonus it sees fit.
	JailStrikeLimit int
}

// DefaultConfig returns the standard rule set.
func DefaultConfig() Config {
	return Config{
		MaxTurns:        50,
		JailStrikeLimit: 3,
	}
}

// LoadConfig reads the rule knobs from the environment, falling back to the
// defaults.
func LoadConfig() Config {
	return Config{
		MaxTurns:        getenvInt("PARQUES_MAX_TURNS", 50),
		JailStrikeLimit: getenvInt("PARQUES_JAIL_STRIKES", 3),
	}
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}
