package searcher

import "time"

// Level is the four-step difficulty scale exposed to players.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
	Expert Level = "expert"
)

// Algorithm names the search kind a profile selects.
type Algorithm string

const (
	AlgorithmWeighted Algorithm = "weighted"
	AlgorithmMinimax  Algorithm = "minimax"
	AlgorithmMCTS     Algorithm = "mcts"
)

// Profile bundles every tunable of one difficulty level.
type Profile struct {
	Algorithm   Algorithm
	Depth       int           // Minimax search depth
	Simulations int           // MCTS iteration budget
	Exploration float64       // UCB1 exploration constant
	ThinkTime   time.Duration // Base artificial thinking delay
	MistakeProb float64       // Chance per decision of a deliberate blunder
}

// profiles is the static difficulty table consumed by the bot factory.
var profiles = map[Level]Profile{
	Easy: {
		Algorithm:   AlgorithmWeighted,
		Depth:       1,
		Simulations: 100,
		Exploration: 1.4,
		ThinkTime:   500 * time.Millisecond,
		MistakeProb: 0.3,
	},
	Medium: {
		Algorithm:   AlgorithmMinimax,
		Depth:       2,
		Simulations: 500,
		Exploration: 1.2,
		ThinkTime:   time.Second,
		MistakeProb: 0.15,
	},
	Hard: {
		Algorithm:   AlgorithmMinimax,
		Depth:       3,
		Simulations: 1000,
		Exploration: 1.0,
		ThinkTime:   1500 * time.Millisecond,
		MistakeProb: 0.05,
	},
	Expert: {
		Algorithm:   AlgorithmMCTS,
		Depth:       4,
		Simulations: 2000,
		Exploration: 0.8,
		ThinkTime:   2 * time.Second,
		MistakeProb: 0.01,
	},
}

// ProfileFor returns the profile of a level, defaulting to Medium for an
// unknown tag.
func ProfileFor(level Level) Profile {
	if profile, ok := profiles[level]; ok {
		return profile
	}
	return profiles[Medium]
}

// Levels lists all difficulty levels in ascending order.
func Levels() []Level {
	return []Level{Easy, Medium, Hard, Expert}
}
