package game

// Heuristic position evaluation, shared by every computer opponent: the
// minimax leaf score and the MCTS rollout fallback both come from here.

// Evaluation weights.
const (
	weightJailed     = -10.0
	weightCrowned    = 50.0
	weightProgress   = 20.0
	weightSafe       = 5.0
	weightVulnerable = -8.0
	weightCaptureOpp = 15.0
	evalScoreFloor   = -100.0
	evalScoreCeiling = 100.0
)

// Evaluate scores the position from the given player's perspective. Higher
// is better. The vulnerability and capture-opportunity scans are
// O(pieces² × 6), which is fine at four players by four pieces.
func Evaluate(gs *GameState, playerID string) float64 {
	player := gs.Player(playerID)
	if player == nil {
		return evalScoreFloor * 10
	}

	score := 0.0
	for i := range player.Pieces {
		piece := &player.Pieces[i]
		switch {
		case piece.Position == Jailed:
			score += weightJailed
		case piece.Position == Crowned:
			score += weightCrowned
		default:
			pos := piece.Position
			if pos > TrackSize-1 {
				pos = TrackSize - 1
			}
			score += weightProgress * float64(pos) / float64(TrackSize-1)
		}
		if IsTrack(piece.Position) && IsSafeCell(piece.Position) {
			score += weightSafe
		}
	}

	score += weightVulnerable * float64(gs.vulnerableCount(player))
	score += weightCaptureOpp * float64(gs.captureOpportunities(player))
	return score
}

// EvaluateNormalized maps Evaluate onto [0,1] for rollout cutoff scores.
func EvaluateNormalized(gs *GameState, playerID string) float64 {
	score := Evaluate(gs, playerID)
	normalized := (score - evalScoreFloor) / (evalScoreCeiling - evalScoreFloor)
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// vulnerableCount counts the player's non-safe track pieces that some
// opposing track piece could reach with a single die value.
func (gs *GameState) vulnerableCount(player *Player) int {
	count := 0
	for i := range player.Pieces {
		pos := player.Pieces[i].Position
		if !IsTrack(pos) || IsSafeCell(pos) {
			continue
		}
		if gs.reachableByOpponent(pos, player.Color) {
			count++
		}
	}
	return count
}

func (gs *GameState) reachableByOpponent(target int, own Color) bool {
	for i := range gs.Players {
		if gs.Players[i].Color == own {
			continue
		}
		for j := range gs.Players[i].Pieces {
			from := gs.Players[i].Pieces[j].Position
			if !IsTrack(from) {
				continue
			}
			steps := StepsBetween(from, target)
			if steps >= DiceMin && steps <= DiceMax {
				return true
			}
		}
	}
	return false
}

// captureOpportunities counts the player's track pieces that could land on a
// non-safe cell currently occupied by an opponent with some die value.
func (gs *GameState) captureOpportunities(player *Player) int {
	count := 0
	for i := range player.Pieces {
		from := player.Pieces[i].Position
		if !IsTrack(from) {
			continue
		}
		for dice := DiceMin; dice <= DiceMax; dice++ {
			target := Advance(from, dice)
			if IsSafeCell(target) {
				continue
			}
			if len(gs.OpponentsAt(target, player.Color)) > 0 {
				count++
				break
			}
		}
	}
	return count
}
