package game

import "time"

// LegalMoves generates every legal move for one of the player's pieces given
// a single die value. This is the only move generator in the module: the
// rules engine validates requests against it and the search strategies call
// it on cloned states, so live play and simulation can never diverge.
func (gs *GameState) LegalMoves(playerID string, dice int) []Move {
	player := gs.Player(playerID)
	if player == nil {
		return nil
	}

	var moves []Move
	for i := range player.Pieces {
		if move, ok := gs.pieceMove(player, &player.Pieces[i], dice); ok {
			moves = append(moves, move)
		}
	}
	return moves
}

// pieceMove computes the single move (if any) a piece has for a die value.
func (gs *GameState) pieceMove(player *Player, piece *Piece, dice int) (Move, bool) {
	switch {
	case piece.Position == Jailed:
		return gs.exitMove(player, piece, dice)
	case IsTrack(piece.Position):
		return gs.trackMove(player, piece, dice)
	case IsLane(piece.Position) && piece.Position != Crowned:
		return gs.laneMove(player, piece, dice)
	default: // Crowned
		return Move{}, false
	}
}

// exitMove offers a jail exit to the color's start cell. Exits require the
// stored roll to be a pair; the start cell must not hold the player's own
// color. The destination is the start cell itself, not dice-derived.
func (gs *GameState) exitMove(player *Player, piece *Piece, dice int) (Move, bool) {
	if !gs.IsPair {
		return Move{}, false
	}
	start := StartCell(player.Color)
	if color, occupied := gs.ColorAt(start); occupied && color == player.Color {
		return Move{}, false
	}
	return Move{
		PlayerID: player.ID,
		PieceID:  piece.ID,
		Type:     MoveExitJail,
		From:     Jailed,
		To:       start,
		Dice:     dice,
	}, true
}

// trackMove advances a piece on the circular track. If the path crosses the
// color's lane entry the move diverts into the goal lane; overshooting the
// crowned cell yields no move at all.
func (gs *GameState) trackMove(player *Player, piece *Piece, dice int) (Move, bool) {
	entrySteps := StepsBetween(piece.Position, LaneEntry(player.Color))
	laneOffset := dice - entrySteps

	if laneOffset >= 1 {
		target, ok := LanePosition(laneOffset)
		if !ok || gs.laneBlocked(player, target) {
			return Move{}, false
		}
		return Move{
			PlayerID: player.ID,
			PieceID:  piece.ID,
			Type:     MoveEnterGoal,
			From:     piece.Position,
			To:       target,
			Dice:     dice,
		}, true
	}

	to := Advance(piece.Position, dice)
	if color, occupied := gs.ColorAt(to); occupied && color == player.Color {
		return Move{}, false
	}

	moveType := MoveNormal
	if !IsSafeCell(to) && len(gs.OpponentsAt(to, player.Color)) == 1 {
		moveType = MoveCapture
	}
	return Move{
		PlayerID: player.ID,
		PieceID:  piece.ID,
		Type:     moveType,
		From:     piece.Position,
		To:       to,
		Dice:     dice,
	}, true
}

// laneMove advances a piece already inside its goal lane.
func (gs *GameState) laneMove(player *Player, piece *Piece, dice int) (Move, bool) {
	to := piece.Position + dice
	if to > Crowned || gs.laneBlocked(player, to) {
		return Move{}, false
	}
	return Move{
		PlayerID: player.ID,
		PieceID:  piece.ID,
		Type:     MoveEnterGoal,
		From:     piece.Position,
		To:       to,
		Dice:     dice,
	}, true
}

// laneBlocked reports whether a lane cell already holds one of the player's
// own pieces. The crowned cell stacks freely, otherwise a game could never
// finish.
func (gs *GameState) laneBlocked(player *Player, lanePos int) bool {
	if lanePos == Crowned {
		return false
	}
	for i := range player.Pieces {
		if player.Pieces[i].Position == lanePos {
			return true
		}
	}
	return false
}

// ApplyMove executes a move previously produced by LegalMoves, mutating the
// state: board buckets, capture eviction, scoring, victory detection and the
// history log. Turn advancement is the caller's decision (a pair grants the
// same player another roll).
func (gs *GameState) ApplyMove(m Move, now time.Time) MoveRecord {
	player := gs.Player(m.PlayerID)
	piece := gs.Piece(m.PlayerID, m.PieceID)

	record := MoveRecord{Move: m, PlayedAt: now}

	if IsTrack(m.From) {
		gs.removeFromTrack(m.From, piece.ID)
	}

	if m.Type == MoveCapture {
		if victims := gs.OpponentsAt(m.To, player.Color); len(victims) > 0 {
			victim := victims[0]
			gs.removeFromTrack(m.To, victim.ID)
			victim.Position = Jailed
			record.CapturedPieceID = victim.ID
			player.Score += PointsForCapture
		}
	}

	enteredLane := m.Type == MoveEnterGoal && !IsLane(m.From)
	if enteredLane {
		player.Score += PointsForGoal
	}

	piece.Position = m.To
	if IsTrack(m.To) {
		gs.placeOnTrack(m.To, piece.ID)
	}

	gs.History = append(gs.History, record)

	if winner := gs.CheckWinner(); winner != "" && gs.Status == Active {
		gs.WinnerID = winner
		gs.Status = Finished
		gs.FinishedAt = now
		player.Score += PointsForWin
	}

	return record
}

// ReleaseJailed moves every jailed piece of the player to its start cell in
// one atomic step, logging each release with dice value 0. Rolling a pair
// triggers this; same-cell co-occupancy with pieces already on the start is
// permitted at that instant (start cells are safe, so nothing is captured).
func (gs *GameState) ReleaseJailed(playerID string, now time.Time) []MoveRecord {
	player := gs.Player(playerID)
	if player == nil {
		return nil
	}

	start := StartCell(player.Color)
	var records []MoveRecord
	for i := range player.Pieces {
		piece := &player.Pieces[i]
		if piece.Position != Jailed {
			continue
		}
		piece.Position = start
		gs.placeOnTrack(start, piece.ID)

		record := MoveRecord{
			Move: Move{
				PlayerID: player.ID,
				PieceID:  piece.ID,
				Type:     MoveExitJail,
				From:     Jailed,
				To:       start,
				Dice:     0,
			},
			PlayedAt: now,
		}
		gs.History = append(gs.History, record)
		records = append(records, record)
	}
	return records
}
