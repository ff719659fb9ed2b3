// Package agent connects the search strategies to the live engine. An Agent
// occupies one computer-controlled seat and plays complete turns through
// the same public engine operations a human client would use.
package agent

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"parques/engine"
	"parques/game"
	"parques/searcher"
)

// Agent plays one seat of one game.
type Agent struct {
	engine   *engine.Engine
	gameID   string
	playerID string
	strategy searcher.Strategy
}

// New builds an agent for a seated player, with the strategy picked by the
// player's difficulty level.
func New(eng *engine.Engine, gameID string, player game.Player) (*Agent, error) {
	strategy, err := searcher.NewStrategy(searcher.Level(player.Level), nil)
	if err != nil {
		return nil, err
	}
	return &Agent{
		engine:   eng,
		gameID:   gameID,
		playerID: player.ID,
		strategy: strategy,
	}, nil
}

// NewWithStrategy builds an agent with an explicit strategy, bypassing the
// difficulty table.
func NewWithStrategy(eng *engine.Engine, gameID, playerID string, strategy searcher.Strategy) *Agent {
	return &Agent{
		engine:   eng,
		gameID:   gameID,
		playerID: playerID,
		strategy: strategy,
	}
}

// PlayTurn plays the agent's whole turn: roll, move with each die, and roll
// again while pairs keep the turn. The turn ends through the engine, either
// by the last move or by an explicit pass when a die cannot be used.
func (a *Agent) PlayTurn(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		roll, err := a.engine.RollDice(a.gameID, a.playerID)
		if err != nil {
			return err
		}
		log.Debug().Str("game", a.gameID).Str("player", a.playerID).
			Int("die1", roll.Die1).Int("die2", roll.Die2).Bool("pair", roll.IsPair).
			Msg("agent rolled")

		endedTurn := false
		for i, die := range []int{roll.Die1, roll.Die2} {
			isLast := i == 1
			moved, err := a.moveOnce(ctx, die, isLast)
			if err != nil {
				return err
			}
			if moved && isLast && !roll.IsPair {
				endedTurn = true
			}
		}

		gs, err := a.engine.Snapshot(a.gameID)
		if err != nil {
			return err
		}
		if gs.Status != game.Active {
			return nil
		}

		if roll.IsPair {
			continue // bonus roll
		}
		if !endedTurn {
			strikes, err := a.engine.PassTurn(a.gameID, a.playerID)
			if err != nil {
				return err
			}
			if strikes > 0 {
				log.Debug().Str("game", a.gameID).Str("player", a.playerID).
					Int("strikes", strikes).Msg("agent passed while jailed")
			}
		}
		return nil
	}
}

// moveOnce plays one die if any legal move exists for it. A game already
// decided by the previous die of the roll yields no move.
func (a *Agent) moveOnce(ctx context.Context, die int, isLast bool) (bool, error) {
	state, err := a.engine.Snapshot(a.gameID)
	if err != nil {
		return false, err
	}
	if state.Status != game.Active {
		return false, nil
	}

	legal, err := a.engine.ValidMoves(a.gameID, a.playerID, die)
	if err != nil {
		return false, err
	}
	if len(legal) == 0 {
		return false, nil
	}

	started := time.Now()
	move := a.choose(ctx, state, legal)
	log.Debug().Str("game", a.gameID).Str("player", a.playerID).
		Str("piece", move.PieceID).Int("to", move.To).
		Dur("took", time.Since(started)).Msg("agent chose")

	if _, err := a.engine.MakeMove(a.gameID, a.playerID, move.PieceID, move.To, die, isLast); err != nil {
		return false, err
	}
	return true, nil
}

// choose runs the strategy on its own goroutine so a slow search never
// blocks the caller past context cancellation; the strategies themselves
// cut their work short when the context is cancelled.
func (a *Agent) choose(ctx context.Context, state *game.GameState, legal []game.Move) game.Move {
	picked := make(chan game.Move, 1)
	go func() {
		picked <- a.strategy.ChooseMove(ctx, state, legal)
	}()
	select {
	case move := <-picked:
		return move
	case <-ctx.Done():
		return legal[0]
	}
}
