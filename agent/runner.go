package agent

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"parques/engine"
	"parques/game"
)

// Runner drives every computer-controlled seat of one game. Human seats are
// untouched: Run hands control back whenever the turn reaches one.
type Runner struct {
	engine *engine.Engine
	gameID string
	agents map[string]*Agent
}

// NewRunner builds agents for all AI players currently seated in the game.
func NewRunner(eng *engine.Engine, gameID string) (*Runner, error) {
	gs, err := eng.Snapshot(gameID)
	if err != nil {
		return nil, err
	}

	agents := make(map[string]*Agent)
	for _, player := range gs.Players {
		if !player.IsAI {
			continue
		}
		a, err := New(eng, gameID, player)
		if err != nil {
			return nil, fmt.Errorf("seat %s: %w", player.ID, err)
		}
		agents[player.ID] = a
	}

	return &Runner{engine: eng, gameID: gameID, agents: agents}, nil
}

// Run plays AI turns until the game leaves the active state or the turn
// reaches a human seat, and returns the winner's ID if one was decided.
func (r *Runner) Run(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		gs, err := r.engine.Snapshot(r.gameID)
		if err != nil {
			return "", err
		}
		if gs.Status != game.Active {
			return gs.WinnerID, nil
		}

		current := gs.CurrentPlayer()
		if current == nil {
			return gs.WinnerID, nil
		}
		a, ok := r.agents[current.ID]
		if !ok {
			log.Debug().Str("game", r.gameID).Str("player", current.ID).
				Msg("turn reached a human seat")
			return "", nil
		}

		if err := a.PlayTurn(ctx); err != nil {
			return "", err
		}
	}
}
