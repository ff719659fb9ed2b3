package engine

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"parques/game"
)

// Engine is the authoritative rules engine. It owns game lifecycle, dice,
// move validation and turn bookkeeping; the actual board semantics live in
// the game package so that search strategies simulate through the exact same
// code path.
type Engine struct {
	store *Store
	clock Clock
	sink  EventSink
	rng   *rand.Rand
	cfg   Config
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock substitutes the time source used to stamp moves.
func WithClock(clock Clock) Option {
	return func(e *Engine) {
		if clock != nil {
			e.clock = clock
		}
	}
}

// WithRand substitutes the dice and turn-order RNG.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithSink substitutes the event sink.
func WithSink(sink EventSink) Option {
	return func(e *Engine) {
		if sink != nil {
			e.sink = sink
		}
	}
}

// WithConfig substitutes the rule knobs.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// New creates an engine over the given store.
func New(store *Store, options ...Option) *Engine {
	e := &Engine{
		store: store,
		clock: SystemClock(),
		sink:  NopSink{},
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		cfg:   DefaultConfig(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Roll is the outcome of one dice throw. A pair releases every jailed piece
// of the roller in the same atomic step; Released holds those records.
type Roll struct {
	Die1     int
	Die2     int
	Sum      int
	IsPair   bool
	Released []game.MoveRecord
}

// withGame runs fn with exclusive ownership of the game's state.
func (e *Engine) withGame(gameID string, fn func(gs *game.GameState) error) error {
	sess, err := e.store.get(gameID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.state)
}

// CreateGame registers a new game in the waiting phase and returns its id.
func (e *Engine) CreateGame() string {
	id := uuid.NewString()
	e.store.put(game.NewGameState(id, e.clock.Now()))
	log.Info().Str("game", id).Msg("game created")
	return id
}

// AddPlayer seats a player. Fails once the game has started, when the color
// is in use, or when four seats are taken. All four pieces start jailed.
func (e *Engine) AddPlayer(gameID, name string, color game.Color, isAI bool, level string) (game.Player, error) {
	var seated game.Player
	err := e.withGame(gameID, func(gs *game.GameState) error {
		if gs.Status != game.Waiting {
			return ErrWrongState
		}
		if len(gs.Players) >= game.MaxPlayers {
			return ErrGameFull
		}
		if gs.PlayerByColor(color) != nil {
			return ErrColorTaken
		}

		seated = game.NewPlayer(uuid.NewString(), name, color)
		seated.IsAI = isAI
		seated.Level = level
		gs.Players = append(gs.Players, seated)

		log.Info().Str("game", gameID).Str("player", seated.ID).
			Str("color", string(color)).Bool("ai", isAI).Msg("player joined")
		return nil
	})
	return seated, err
}

// RemovePlayer unseats a player. A waiting game simply loses the seat; an
// active game dropping below two players is cancelled.
func (e *Engine) RemovePlayer(gameID, playerID string) error {
	return e.withGame(gameID, func(gs *game.GameState) error {
		idx := -1
		for i := range gs.Players {
			if gs.Players[i].ID == playerID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrPlayerNotFound
		}

		for i := range gs.Players[idx].Pieces {
			piece := &gs.Players[idx].Pieces[i]
			if game.IsTrack(piece.Position) {
				gs.RemovePieceFromTrack(piece.Position, piece.ID)
			}
		}
		gs.Players = append(gs.Players[:idx], gs.Players[idx+1:]...)
		if idx < gs.Current {
			gs.Current--
		}
		if gs.Current >= len(gs.Players) {
			gs.Current = 0
		}

		if gs.Status == game.Active && len(gs.Players) < game.MinPlayers {
			gs.Status = game.Cancelled
			gs.FinishedAt = e.clock.Now()
			log.Info().Str("game", gameID).Msg("game cancelled, not enough players")
		}
		return nil
	})
}

// StartGame activates a waiting game with at least two seats, shuffling the
// players into a uniformly random turn order.
func (e *Engine) StartGame(gameID string) error {
	return e.withGame(gameID, func(gs *game.GameState) error {
		if gs.Status != game.Waiting {
			return ErrWrongState
		}
		if len(gs.Players) < game.MinPlayers {
			return ErrNotEnoughPlayers
		}

		e.rng.Shuffle(len(gs.Players), func(i, j int) {
			gs.Players[i], gs.Players[j] = gs.Players[j], gs.Players[i]
		})
		gs.Current = 0
		gs.Status = game.Active
		gs.StartedAt = e.clock.Now()

		log.Info().Str("game", gameID).
			Str("first", gs.Players[0].ID).Msg("game started")
		return nil
	})
}

// RollDice throws both dice for the current player and stores the result on
// the state. Rolling a pair releases every jailed piece of the roller to the
// color's start cell in one atomic step, each release logged as a move with
// dice value 0.
func (e *Engine) RollDice(gameID, playerID string) (Roll, error) {
	var roll Roll
	err := e.withGame(gameID, func(gs *game.GameState) error {
		if gs.Status != game.Active {
			return ErrWrongState
		}
		current := gs.CurrentPlayer()
		if current == nil || current.ID != playerID {
			return ErrNotYourTurn
		}

		gs.Die1 = e.rng.Intn(game.DiceMax) + 1
		gs.Die2 = e.rng.Intn(game.DiceMax) + 1
		gs.IsPair = gs.Die1 == gs.Die2

		roll = Roll{
			Die1:   gs.Die1,
			Die2:   gs.Die2,
			Sum:    gs.Die1 + gs.Die2,
			IsPair: gs.IsPair,
		}

		if gs.IsPair && current.JailedCount() > 0 {
			roll.Released = gs.ReleaseJailed(playerID, e.clock.Now())
			for _, record := range roll.Released {
				e.sink.RecordMove(gameID, record)
			}
			log.Debug().Str("game", gameID).Str("player", playerID).
				Int("released", len(roll.Released)).Msg("pair released jail")
		}
		return nil
	})
	return roll, err
}

// ValidMoves lists the player's legal moves for one die value. An empty list
// is not an error; the caller passes the turn.
func (e *Engine) ValidMoves(gameID, playerID string, dice int) ([]game.Move, error) {
	var moves []game.Move
	err := e.withGame(gameID, func(gs *game.GameState) error {
		if gs.Status != game.Active {
			return ErrWrongState
		}
		if gs.Player(playerID) == nil {
			return ErrPlayerNotFound
		}
		moves = gs.LegalMoves(playerID, dice)
		return nil
	})
	return moves, err
}

// MakeMove validates that the request is exactly one of the currently legal
// moves and executes it: board mutation, capture, scoring, victory check and
// history. The turn advances only when this was the last move of a non-pair
// roll; a pair always grants the same player another throw.
func (e *Engine) MakeMove(gameID, playerID, pieceID string, to, dice int, isLast bool) (game.MoveRecord, error) {
	var record game.MoveRecord
	err := e.withGame(gameID, func(gs *game.GameState) error {
		if gs.Status != game.Active {
			return ErrWrongState
		}
		current := gs.CurrentPlayer()
		if current == nil || current.ID != playerID {
			return ErrNotYourTurn
		}
		if gs.Piece(playerID, pieceID) == nil {
			return ErrPieceNotFound
		}

		var chosen *game.Move
		for _, move := range gs.LegalMoves(playerID, dice) {
			if move.PieceID == pieceID && move.To == to {
				chosen = &move
				break
			}
		}
		if chosen == nil {
			return ErrIllegalMove
		}

		record = gs.ApplyMove(*chosen, e.clock.Now())
		e.sink.RecordMove(gameID, record)

		if gs.Status == game.Finished {
			e.sink.RecordResult(gameID, gs.WinnerID)
			return nil
		}
		if isLast && !gs.IsPair {
			e.advanceTurn(gs)
		}
		return nil
	})
	return record, err
}

// PassTurn is used when a die yields no legal move. A player passing while
// fully jailed accumulates a strike; reaching the limit resets the counter,
// and the count reached is returned so the caller can decide on any bonus.
func (e *Engine) PassTurn(gameID, playerID string) (int, error) {
	strikes := 0
	err := e.withGame(gameID, func(gs *game.GameState) error {
		if gs.Status != game.Active {
			return ErrWrongState
		}
		current := gs.CurrentPlayer()
		if current == nil || current.ID != playerID {
			return ErrNotYourTurn
		}

		if current.JailedCount() == game.PiecesPerPlayer {
			current.JailStrikes++
			strikes = current.JailStrikes
			if current.JailStrikes >= e.cfg.JailStrikeLimit {
				current.JailStrikes = 0
			}
		} else {
			current.JailStrikes = 0
		}

		e.advanceTurn(gs)
		return nil
	})
	return strikes, err
}

// advanceTurn moves to the next player slot and enforces the stall ceiling:
// a hard cap on turn advances that force-finishes the game with no winner.
func (e *Engine) advanceTurn(gs *game.GameState) {
	gs.AdvanceTurn()
	if e.cfg.MaxTurns > 0 && gs.Turns >= e.cfg.MaxTurns {
		gs.Status = game.Finished
		gs.FinishedAt = e.clock.Now()
		log.Info().Str("game", gs.ID).Int("turns", gs.Turns).
			Msg("game force-finished at turn ceiling")
	}
}

// CloseGame drops a finished or cancelled game from the store. Games still
// waiting or active are refused; cancel them first via RemovePlayer or let
// them run out.
func (e *Engine) CloseGame(gameID string) error {
	err := e.withGame(gameID, func(gs *game.GameState) error {
		if gs.Status != game.Finished && gs.Status != game.Cancelled {
			return ErrWrongState
		}
		return nil
	})
	if err != nil {
		return err
	}
	e.store.Delete(gameID)
	log.Info().Str("game", gameID).Msg("game closed")
	return nil
}

// Snapshot returns an independent copy of the game state, safe to hand to a
// search strategy or serialize for a client.
func (e *Engine) Snapshot(gameID string) (*game.GameState, error) {
	var snapshot *game.GameState
	err := e.withGame(gameID, func(gs *game.GameState) error {
		snapshot = gs.Clone()
		return nil
	})
	return snapshot, err
}

// PlayerSummary is the per-seat slice of a Summary.
type PlayerSummary struct {
	ID      string
	Name    string
	Color   game.Color
	Score   int
	Jailed  int
	OnBoard int
	InLane  int
	Crowned int
	IsAI    bool
}

// Summary is a compact view of a game for lobby listings and clients.
type Summary struct {
	ID              string
	Status          game.Status
	Players         []PlayerSummary
	CurrentPlayerID string
	Die1            int
	Die2            int
	IsPair          bool
	WinnerID        string
	Turns           int
	CreatedAt       time.Time
	StartedAt       time.Time
	FinishedAt      time.Time
}

// GetSummary reports the game's current standing.
func (e *Engine) GetSummary(gameID string) (Summary, error) {
	var summary Summary
	err := e.withGame(gameID, func(gs *game.GameState) error {
		summary = Summary{
			ID:         gs.ID,
			Status:     gs.Status,
			Die1:       gs.Die1,
			Die2:       gs.Die2,
			IsPair:     gs.IsPair,
			WinnerID:   gs.WinnerID,
			Turns:      gs.Turns,
			CreatedAt:  gs.CreatedAt,
			StartedAt:  gs.StartedAt,
			FinishedAt: gs.FinishedAt,
		}
		if current := gs.CurrentPlayer(); current != nil {
			summary.CurrentPlayerID = current.ID
		}
		for i := range gs.Players {
			player := &gs.Players[i]
			ps := PlayerSummary{
				ID:      player.ID,
				Name:    player.Name,
				Color:   player.Color,
				Score:   player.Score,
				Jailed:  player.JailedCount(),
				Crowned: player.CrownedCount(),
				IsAI:    player.IsAI,
			}
			for j := range player.Pieces {
				pos := player.Pieces[j].Position
				switch {
				case game.IsTrack(pos):
					ps.OnBoard++
				case game.IsLane(pos) && pos != game.Crowned:
					ps.InLane++
				}
			}
			summary.Players = append(summary.Players, ps)
		}
		return nil
	})
	return summary, err
}
