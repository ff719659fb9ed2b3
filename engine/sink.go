package engine

import (
	"github.com/rs/zerolog/log"

	"parques/game"
)

// EventSink receives committed moves and results for replay into whatever
// persistence the caller runs. Calls are fire-and-forget from the engine's
// perspective; implementations must not block the game.
type EventSink interface {
	RecordMove(gameID string, record game.MoveRecord)
	RecordResult(gameID, winnerID string)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) RecordMove(string, game.MoveRecord) {}

func (NopSink) RecordResult(string, string) {}

// LogSink journals every event through the global logger. Useful as a
// default sink and for debugging game flow.
type LogSink struct{}

func (LogSink) RecordMove(gameID string, record game.MoveRecord) {
	log.Debug().
		Str("game", gameID).
		Str("player", record.PlayerID).
		Str("piece", record.PieceID).
		Str("type", string(record.Type)).
		Int("from", record.From).
		Int("to", record.To).
		Msg("move committed")
}

func (LogSink) RecordResult(gameID, winnerID string) {
	log.Info().Str("game", gameID).Str("winner", winnerID).Msg("game finished")
}
