package engine

import (
	"sync"

	"parques/game"
)

// session pairs a game with the mutex that serializes its mutations. One
// in-flight mutation at a time per game is all the locking the model needs.
type session struct {
	mu    sync.Mutex
	state *game.GameState
}

// Store is an explicit in-memory registry of games. It is passed to the
// engine rather than living as a package-level singleton, so tests and
// shards can run independent instances.
type Store struct {
	mu    sync.RWMutex
	games map[string]*session
}

// NewStore returns an empty registry.
func NewStore() *Store {
	return &Store{games: make(map[string]*session)}
}

func (s *Store) put(gs *game.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[gs.ID] = &session{state: gs}
}

func (s *Store) get(id string) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return sess, nil
}

// Delete removes a game from the registry.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, id)
}

// Len returns the number of registered games.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
