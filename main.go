package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"parques/agent"
	"parques/engine"
	"parques/game"
	"parques/searcher"
)

type seat struct {
	name  string
	color game.Color
	level searcher.Level
}

func main() {
	numGames := flag.Int("games", 1, "Number of games to play")
	levelA := flag.String("a", "medium", "Difficulty of the red and yellow seats")
	levelB := flag.String("b", "medium", "Difficulty of the blue and green seats")
	debug := flag.Bool("debug", false, "Verbose move logging")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	seats := []seat{
		{name: "Alpha", color: game.Red, level: searcher.Level(*levelA)},
		{name: "Bravo", color: game.Blue, level: searcher.Level(*levelB)},
		{name: "Gamma", color: game.Yellow, level: searcher.Level(*levelA)},
		{name: "Delta", color: game.Green, level: searcher.Level(*levelB)},
	}

	fmt.Printf("Running %d game(s), %s vs %s...\n", *numGames, *levelA, *levelB)
	for i := 0; i < *numGames; i++ {
		fmt.Printf("Game %d started...\n", i+1)
		winner, err := runGame(seats)
		if err != nil {
			log.Fatal().Err(err).Msg("game aborted")
		}
		if winner == "" {
			winner = "nobody (turn ceiling)"
		}
		fmt.Printf("Game %d over! Winner: %s\n", i+1, winner)
	}
}

// runGame plays one full four-bot game and returns the winner's name.
func runGame(seats []seat) (string, error) {
	e := engine.New(engine.NewStore(),
		engine.WithConfig(engine.LoadConfig()),
		engine.WithSink(engine.LogSink{}))

	gameID := e.CreateGame()
	names := make(map[string]string)
	for _, s := range seats {
		p, err := e.AddPlayer(gameID, s.name, s.color, true, string(s.level))
		if err != nil {
			return "", err
		}
		names[p.ID] = s.name
	}
	if err := e.StartGame(gameID); err != nil {
		return "", err
	}

	runner, err := agent.NewRunner(e, gameID)
	if err != nil {
		return "", err
	}
	winnerID, err := runner.Run(context.Background())
	if err != nil {
		return "", err
	}
	if err := e.CloseGame(gameID); err != nil {
		return "", err
	}
	return names[winnerID], nil
}
