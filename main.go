package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ur-fault/checkengine/engine"
	"github.com/ur-fault/checkengine/experiments"
	"github.com/ur-fault/checkengine/game"
	"github.com/ur-fault/checkengine/meta"
	"github.com/ur-fault/checkengine/searcher"
	"github.com/ur-fault/checkengine/searcher/agent"
)

func main() {
	configPath := flag.String("config", "", "YAML file with evaluation weights")
	rows := flag.Int("rows", meta.StartingRows, "Rows of pawns per player")
	depth := flag.Int("depth", -1, "Search depth in full turns (overrides the config)")
	turns := flag.Int("turns", meta.MaxTurns, "Maximum number of full turns")
	experiment := flag.Bool("experiment", false, "Run the depth experiment instead of a single game")
	out := flag.String("out", "results", "Directory for experiment records")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rating := game.DefaultRateConfig()
	if *configPath != "" {
		var err error
		rating, err = game.LoadRateConfig(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}
	if *depth >= 0 {
		rating.MaxDepth = *depth
	}

	if *experiment {
		err := experiments.RunDepthExperiment(*out, rating)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	b, err := game.NewBoard(*rows, rating)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up board")
	}
	fmt.Println(b)

	minimax := searcher.NewMinimax()
	e := engine.LocalEngine(b, agent.NewEvaluationAgent(minimax), agent.NewEvaluationAgent(minimax),
		engine.WithMaxTurns(*turns),
		engine.WithObserver(func(b *game.Board, move game.Move) {
			fmt.Printf("%s played %s\n", move.Color, move)
			fmt.Println(b)
		}),
	)

	winner, _, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
	if winner == "" {
		fmt.Println("Draw")
		return
	}
	fmt.Printf("Player %s won!\n", winner)
}
