package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/ur-fault/checkengine/engine"
	"github.com/ur-fault/checkengine/experiments/metrics"
	"github.com/ur-fault/checkengine/game"
	"github.com/ur-fault/checkengine/meta"
	"github.com/ur-fault/checkengine/searcher"
	"github.com/ur-fault/checkengine/searcher/agent"
)

const (
	NumGames = 10 // Per match up
	MaxTurns = meta.MaxTurns
)

const (
	Minimax = "minimax"
	Random  = "random"
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: Random, Seed: 1},
	{ID: 2, Kind: Minimax, Depth: 2},
	{ID: 3, Kind: Minimax, Depth: 3},
	{ID: 4, Kind: Minimax, Depth: 4},
}

// RunDepthExperiment pairs agents of increasing depth against a depth 1
// baseline and stores the records under root.
func RunDepthExperiment(root string, rating game.RateConfig) error {
	baseline := metrics.AgentConfig{ID: 0, Kind: Minimax, Depth: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment(root, "depth", rating, append(depthConfigs, baseline), matchUps, NumGames)
}

func runExperiment(root, name string, rating game.RateConfig, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int) error {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchup[0], matchup[1])

		for i := 0; i < numGames; i++ {
			// Alternate the starting agent
			white, black := matchup[0], matchup[1]
			if i%2 == 1 {
				white, black = black, white
			}

			winner, gameMetric, moveMetrics, err := runGame(rating, white, black)
			if err != nil {
				return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.BaseDir())

	return nil
}

// runGame plays a single game from the starting position
func runGame(rating game.RateConfig, white, black metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	b, err := game.NewBoard(meta.StartingRows, rating)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	e := engine.LocalEngine(b, createAgent(white), createAgent(black), engine.WithMaxTurns(MaxTurns))
	return e.Run()
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	switch config.Kind {
	case Random:
		return agent.NewRandomAgent(config.Seed)
	case Minimax:
		return agent.NewEvaluationAgent(searcher.NewMinimax(
			searcher.WithMaxDepth(config.Depth),
			searcher.WithMetrics(),
		))
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
