package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"flagfall/agent"
	"flagfall/engine"
	"flagfall/experiments/metrics"
	"flagfall/game"
	"flagfall/searcher"
)

const (
	NumGames = 30 // Per match up
	MaxTurns = 300
)

var searchConfigs = []metrics.AgentConfig{
	{ID: 1, Name: "mcts", Duration: 250 * time.Millisecond, Samples: 1},
	{ID: 2, Name: "mcts", Duration: 250 * time.Millisecond, Samples: 3},
	{ID: 3, Name: "mcts", Duration: 250 * time.Millisecond, Samples: 5},
	{ID: 4, Name: "mcts", Duration: 1 * time.Second, Samples: 3},
}

// RunStrengthExperiment pits each search configuration against the basic
// heuristic baseline and records win rates.
func RunStrengthExperiment(seed uint64) {
	baseline := metrics.AgentConfig{ID: 0, Name: "basic"}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range searchConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{config, baseline})
	}

	runExperiment("strength", append(searchConfigs, baseline), matchUps, seed)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, seed uint64) {
	count := 0
	gameRecords := []metrics.GameRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...",
			mi+1, len(matchUps), config1, config2)

		for i := 0; i < NumGames; i++ {
			result := runGame(config1, config2, seed+uint64(count))
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				Winner:     result.Winner.String(),
				StartTime:  result.StartTime,
				EndTime:    result.EndTime,
				TotalMoves: result.TotalMoves,
			})

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %s",
				mi+1, len(matchUps), i+1, NumGames, result.Winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		panic(fmt.Sprintf("failed to store game records: %v", err))
	}
	log.Info().Msg("stored agent configs and game records")
}

// runGame executes a single game, config1 as Red and config2 as Blue.
func runGame(config1, config2 metrics.AgentConfig, seed uint64) engine.Result {
	rng := rand.New(rand.NewSource(seed))

	board := game.NewBoard()
	if err := board.Setup(rng, nil); err != nil {
		panic(fmt.Sprintf("failed to set up board: %v", err))
	}

	red := createAgent(config1, seed)
	blue := createAgent(config2, seed+1)
	return engine.NewLocal(board, red, blue, MaxTurns).Run(context.Background())
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	if config.Name == "basic" {
		return agent.NewBasic(rand.New(rand.NewSource(seed)))
	}
	return agent.NewSearch(
		searcher.WithDuration(config.Duration),
		searcher.WithSamples(config.Samples),
		searcher.WithSeed(seed),
	)
}
