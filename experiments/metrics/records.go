package metrics

import "time"

// AgentConfig describes one opponent configuration under test.
type AgentConfig struct {
	ID       int
	Name     string        // agent.Agent.Name()
	Duration time.Duration // per-sample search budget, zero for non-search agents
	Samples  int           // determinizations, zero for non-search agents
}

// GameRecord is one finished game between two configured agents.
type GameRecord struct {
	ID         int
	Agent1     int // AgentConfig.ID, plays Red
	Agent2     int // AgentConfig.ID, plays Blue
	Winner     string
	StartTime  time.Time
	EndTime    time.Time
	TotalMoves int
}
