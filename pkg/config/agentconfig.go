package config

// agentConfiguration holds the per-color agent assignment and each
// depth-limited agent's search depth.
type agentConfiguration struct {
	WhiteAgent string
	BlackAgent string

	// Evaluator is an evaluator name ("relative", "table", or "quantum").
	// search.ByName does not read it: its evaluating agents always use the
	// quantum table.
	Evaluator string

	MinimaxDepth   int
	AlphaBetaDepth int
	BeamDepth      int
	BeamWidth      int

	// Seed is a PRNG seed setting. The quantumchess command does not read it;
	// it seeds the controller from its -seed flag instead.
	Seed int64
}

func init() {
	Settings.Agent.WhiteAgent = "greedy"
	Settings.Agent.BlackAgent = "greedy"
	Settings.Agent.Evaluator = "quantum"

	Settings.Agent.MinimaxDepth = 1
	Settings.Agent.AlphaBetaDepth = 2
	Settings.Agent.BeamDepth = 4
	Settings.Agent.BeamWidth = 3
}
