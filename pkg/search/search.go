// Package search implements the search agents: algorithms that select
// one legal action per turn, ranging from uniform-random to depth-limited
// adversarial search.
package search

import (
	"context"
	"math/rand"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/eval"
	"github.com/qzchen/quantumchess/pkg/qerr"
	"github.com/qzchen/quantumchess/pkg/rule"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

// Agent selects and applies one action to the board in place, returning the
// record string the action engine produced. Agents are not iterative
// deepening searches against a clock; each call picks one move and returns.
type Agent interface {
	Run(ctx context.Context, e *action.Engine, b *board.Board) (string, error)
}

// ByName resolves a search agent by its configuration name. Every agent that
// evaluates positions is built with QuantumValueTable.
func ByName(name string, depth, beamWidth int, rnd *rand.Rand) (Agent, bool) {
	switch name {
	case "random":
		return Random{Rand: rnd}, true
	case "greedy":
		return Greedy{Eval: eval.QuantumValueTable{}, Rand: rnd}, true
	case "minimax":
		return Minimax{Eval: eval.QuantumValueTable{}, Depth: depth, Rand: rnd}, true
	case "alphabeta":
		return AlphaBeta{Eval: eval.QuantumValueTable{}, Depth: depth, Rand: rnd}, true
	case "beam":
		return Beam{Eval: eval.QuantumValueTable{}, Depth: depth, Width: beamWidth, Rand: rnd}, true
	default:
		return nil, false
	}
}

// Names lists the registered agent names, in the same order ByName
// recognizes them.
func Names() []string {
	return []string{"random", "greedy", "minimax", "alphabeta", "beam"}
}

// legalActions is a small wrapper so every agent enumerates actions the same
// way the action engine's own legality check does.
func legalActions(b *board.Board) []board.Action {
	return rule.Actions(b, b.Turn())
}

// errNoActions reports a position with no legal actions for the side to move
// (stalemate, a loss for that side in this variant). An agent cannot select
// anything; the caller decides what the dead end means.
func errNoActions(turn board.Color) error {
	return qerr.IllegalAction("no legal actions for %v", turn)
}

// checkCancelled honors an external deadline wrapping the whole Run call.
// Checked once at entry rather than per recursive node: a search tree here
// is a handful of plies over a few dozen actions, not a clock-driven
// iterative deepening stream.
func checkCancelled(ctx context.Context) error {
	if contextx.IsCancelled(ctx) {
		return ctx.Err()
	}
	return nil
}

// chooseAmongExtremal picks uniformly at random among the actions whose
// value is within epsilon of the extremum (max for White, min for Black).
func chooseAmongExtremal(actions []board.Action, values []eval.Score, turn board.Color, rnd *rand.Rand) board.Action {
	extremum := values[0]
	for _, v := range values[1:] {
		if (turn == board.White && v > extremum) || (turn == board.Black && v < extremum) {
			extremum = v
		}
	}

	var tied []board.Action
	for i, v := range values {
		if scoreClose(v, extremum) {
			tied = append(tied, actions[i])
		}
	}
	return tied[rnd.Intn(len(tied))]
}

const tieEpsilon = 1e-6

func scoreClose(a, b eval.Score) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < tieEpsilon
}
