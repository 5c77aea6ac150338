package search

import (
	"context"
	"math"
	"math/rand"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/eval"
)

// AlphaBeta is Minimax with alpha-beta pruning. The max and min recursions
// are kept separate rather than negamax-unified, matching the
// white-maximizes/black-minimizes framing used throughout the evaluators.
type AlphaBeta struct {
	Eval  eval.Evaluator
	Depth int
	Rand  *rand.Rand
}

func (a AlphaBeta) Run(ctx context.Context, e *action.Engine, b *board.Board) (string, error) {
	if err := checkCancelled(ctx); err != nil {
		return "", err
	}

	turn := b.Turn()
	actions := legalActions(b)
	if len(actions) == 0 {
		return "", errNoActions(turn)
	}

	neg, pos := eval.Score(math.Inf(-1)), eval.Score(math.Inf(1))
	values := make([]eval.Score, len(actions))
	alpha, beta := neg, pos
	for i, candidate := range actions {
		fork := b.Fork()
		forkEngine := &action.Engine{Rand: e.Rand}
		if _, err := forkEngine.Apply(fork, candidate); err != nil {
			return "", err
		}

		var v eval.Score
		if turn == board.White {
			v = minValue(forkEngine, fork, a.Depth-1, alpha, beta, a.Eval)
			if v > alpha {
				alpha = v
			}
		} else {
			v = maxValue(forkEngine, fork, a.Depth-1, alpha, beta, a.Eval)
			if v < beta {
				beta = v
			}
		}
		values[i] = v
	}

	chosen := chooseAmongExtremal(actions, values, turn, a.Rand)
	return e.Apply(b, chosen)
}

func maxValue(e *action.Engine, b *board.Board, depth int, alpha, beta eval.Score, ev eval.Evaluator) eval.Score {
	actions := legalActions(b)
	if len(actions) == 0 {
		return eval.Score(math.Inf(-1))
	}
	if depth <= 0 {
		return ev.Evaluate(b)
	}

	val := eval.Score(math.Inf(-1))
	for _, candidate := range actions {
		fork := b.Fork()
		forkEngine := &action.Engine{Rand: e.Rand}
		if _, err := forkEngine.Apply(fork, candidate); err != nil {
			continue
		}
		v := minValue(forkEngine, fork, depth-1, alpha, beta, ev)
		if v > val {
			val = v
		}
		if val >= beta {
			break
		}
		if val > alpha {
			alpha = val
		}
	}
	return val
}

func minValue(e *action.Engine, b *board.Board, depth int, alpha, beta eval.Score, ev eval.Evaluator) eval.Score {
	actions := legalActions(b)
	if len(actions) == 0 {
		return eval.Score(math.Inf(1))
	}
	if depth <= 0 {
		return ev.Evaluate(b)
	}

	val := eval.Score(math.Inf(1))
	for _, candidate := range actions {
		fork := b.Fork()
		forkEngine := &action.Engine{Rand: e.Rand}
		if _, err := forkEngine.Apply(fork, candidate); err != nil {
			continue
		}
		v := maxValue(forkEngine, fork, depth-1, alpha, beta, ev)
		if v < val {
			val = v
		}
		if val <= alpha {
			break
		}
		if val < beta {
			beta = val
		}
	}
	return val
}
