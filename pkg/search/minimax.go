package search

import (
	"context"
	"math"
	"math/rand"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/eval"
)

// Minimax picks the action that maximizes (White) or minimizes (Black) the
// evaluated score Depth plies ahead, assuming optimal adversarial play.
// No transposition table or quiescence extension: there is no stable hash
// for a superposed board and no notion of a "quiet" position to extend into.
type Minimax struct {
	Eval  eval.Evaluator
	Depth int
	Rand  *rand.Rand
}

func (a Minimax) Run(ctx context.Context, e *action.Engine, b *board.Board) (string, error) {
	if err := checkCancelled(ctx); err != nil {
		return "", err
	}

	turn := b.Turn()
	actions := legalActions(b)
	if len(actions) == 0 {
		return "", errNoActions(turn)
	}

	values := make([]eval.Score, len(actions))
	for i, candidate := range actions {
		fork := b.Fork()
		forkEngine := &action.Engine{Rand: e.Rand}
		if _, err := forkEngine.Apply(fork, candidate); err != nil {
			return "", err
		}
		values[i] = minimaxValue(forkEngine, fork, a.Depth-1, a.Eval)
	}

	chosen := chooseAmongExtremal(actions, values, turn, a.Rand)
	return e.Apply(b, chosen)
}

func minimaxValue(e *action.Engine, b *board.Board, depth int, ev eval.Evaluator) eval.Score {
	actions := legalActions(b)
	if len(actions) == 0 {
		if b.Turn() == board.White {
			return eval.Score(math.Inf(-1))
		}
		return eval.Score(math.Inf(1))
	}
	if depth <= 0 {
		return ev.Evaluate(b)
	}

	turn := b.Turn()
	var best eval.Score
	for i, candidate := range actions {
		fork := b.Fork()
		forkEngine := &action.Engine{Rand: e.Rand}
		if _, err := forkEngine.Apply(fork, candidate); err != nil {
			continue
		}
		v := minimaxValue(forkEngine, fork, depth-1, ev)
		if i == 0 {
			best = v
			continue
		}
		if (turn == board.White && v > best) || (turn == board.Black && v < best) {
			best = v
		}
	}
	return best
}
