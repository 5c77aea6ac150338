package search

import (
	"context"
	"math/rand"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/eval"
)

// Greedy evaluates every legal action one ply deep and picks the best for the
// side to move (max for White, min for Black), breaking ties uniformly at
// random.
type Greedy struct {
	Eval eval.Evaluator
	Rand *rand.Rand
}

func (a Greedy) Run(ctx context.Context, e *action.Engine, b *board.Board) (string, error) {
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
		values[i] = a.Eval.Evaluate(fork)
	}

	chosen := chooseAmongExtremal(actions, values, turn, a.Rand)
	return e.Apply(b, chosen)
}
