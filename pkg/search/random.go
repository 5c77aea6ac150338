package search

import (
	"context"
	"math/rand"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
)

// Random selects a uniformly random legal action.
type Random struct {
	Rand *rand.Rand
}

func (a Random) Run(ctx context.Context, e *action.Engine, b *board.Board) (string, error) {
	if err := checkCancelled(ctx); err != nil {
		return "", err
	}

	actions := legalActions(b)
	if len(actions) == 0 {
		return "", errNoActions(b.Turn())
	}
	chosen := actions[a.Rand.Intn(len(actions))]
	return e.Apply(b, chosen)
}
