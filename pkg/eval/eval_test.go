package eval_test

import (
	"testing"

	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardBoardIsMaterialBalanced(t *testing.T) {
	// RelativeStrength and ValueTable are symmetric by construction (Black
	// reads White's own values/tables negated at the mirrored square), so a
	// symmetric starting position scores exactly zero for both. QuantumValueTable
	// uses separately tabulated per-color tables (Black's queen table is White's
	// negated but not mirrored), so it is not color-symmetric in general and is
	// excluded here.
	b := board.NewStandardBoard()

	for _, name := range []string{"relative", "table"} {
		e, ok := eval.ByName(name)
		require.True(t, ok)
		assert.InDelta(t, 0, float64(e.Evaluate(b)), 1e-9, "evaluator %q", name)
	}
}

func TestRelativeStrengthWeightsByProbability(t *testing.T) {
	b := board.NewEmptyBoard()
	wk := board.NewPiece(board.White, board.King, board.NewSquare(5, 1))
	bk := board.NewPiece(board.Black, board.King, board.NewSquare(5, 8))
	q := board.NewPiece(board.White, board.Queen, board.NewSquare(4, 1))
	q.Place = []board.Placement{
		{At: board.NewSquare(4, 1), Probability: 0.5},
		{At: board.NewSquare(4, 4), Probability: 0.5},
	}
	b.AddPiece(wk)
	b.AddPiece(bk)
	b.AddPiece(q)

	s := eval.RelativeStrength{}.Evaluate(b)
	assert.InDelta(t, 90, float64(s), 1e-9)
}

func TestQuantumValueTableRewardsSplitOverCollapsedAtSameTotal(t *testing.T) {
	collapsed := board.NewEmptyBoard()
	wk1 := board.NewPiece(board.White, board.King, board.NewSquare(5, 1))
	bk1 := board.NewPiece(board.Black, board.King, board.NewSquare(5, 8))
	n1 := board.NewPiece(board.White, board.Knight, board.NewSquare(4, 4))
	collapsed.AddPiece(wk1)
	collapsed.AddPiece(bk1)
	collapsed.AddPiece(n1)

	split := board.NewEmptyBoard()
	wk2 := board.NewPiece(board.White, board.King, board.NewSquare(5, 1))
	bk2 := board.NewPiece(board.Black, board.King, board.NewSquare(5, 8))
	n2 := board.NewPiece(board.White, board.Knight, board.NewSquare(4, 4))
	n2.Place = []board.Placement{
		{At: board.NewSquare(4, 4), Probability: 0.5},
		{At: board.NewSquare(5, 4), Probability: 0.5},
	}
	split.AddPiece(wk2)
	split.AddPiece(bk2)
	split.AddPiece(n2)

	q := eval.QuantumValueTable{}
	collapsedScore := q.Evaluate(collapsed)
	splitScore := q.Evaluate(split)

	assert.Greater(t, float64(splitScore), float64(collapsedScore))
}
