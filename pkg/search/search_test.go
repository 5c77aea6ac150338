package search_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/eval"
	"github.com/qzchen/quantumchess/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomAgentProducesLegalMove(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(1)
	a := search.Random{Rand: rand.New(rand.NewSource(2))}

	record, err := a.Run(context.Background(), e, b)
	require.NoError(t, err)
	assert.NotEmpty(t, record)
	assert.Equal(t, board.Black, b.Turn())
}

func TestGreedyAgentPrefersCapture(t *testing.T) {
	b := board.NewEmptyBoard()
	b.AddPiece(board.NewPiece(board.White, board.King, board.NewSquare(1, 1)))
	b.AddPiece(board.NewPiece(board.Black, board.King, board.NewSquare(8, 8)))
	b.AddPiece(board.NewPiece(board.White, board.Rook, board.NewSquare(1, 5)))
	b.AddPiece(board.NewPiece(board.Black, board.Pawn, board.NewSquare(8, 5)))

	e := action.NewEngine(3)
	a := search.Greedy{Eval: eval.RelativeStrength{}, Rand: rand.New(rand.NewSource(3))}

	_, err := a.Run(context.Background(), e, b)
	require.NoError(t, err)

	rook := b.FindPiece(board.NewSquare(8, 5), board.Rook)
	assert.NotNil(t, rook)
}

func TestMinimaxAgentPicksLegalMove(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(4)
	a := search.Minimax{Eval: eval.RelativeStrength{}, Depth: 1, Rand: rand.New(rand.NewSource(4))}

	record, err := a.Run(context.Background(), e, b)
	require.NoError(t, err)
	assert.NotEmpty(t, record)
}

func TestAlphaBetaAgentPicksLegalMove(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(5)
	a := search.AlphaBeta{Eval: eval.RelativeStrength{}, Depth: 2, Rand: rand.New(rand.NewSource(5))}

	record, err := a.Run(context.Background(), e, b)
	require.NoError(t, err)
	assert.NotEmpty(t, record)
}

func TestBeamAgentPicksLegalMove(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(6)
	a := search.Beam{Eval: eval.RelativeStrength{}, Depth: 2, Width: 3, Rand: rand.New(rand.NewSource(6))}

	record, err := a.Run(context.Background(), e, b)
	require.NoError(t, err)
	assert.NotEmpty(t, record)
}

func TestRunRejectsCancelledContext(t *testing.T) {
	b := board.NewStandardBoard()
	e := action.NewEngine(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := search.Random{Rand: rand.New(rand.NewSource(2))}
	_, err := a.Run(ctx, e, b)
	assert.Error(t, err)
	assert.Equal(t, board.White, b.Turn(), "a cancelled run must not mutate the board")
}

func TestByNameRegistry(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, name := range search.Names() {
		a, ok := search.ByName(name, 2, 3, rnd)
		assert.True(t, ok, name)
		assert.NotNil(t, a, name)
	}
	_, ok := search.ByName("nonexistent", 1, 1, rnd)
	assert.False(t, ok)
}
