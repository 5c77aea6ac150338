package eval

import "github.com/qzchen/quantumchess/pkg/board"

// positionTable holds white's 8x8 positional correction by [row-1][col-1]
// (row 1 = rank nearest White, matching board.Square). Black's correction at
// the mirrored square is subtracted rather than added (see ValueTable.Evaluate).
type positionTable [8][8]Score

var pawnTable = positionTable{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 5, 5, 5, 5, 5, 5, 5},
	{1, 1, 2, 3, 3, 2, 1, 1},
	{0.5, 0.5, 1, 2.5, 2.5, 1, 0.5, 0.5},
	{0, 0, 0, 2, 2, 0, 0, 0},
	{0.5, -0.5, -1, 0, 0, -1, -0.5, 0.5},
	{0.5, 1, 1, -2, -2, 1, 1, 0.5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = positionTable{
	{-5, -4, -3, -3, -3, -3, -4, -5},
	{-4, -2, 0, 0, 0, 0, -2, -4},
	{-3, 0, 1, 1.5, 1.5, 1, 0, -3},
	{-3, 0.5, 1.5, 2, 2, 1.5, 0.5, -3},
	{-3, 0, 1.5, 2, 2, 1.5, 0, -3},
	{-3, 0.5, 1, 1.5, 1.5, 1, 0.5, -3},
	{-4, -2, 0, 0.5, 0.5, 0, -2, -4},
	{-5, -4, -3, -3, -3, -3, -4, -5},
}

var bishopTable = positionTable{
	{-2, -1, -1, -1, -1, -1, -1, -2},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0.5, 1, 1, 0.5, 0, -1},
	{-1, 0.5, 0.5, 1, 1, 0.5, 0.5, -1},
	{-1, 0, 1, 1, 1, 1, 0, -1},
	{-1, 1, 1, 1, 1, 1, 1, -1},
	{-1, 0.5, 0, 0, 0, 0, 0.5, -1},
	{-2, -1, -1, -1, -1, -1, -1, -2},
}

var rookTable = positionTable{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{0.5, 1, 1, 1, 1, 1, 1, 0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{-0.5, 0, 0, 0, 0, 0, 0, -0.5},
	{0, 0, 0, 0.5, 0.5, 0, 0, 0},
}

var queenTable = positionTable{
	{-2, -1, -1, -0.5, -0.5, -1, -1, -2},
	{-1, 0, 0, 0, 0, 0, 0, -1},
	{-1, 0, 0.5, 0.5, 0.5, 0.5, 0, -1},
	{-0.5, 0, 0.5, 0.5, 0.5, 0.5, 0, -0.5},
	{0, 0, 0.5, 0.5, 0.5, 0.5, 0, -0.5},
	{-1, 0.5, 0.5, 0.5, 0.5, 0.5, 0, -1},
	{-1, 0, 0.5, 0, 0, 0, 0, -1},
	{-2, -1, -1, -0.5, -0.5, -1, -1, -2},
}

var kingTable = positionTable{
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-3, -4, -4, -5, -5, -4, -4, -3},
	{-2, -3, -3, -4, -4, -3, -3, -2},
	{-1, -2, -2, -2, -2, -2, -2, -1},
	{2, 2, 0, 0, 0, 0, 2, 2},
	{2, 3, 1, 0, 0, 1, 3, 2},
}

func tableFor(k board.PieceKind) positionTable {
	switch k {
	case board.Pawn:
		return pawnTable
	case board.Knight:
		return knightTable
	case board.Bishop:
		return bishopTable
	case board.Rook:
		return rookTable
	case board.Queen:
		return queenTable
	case board.King:
		return kingTable
	default:
		return positionTable{}
	}
}

// ValueTable adds a positional correction to RelativeStrength's material
// sum. White reads the table at its own square (row 1 at the bottom); Black
// reads the same table mirrored top-to-bottom and the correction is
// subtracted rather than added.
type ValueTable struct{}

func (ValueTable) Evaluate(b *board.Board) Score {
	var total Score
	for _, o := range occupants(b) {
		table := tableFor(o.Kind)
		v := baseValue(o.Kind)
		if o.Color == board.White {
			total += (v + table[o.at.Row-1][o.at.Col-1]) * Score(o.Probability)
		} else {
			mirroredRow := 9 - o.at.Row
			total += (-v - table[mirroredRow-1][o.at.Col-1]) * Score(o.Probability)
		}
	}
	return total
}
