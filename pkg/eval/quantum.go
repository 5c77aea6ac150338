package eval

import "github.com/qzchen/quantumchess/pkg/board"

// splitBonus holds, per kind, the probability threshold a placement must
// exceed to earn the superposition reward, and the scale applied to its
// remaining uncertainty (1-p). A qualifying placement's effective
// probability is boosted by (1-p)*scale, favoring retained split states.
type splitBonus struct {
	threshold, scale float64
}

var splitBonusByKind = map[board.PieceKind]splitBonus{
	board.King:   {0.1, 0.03},
	board.Queen:  {0.2, 0.02},
	board.Rook:   {0.3, 0.04},
	board.Bishop: {0.3, 0.03},
	board.Knight: {0.3, 0.05},
	board.Pawn:   {0, 0},
}

var whiteKingTable = positionTable{
	{197, 196, 196, 195, 195, 196, 196, 197},
	{197, 196, 196, 195, 195, 196, 196, 197},
	{197, 196, 196, 195, 195, 196, 196, 197},
	{197, 196, 196, 195, 195, 196, 196, 197},
	{198, 197, 197, 196, 196, 197, 197, 198},
	{199, 198, 198, 198, 198, 198, 198, 199},
	{202, 202, 200, 200, 200, 200, 202, 202},
	{202, 203, 201, 200, 200, 201, 203, 202},
}

var whiteQueenTable = positionTable{
	{88, 89, 89, 89.5, 89.5, 89, 89, 88},
	{89, 90, 90, 90, 90, 90, 90, 89},
	{89, 90, 90.5, 90.5, 90.5, 90.5, 90, 89},
	{89.5, 90, 90.5, 90.5, 90.5, 90.5, 90, 89.5},
	{90, 90, 90.5, 90.5, 90.5, 90.5, 90, 89.5},
	{89, 90.5, 90.5, 90.5, 90.5, 90.5, 90, 89},
	{89, 90, 90.5, 90, 90, 90, 90, 89},
	{88, 89, 89, 89.5, 89.5, 89, 89, 88},
}

var whiteRookTable = positionTable{
	{50, 50, 50, 50, 50, 50, 50, 50},
	{50.5, 51, 51, 51, 51, 51, 51, 50.5},
	{49.5, 50, 50, 50, 50, 50, 50, 49.5},
	{49.5, 50, 50, 50, 50, 50, 50, 49.5},
	{49.5, 50, 50, 50, 50, 50, 50, 49.5},
	{49.5, 50, 50, 50, 50, 50, 50, 49.5},
	{49.5, 50, 50, 50, 50, 50, 50, 49.5},
	{50, 50, 50, 50.5, 50.5, 50, 50, 50},
}

var whiteBishopTable = positionTable{
	{28, 29, 29, 29, 29, 29, 29, 28},
	{29, 30, 30, 30, 30, 30, 30, 29},
	{29, 30, 30.5, 31, 31, 30.5, 30, 29},
	{29, 30.5, 30.5, 31, 31, 30.5, 30.5, 29},
	{29, 30, 31, 31, 31, 31, 30, 29},
	{29, 31, 31, 31, 31, 31, 31, 29},
	{29, 30.5, 30, 30, 30, 30, 30.5, 29},
	{28, 29, 29, 29, 29, 29, 29, 28},
}

var whiteKnightTable = positionTable{
	{25, 26, 27, 27, 27, 27, 26, 25},
	{26, 28, 30, 30, 30, 30, 28, 26},
	{27, 30, 31, 31.5, 31.5, 31, 30, 27},
	{27, 30.5, 31.5, 32, 32, 31.5, 30.5, 27},
	{27, 30, 31.5, 32, 32, 31.5, 30, 27},
	{27, 30.5, 31, 31.5, 31.5, 31, 30.5, 27},
	{26, 28, 30, 30.5, 30.5, 30, 28, 26},
	{25, 26, 27, 27, 27, 27, 26, 25},
}

var whitePawnTable = positionTable{
	{10, 10, 10, 10, 10, 10, 10, 10},
	{15, 15, 15, 15, 15, 15, 15, 15},
	{11, 11, 12, 13, 13, 12, 11, 11},
	{15.5, 10.5, 11, 12.5, 12.5, 11, 10.5, 15.5},
	{10, 10, 10, 12, 12, 10, 10, 10},
	{10.5, 9.5, 9, 10, 10, 9, 9.5, 10.5},
	{10.5, 11, 11, 8, 8, 11, 11, 10.5},
	{80, 80, 80, 80, 80, 80, 80, 80},
}

var blackKingTable = positionTable{
	{-202, -203, -201, -200, -200, -201, -203, -202},
	{-202, -202, -200, -200, -200, -200, -202, -202},
	{-199, -198, -198, -198, -198, -198, -198, -199},
	{-198, -197, -197, -196, -196, -197, -197, -198},
	{-197, -196, -196, -195, -195, -196, -196, -197},
	{-197, -196, -196, -195, -195, -196, -196, -197},
	{-197, -196, -196, -195, -195, -196, -196, -197},
	{-197, -196, -196, -195, -195, -196, -196, -197},
}

var blackQueenTable = positionTable{
	{-88, -89, -89, -89.5, -89.5, -89, -89, -88},
	{-89, -90, -90, -90, -90, -90, -90, -89},
	{-89, -90, -90.5, -90.5, -90.5, -90.5, -90, -89},
	{-89.5, -90, -90.5, -90.5, -90.5, -90.5, -90, -89.5},
	{-90, -90, -90.5, -90.5, -90.5, -90.5, -90, -89.5},
	{-89, -90.5, -90.5, -90.5, -90.5, -90.5, -90, -89},
	{-89, -90, -90.5, -90, -90, -90, -90, -89},
	{-88, -89, -89, -89.5, -89.5, -89, -89, -88},
}

var blackRookTable = positionTable{
	{-50, -50, -50, -50.5, -50.5, -50, -50, -50},
	{-49.5, -50, -50, -50, -50, -50, -50, -49.5},
	{-49.5, -50, -50, -50, -50, -50, -50, -49.5},
	{-49.5, -50, -50, -50, -50, -50, -50, -49.5},
	{-49.5, -50, -50, -50, -50, -50, -50, -49.5},
	{-49.5, -50, -50, -50, -50, -50, -50, -49.5},
	{-50.5, -51, -51, -51, -51, -51, -51, -50.5},
	{-50, -50, -50, -50, -50, -50, -50, -50},
}

var blackBishopTable = positionTable{
	{-28, -29, -29, -29, -29, -29, -29, -28},
	{-29, -30.5, -30, -30, -30, -30, -30.5, -29},
	{-29, -31, -31, -31, -31, -31, -31, -29},
	{-29, -30, -31, -31, -31, -31, -30, -29},
	{-29, -30.5, -30.5, -31, -31, -30.5, -30.5, -29},
	{-29, -30, -30.5, -31, -31, -30.5, -30, -29},
	{-29, -30, -30, -30, -30, -30, -30, -29},
	{-28, -29, -29, -29, -29, -29, -29, -28},
}

var blackKnightTable = positionTable{
	{-25, -26, -27, -27, -27, -27, -26, -25},
	{-26, -28, -30, -30, -30, -30, -28, -26},
	{-27, -30, -31, -31.5, -31.5, -31, -30, -27},
	{-27, -30.5, -31.5, -32, -32, -31.5, -30.5, -27},
	{-27, -30, -31.5, -32, -32, -31.5, -30, -27},
	{-27, -30.5, -31, -31.5, -31.5, -31, -30.5, -27},
	{-26, -28, -30, -30.5, -30.5, -30, -28, -26},
	{-25, -26, -27, -27, -27, -27, -26, -25},
}

var blackPawnTable = positionTable{
	{-80, -80, -80, -80, -80, -80, -80, -80},
	{-10.5, -11, -11, -8, -8, -11, -11, -10.5},
	{-10.5, -9.5, -9, -10, -10, -9, -9.5, -10.5},
	{-10, -10, -10, -12, -12, -10, -10, -10},
	{-15.5, -10.5, -11, -12.5, -12.5, -11, -10.5, -15.5},
	{-11, -11, -12, -13, -13, -12, -11, -11},
	{-15, -15, -15, -15, -15, -15, -15, -15},
	{-10, -10, -10, -10, -10, -10, -10, -10},
}

func quantumTableFor(c board.Color, k board.PieceKind) positionTable {
	if c == board.White {
		switch k {
		case board.King:
			return whiteKingTable
		case board.Queen:
			return whiteQueenTable
		case board.Rook:
			return whiteRookTable
		case board.Bishop:
			return whiteBishopTable
		case board.Knight:
			return whiteKnightTable
		case board.Pawn:
			return whitePawnTable
		}
		return positionTable{}
	}
	switch k {
	case board.King:
		return blackKingTable
	case board.Queen:
		return blackQueenTable
	case board.Rook:
		return blackRookTable
	case board.Bishop:
		return blackBishopTable
	case board.Knight:
		return blackKnightTable
	case board.Pawn:
		return blackPawnTable
	}
	return positionTable{}
}

// QuantumValueTable is ValueTable's per-color absolute table (already signed,
// no mirroring needed) plus a reward for maintaining superposition: a
// placement whose probability exceeds its kind's threshold earns back a
// fraction of its remaining uncertainty, favoring keeping pieces split over
// collapsing early.
type QuantumValueTable struct{}

func (QuantumValueTable) Evaluate(b *board.Board) Score {
	var total Score
	for _, o := range occupants(b) {
		bonus := splitBonusByKind[o.Kind]
		p := o.Probability
		if p > bonus.threshold {
			p += (1 - p) * bonus.scale
		}
		table := quantumTableFor(o.Color, o.Kind)
		total += table[o.at.Row-1][o.at.Col-1] * Score(p)
	}
	return total
}
