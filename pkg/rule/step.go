package rule

import "github.com/qzchen/quantumchess/pkg/board"

var knightVectors = [][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingVectors = [][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// KnightRule implements the knight's eight L-moves. Knights never encounter
// path obstacles, since they do not slide.
type KnightRule struct{}

func (KnightRule) Next(b *board.Board, c board.Color, from board.Square) []board.Square {
	var out []board.Square
	for _, v := range knightVectors {
		if sq, ok := step(b, c, from, v[0], v[1]); ok {
			out = append(out, sq)
		}
	}
	return out
}

// KingRule implements the king's eight single-step neighbors. Castling is
// generated from the rook's rule, not the king's (see castling.go).
type KingRule struct{}

func (KingRule) Next(b *board.Board, c board.Color, from board.Square) []board.Square {
	var out []board.Square
	for _, v := range kingVectors {
		if sq, ok := step(b, c, from, v[0], v[1]); ok {
			out = append(out, sq)
		}
	}
	return out
}
