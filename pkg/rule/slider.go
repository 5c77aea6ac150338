package rule

import "github.com/qzchen/quantumchess/pkg/board"

var rookVectors = [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopVectors = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// RookRule implements the rook's four rank/file rays, plus the rook-to-king
// castling hook (see castling.go).
type RookRule struct{}

func (RookRule) Next(b *board.Board, c board.Color, from board.Square) []board.Square {
	var out []board.Square
	for _, v := range rookVectors {
		out = append(out, walkRay(b, c, from, v[0], v[1])...)
	}
	return appendCastlingTarget(out, b, c, from)
}

// BishopRule implements the bishop's four diagonal rays.
type BishopRule struct{}

func (BishopRule) Next(b *board.Board, c board.Color, from board.Square) []board.Square {
	var out []board.Square
	for _, v := range bishopVectors {
		out = append(out, walkRay(b, c, from, v[0], v[1])...)
	}
	return out
}

// QueenRule is the union of the rook and bishop rays.
type QueenRule struct{}

func (QueenRule) Next(b *board.Board, c board.Color, from board.Square) []board.Square {
	var out []board.Square
	for _, v := range rookVectors {
		out = append(out, walkRay(b, c, from, v[0], v[1])...)
	}
	for _, v := range bishopVectors {
		out = append(out, walkRay(b, c, from, v[0], v[1])...)
	}
	return out
}
