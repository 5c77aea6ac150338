package rule

import "github.com/qzchen/quantumchess/pkg/board"

// IsCastlingRook reports whether a piece of color c standing on the given
// corner square, on its home rank, is eligible to castle. The rook's own
// probability is never checked; the squares in between only have to be free
// of probability-1 occupants (see appendCastlingTarget).
func IsCastlingRook(from board.Square, c board.Color) bool {
	rank := homeRankFor(c)
	if from.Row != rank {
		return false
	}
	return from.Col == 1 || from.Col == 8
}

// homeRankFor is the back rank a color's pieces start on, used for the
// castling precondition.
func homeRankFor(c board.Color) int {
	if c == board.White {
		return 1
	}
	return 8
}

// appendCastlingTarget adds the friendly king's square as a REACHABLE
// destination when from is an eligible castling rook source, the king
// currently holds probability 1 there, and the rook's ray reaches it: no
// square in between is held at probability 1 (squares with only superposed
// occupants do not block). Castling is reported even though no sliding rook
// move would otherwise reach an occupied friendly square.
func appendCastlingTarget(out []board.Square, b *board.Board, c board.Color, from board.Square) []board.Square {
	if !IsCastlingRook(from, c) {
		return out
	}
	king := board.NewSquare(5, homeRankFor(c))
	dir := 1
	if from.Col > king.Col {
		dir = -1
	}
	for col := from.Col + dir; col != king.Col; col += dir {
		if Classify(b, c, board.NewSquare(col, king.Row)) != board.Unoccupied {
			return out
		}
	}
	if p := b.FindPiece(king, board.King); p != nil && p.Color == c && p.ProbabilityAt(king) >= 1-board.ProbabilityEpsilon {
		out = append(out, king)
	}
	return out
}

// CastledSquares returns the post-castling squares for the rook and king
// given the rook's source corner: queen-side (corner col 1) castles rook->d,
// king->c; king-side (corner col 8) castles rook->f, king->g, on the rook's
// home rank.
func CastledSquares(from board.Square, c board.Color) (rookTo, kingTo board.Square) {
	rank := homeRankFor(c)
	if from.Col == 1 {
		return board.NewSquare(4, rank), board.NewSquare(3, rank)
	}
	return board.NewSquare(6, rank), board.NewSquare(7, rank)
}

// IsCastling reports whether the 1-to-1 action is a rook-to-king castling
// action shape: source a castling-eligible rook corner, target the friendly
// king's home square at probability 1.
func IsCastling(b *board.Board, c board.Color, from, to board.Square) bool {
	if !IsCastlingRook(from, c) {
		return false
	}
	if to != board.NewSquare(5, homeRankFor(c)) {
		return false
	}
	p := b.FindPiece(to, board.King)
	return p != nil && p.Color == c && p.ProbabilityAt(to) >= 1-board.ProbabilityEpsilon
}
