package action

import (
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/rule"
)

// applyCastling implements CastlingAction: sources=rook-square,
// targets=king-square. Rook and king swap to their castled squares with
// probabilities preserved.
func (e *Engine) applyCastling(b *board.Board, rookFrom, kingFrom board.Square) string {
	turn := b.Turn()
	rookTo, kingTo := rule.CastledSquares(rookFrom, turn)

	r := b.FindPiece(rookFrom, board.Rook)
	k := b.FindPiece(kingFrom, board.King)

	rp := r.ProbabilityAt(rookFrom)
	r.Remove(rookFrom, rp)
	r.Add(rookTo, rp)

	kp := k.ProbabilityAt(kingFrom)
	k.Remove(kingFrom, kp)
	k.Add(kingTo, kp)

	if rookFrom.Col == 1 {
		return "0-0-0"
	}
	return "0-0"
}
