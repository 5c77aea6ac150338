package action

import (
	"fmt"

	"github.com/qzchen/quantumchess/pkg/board"
)

// applyMerge implements MergeMoveAction: two srcs holding the same
// superposed piece, one empty tgt. The probabilities at both sources combine
// into a single placement at the target.
func (e *Engine) applyMerge(b *board.Board, s1, s2, tgt board.Square) string {
	mover := b.FindPiece(s1)

	p1 := mover.ProbabilityAt(s1)
	p2 := mover.ProbabilityAt(s2)
	mover.Remove(s1, p1)
	mover.Remove(s2, p2)
	mover.Add(tgt, p1+p2)

	return fmt.Sprintf("%v%v^%v-%v", mover.Kind.Letter(), s1, s2, tgt)
}
