package action

import (
	"fmt"

	"github.com/qzchen/quantumchess/pkg/board"
)

// applySplit implements SplitMoveAction: single src, two distinct tgts, both
// empty or occupied only by friendly pieces of the same kind (enforced by
// rule.Actions before this is ever reachable). The mover's probability at src
// is halved into each target. If a target already holds a friendly same-kind
// piece, that piece's probability there is displaced back onto src; each
// target is resolved independently.
func (e *Engine) applySplit(b *board.Board, src, t1, t2 board.Square) string {
	mover := b.FindPiece(src)
	p := mover.ProbabilityAt(src)
	half := p / 2

	mover.Remove(src, p)
	for _, tgt := range []board.Square{t1, t2} {
		if occ := b.FindOtherPiece(tgt, mover); occ != nil {
			op := occ.ProbabilityAt(tgt)
			occ.Remove(tgt, op)
			occ.Add(src, op)
		}
		mover.Add(tgt, half)
	}

	return fmt.Sprintf("%v%v-%v^%v", mover.Kind.Letter(), src, t1, t2)
}
