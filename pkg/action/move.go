package action

import (
	"fmt"

	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/rule"
)

// applyMove implements MoveAction: single src, single tgt, target empty. A
// pawn reaching the promoting rank is resolved by measurement first.
func (e *Engine) applyMove(b *board.Board, src, tgt board.Square) string {
	mover := b.FindPiece(src)

	if mover.Kind == board.Pawn && tgt.Row == rule.PromotingRow(mover.Color) {
		measured, ok := mover.Measure(e.Rand)
		if ok && measured == src {
			mover.Collapse(tgt)
			mover.Kind = board.Queen
			return fmt.Sprintf("%v-Q", tgt)
		}
		// Measured elsewhere (or died): the pawn was not really there to
		// promote. It stays where the measurement collapsed it and nothing
		// moves; the record is still the promotion record.
		return fmt.Sprintf("%v-Q", tgt)
	}

	genericMove(b, mover, src, tgt)
	return fmt.Sprintf("%v%v-%v", mover.Kind.Letter(), src, tgt)
}
