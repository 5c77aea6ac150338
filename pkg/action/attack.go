package action

import (
	"fmt"

	"github.com/qzchen/quantumchess/pkg/board"
)

// applyAttack implements AttackAction: single src, single tgt, target holds
// an opposing piece (the defender). The defender is measured first. If its
// measurement does not land on the target, it wasn't really there: the
// square is effectively vacant and the attacker completes a normal move into
// it. Otherwise the defender dies and the attacker collapses fully onto the
// target.
func (e *Engine) applyAttack(b *board.Board, src, tgt board.Square) string {
	attacker := b.FindPiece(src)
	record := fmt.Sprintf("%v%vx%v", attacker.Kind.Letter(), src, tgt)

	defender := b.FindPiece(tgt)
	measured, ok := defender.Measure(e.Rand)
	if !ok || measured != tgt {
		genericMove(b, attacker, src, tgt)
		return record
	}

	defender.Clear()
	attacker.Collapse(tgt)
	return record
}
