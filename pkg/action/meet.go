package action

import (
	"fmt"

	"github.com/qzchen/quantumchess/pkg/board"
)

// applyMeet implements MeetAction: single src, single tgt, target holds a
// friendly piece, not castling. Same-kind pieces swap squares without
// measurement, each carrying its own mass; different-kind pieces resolve via
// measuring the defender (and, if the attacker is itself superposed, the
// attacker too).
func (e *Engine) applyMeet(b *board.Board, src, tgt board.Square) string {
	attacker := b.FindPiece(src)
	defender := b.FindOtherPiece(tgt, attacker)
	record := fmt.Sprintf("%v%v-%v", attacker.Kind.Letter(), src, tgt)

	if defender.Kind == attacker.Kind {
		pa := attacker.ProbabilityAt(src)
		pd := defender.ProbabilityAt(tgt)
		attacker.Remove(src, pa)
		attacker.Add(tgt, pa)
		defender.Remove(tgt, pd)
		defender.Add(src, pd)
		return record
	}

	measured, ok := defender.Measure(e.Rand)
	defenderThere := ok && measured == tgt
	if defenderThere {
		return record
	}

	if !attacker.Superposed() {
		attacker.Collapse(tgt)
		return record
	}

	atkMeasured, atkOk := attacker.Measure(e.Rand)
	if atkOk && atkMeasured == src {
		attacker.Collapse(tgt)
	}
	return record
}
