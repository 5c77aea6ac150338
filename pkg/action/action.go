// Package action implements the action engine: applying one action to a
// board in place, performing probabilistic measurement, and producing the
// algebraic record string the UI consumes.
package action

import (
	"math/rand"

	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/qerr"
	"github.com/qzchen/quantumchess/pkg/rule"
)

// Engine applies actions to a board. It owns the shared PRNG used by
// measurement, seedable for deterministic tests.
type Engine struct {
	Rand *rand.Rand
}

// NewEngine returns an engine seeded for deterministic measurement/tie-break
// behavior when seed is fixed by the caller (e.g. test harnesses).
func NewEngine(seed int64) *Engine {
	return &Engine{Rand: rand.New(rand.NewSource(seed))}
}

// Apply applies a to b in place: it selects exactly one of Castling, Move,
// Attack, Meet, SplitMove, MergeMove -- in that priority order -- mutates the
// piece list, recomputes the derived square map implicitly (Board.SquareMap
// is always computed on demand), flips side_to_move, and returns the record
// string. Returns ErrNoSuchPiece if a source square holds no piece or merge
// sources name two different pieces, and ErrIllegalAction if a is not
// currently a legal action.
func (e *Engine) Apply(b *board.Board, a board.Action) (string, error) {
	turn := b.Turn()

	for _, src := range a.Sources {
		if b.FindPiece(src) == nil {
			return "", qerr.NoSuchPiece("no piece at %v", src)
		}
	}
	if a.IsMerge() && b.FindPiece(a.Sources[0]) != b.FindPiece(a.Sources[1]) {
		return "", qerr.NoSuchPiece("merge sources %v and %v hold different pieces", a.Sources[0], a.Sources[1])
	}

	if !legal(b, turn, a) {
		return "", qerr.IllegalAction("%v is not a legal action for %v", a, turn)
	}

	var record string
	switch {
	case a.IsSplit():
		record = e.applySplit(b, a.Sources[0], a.Targets[0], a.Targets[1])
	case a.IsMerge():
		record = e.applyMerge(b, a.Sources[0], a.Sources[1], a.Targets[0])
	default:
		src, tgt := a.Sources[0], a.Targets[0]
		switch {
		case rule.IsCastling(b, turn, src, tgt):
			record = e.applyCastling(b, src, tgt)
		case len(b.At(tgt)) == 0:
			record = e.applyMove(b, src, tgt)
		case hasOpponent(b, turn, tgt):
			record = e.applyAttack(b, src, tgt)
		default:
			record = e.applyMeet(b, src, tgt)
		}
	}

	b.SetLastRecord(record)
	b.FlipTurn()
	return record, nil
}

func legal(b *board.Board, turn board.Color, a board.Action) bool {
	for _, candidate := range rule.Actions(b, turn) {
		if candidate.Equals(a) {
			return true
		}
	}
	return false
}

func hasOpponent(b *board.Board, turn board.Color, sq board.Square) bool {
	for _, occ := range b.At(sq) {
		if occ.Color != turn {
			return true
		}
	}
	return false
}

// genericMove implements the non-promotion move-probability mechanics shared
// by plain moves and the post-promotion-check fallback: probability p is
// removed from source; if p < 1 the piece was superposed and the same
// fraction reappears at the target; if p = 1 and the path crosses a
// superposed obstacle with probability q > 0, the piece itself becomes
// superposed, (1-q) at source and q at target; otherwise it moves fully.
func genericMove(b *board.Board, mover *board.Piece, src, tgt board.Square) {
	p := mover.ProbabilityAt(src)
	q := rule.ObstacleProbability(b, src, tgt)

	mover.Remove(src, p)
	switch {
	case p < 1-board.ProbabilityEpsilon:
		mover.Add(tgt, p)
	case q > board.ProbabilityEpsilon:
		mover.Add(src, 1-q)
		mover.Add(tgt, q)
	default:
		mover.Add(tgt, 1)
	}
}
