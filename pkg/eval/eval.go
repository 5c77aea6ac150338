// Package eval implements static position evaluation: scoring a board
// from White's perspective, positive favoring White.
package eval

import "github.com/qzchen/quantumchess/pkg/board"

// Score is a position's evaluated value. Positive favors White, negative
// favors Black, regardless of whose turn it is -- callers that need a
// turn-relative score multiply by board.Color.Unit().
type Score float64

// Evaluator is a static position evaluator. Evaluate takes no
// context.Context: summing a fixed piece list has no cancellation point
// worth plumbing through.
type Evaluator interface {
	Evaluate(b *board.Board) Score
}

// ByName resolves an evaluator by its configuration name.
func ByName(name string) (Evaluator, bool) {
	switch name {
	case "relative":
		return RelativeStrength{}, true
	case "table":
		return ValueTable{}, true
	case "quantum":
		return QuantumValueTable{}, true
	default:
		return nil, false
	}
}

// Names lists the registered evaluator names, in the same order ByName
// recognizes them.
func Names() []string {
	return []string{"relative", "table", "quantum"}
}

// baseValue is the nominal, color-agnostic strength of a piece kind.
func baseValue(k board.PieceKind) Score {
	switch k {
	case board.Pawn:
		return 10
	case board.Bishop, board.Knight:
		return 30
	case board.Rook:
		return 50
	case board.Queen:
		return 90
	case board.King:
		return 900
	default:
		return 0
	}
}

// occupant is one piece's presence at a square, flattened out of the board's
// derived square map for evaluation.
type occupant struct {
	board.SquareOccupant
	at board.Square
}

func occupants(b *board.Board) []occupant {
	var out []occupant
	for sq, occs := range b.SquareMap() {
		for _, o := range occs {
			out = append(out, occupant{SquareOccupant: o, at: sq})
		}
	}
	return out
}

// RelativeStrength sums nominal piece values weighted by placement
// probability, with no positional or quantum correction.
type RelativeStrength struct{}

func (RelativeStrength) Evaluate(b *board.Board) Score {
	var total Score
	for _, o := range occupants(b) {
		v := baseValue(o.Kind) * Score(o.Probability)
		if o.Color == board.Black {
			v = -v
		}
		total += v
	}
	return total
}
