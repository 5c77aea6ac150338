// Package rule contains the per-piece-kind move-rule engine and the
// special-move combiner that derives split/merge actions from basic moves.
package rule

import "github.com/qzchen/quantumchess/pkg/board"

// Rule generates the destination squares reachable by one move of a piece of
// the given color standing on from, given the board's current occupancy.
type Rule interface {
	Next(b *board.Board, c board.Color, from board.Square) []board.Square
}

// ByKind is the move rule table, indexed by piece kind and compiled once at
// package init.
var ByKind = map[board.PieceKind]Rule{
	board.Pawn:   PawnRule{},
	board.Knight: KnightRule{},
	board.Bishop: BishopRule{},
	board.Rook:   RookRule{},
	board.Queen:  QueenRule{},
	board.King:   KingRule{},
}

// Classify returns the occupancy state of sq as seen by color c: UNOCCUPIED
// if empty or held at probability <1 (superposed: sliders may pass through),
// REACHABLE if held at probability 1 by the opponent, UNREACHABLE if held at
// probability 1 by a friendly piece.
func Classify(b *board.Board, c board.Color, sq board.Square) board.SquareState {
	for _, occ := range b.At(sq) {
		if occ.Probability >= 1-board.ProbabilityEpsilon {
			if occ.Color == c {
				return board.Unreachable
			}
			return board.Reachable
		}
	}
	return board.Unoccupied
}

// walkRay advances one square at a time along (dcol, drow), stopping at the
// first obstacle. UNOCCUPIED squares are always included and the ray
// continues; a REACHABLE square is included and the ray stops; an
// UNREACHABLE square is excluded and the ray stops.
func walkRay(b *board.Board, c board.Color, from board.Square, dcol, drow int) []board.Square {
	var out []board.Square
	cur := from
	for {
		cur = board.NewSquare(cur.Col+dcol, cur.Row+drow)
		if !cur.IsValid() {
			break
		}
		switch Classify(b, c, cur) {
		case board.Unoccupied:
			out = append(out, cur)
			continue
		case board.Reachable:
			out = append(out, cur)
		}
		break
	}
	return out
}

// step evaluates a single non-sliding offset, including it unless UNREACHABLE.
func step(b *board.Board, c board.Color, from board.Square, dcol, drow int) (board.Square, bool) {
	cand := board.NewSquare(from.Col+dcol, from.Row+drow)
	if !cand.IsValid() {
		return board.Square{}, false
	}
	if Classify(b, c, cand) == board.Unreachable {
		return board.Square{}, false
	}
	return cand, true
}

// ObstacleProbability walks the straight or diagonal path from s to t
// (exclusive of both endpoints) and returns the probability of the first
// piece found there. Returns 0 if the path is not a rank/file/diagonal
// (e.g. a knight jump) or if no placement is found along it.
func ObstacleProbability(b *board.Board, s, t board.Square) float64 {
	dcol := sign(t.Col - s.Col)
	drow := sign(t.Row - s.Row)
	if dcol == 0 && drow == 0 {
		return 0
	}
	if !(dcol == 0 || drow == 0 || abs(t.Col-s.Col) == abs(t.Row-s.Row)) {
		return 0
	}

	cur := s
	for {
		cur = board.NewSquare(cur.Col+dcol, cur.Row+drow)
		if cur == t || !cur.IsValid() {
			return 0
		}
		for _, occ := range b.At(cur) {
			if occ.Probability > 0 {
				return occ.Probability
			}
		}
	}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
