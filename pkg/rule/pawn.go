package rule

import "github.com/qzchen/quantumchess/pkg/board"

// PawnRule implements the pawn's four candidate vectors per color: forward
// one, forward two (home row only), and the two diagonal captures. There is
// no en passant in this variant (diagonal-to-adjacent is the only capture
// vector).
type PawnRule struct{}

func (PawnRule) Next(b *board.Board, c board.Color, from board.Square) []board.Square {
	dir := 1
	homeRow := 2
	if c == board.Black {
		dir = -1
		homeRow = 7
	}

	var out []board.Square

	one := board.NewSquare(from.Col, from.Row+dir)
	if one.IsValid() && Classify(b, c, one) == board.Unoccupied {
		out = append(out, one)

		if from.Row == homeRow {
			two := board.NewSquare(from.Col, from.Row+2*dir)
			if two.IsValid() && Classify(b, c, two) == board.Unoccupied {
				out = append(out, two)
			}
		}
	}

	for _, dcol := range []int{-1, 1} {
		diag := board.NewSquare(from.Col+dcol, from.Row+dir)
		if diag.IsValid() && Classify(b, c, diag) == board.Reachable {
			out = append(out, diag)
		}
	}

	return out
}

// PromotingRow returns the rank a pawn of color c promotes on.
func PromotingRow(c board.Color) int {
	if c == board.White {
		return 8
	}
	return 1
}
