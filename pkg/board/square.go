package board

import (
	"fmt"

	"github.com/qzchen/quantumchess/pkg/qerr"
)

// Square represents a square on the board as a (col, row) pair, 1 <= col,row
// <= 8. External string form is "a1".."h8" (col=file letter, row=rank digit).
type Square struct {
	Col, Row int
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s.Col >= 1 && s.Col <= 8 && s.Row >= 1 && s.Row <= 8
}

// NewSquare constructs a square from 1-based column and row.
func NewSquare(col, row int) Square {
	return Square{Col: col, Row: row}
}

// ParseSquare parses a file letter ('a'..'h') and a rank digit ('1'..'8').
func ParseSquare(f, r rune) (Square, error) {
	if f < 'a' || f > 'h' {
		return Square{}, qerr.InvalidCoordinate("file %c", f)
	}
	if r < '1' || r > '8' {
		return Square{}, qerr.InvalidCoordinate("rank %c", r)
	}
	return Square{Col: int(f-'a') + 1, Row: int(r-'1') + 1}, nil
}

// ParseSquareStr parses a two-character square string such as "a1" or "h8".
func ParseSquareStr(str string) (Square, error) {
	runes := []rune(str)
	if len(runes) != 2 {
		return Square{}, qerr.InvalidCoordinate("square %q", str)
	}
	return ParseSquare(runes[0], runes[1])
}

// String renders the square in algebraic form, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "??"
	}
	return fmt.Sprintf("%c%d", rune('a'+s.Col-1), s.Row)
}
