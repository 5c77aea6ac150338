package board

// PieceKind represents a chess piece kind (King, Pawn, etc), with no color.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Bishop
	Knight
	Rook
	Queen
	King
)

const (
	ZeroKind PieceKind = Pawn
	NumKinds PieceKind = King + 1
)

// ParseKind parses a single letter code, in either case: K, Q, R, B, N, or P for a pawn.
func ParseKind(r rune) (PieceKind, bool) {
	switch r {
	case 'P', 'p':
		return Pawn, true
	case 'B', 'b':
		return Bishop, true
	case 'N', 'n':
		return Knight, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	default:
		return NoKind, false
	}
}

// ParseKindName parses the lowercase name form ("pawn", "king", ...) used by
// the persisted piece list.
func ParseKindName(s string) (PieceKind, bool) {
	for k := ZeroKind; k < NumKinds; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return NoKind, false
}

func (k PieceKind) IsValid() bool {
	return Pawn <= k && k <= King
}

// String returns the lowercase name, the form used in the persisted piece list.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "?"
	}
}

// Letter returns the record-string piece letter: K, Q, R, B, N, or "" for a pawn.
func (k PieceKind) Letter() string {
	switch k {
	case Pawn:
		return ""
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return "?"
	}
}
