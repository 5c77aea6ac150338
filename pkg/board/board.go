package board

import "fmt"

// SquareState is the occupancy classification of a square as seen by a move
// rule walking a ray or single step from some source.
type SquareState uint8

const (
	Unoccupied SquareState = iota
	Reachable
	Unreachable
)

// Board represents a quantum chess board: the piece list, whose turn it is,
// and the human-readable record of the last applied action. Mutated
// exclusively by the action engine. Not thread-safe; callers needing
// concurrent access (the controller, search agents) clone with Fork first.
type Board struct {
	pieces     []*Piece
	turn       Color
	lastRecord string
}

// NewEmptyBoard returns a board with no pieces, White to move.
func NewEmptyBoard() *Board {
	return &Board{turn: White}
}

// NewBoard returns a board initialized with the given pieces, White to move.
func NewBoard(pieces []*Piece) *Board {
	return &Board{pieces: pieces, turn: White}
}

// NewStandardBoard returns a board set up with the standard 32-piece starting array.
func NewStandardBoard() *Board {
	return NewBoard(standardArray())
}

func standardArray() []*Piece {
	back := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var pieces []*Piece
	for col := 1; col <= 8; col++ {
		pieces = append(pieces, NewPiece(White, back[col-1], NewSquare(col, 1)))
		pieces = append(pieces, NewPiece(White, Pawn, NewSquare(col, 2)))
		pieces = append(pieces, NewPiece(Black, Pawn, NewSquare(col, 7)))
		pieces = append(pieces, NewPiece(Black, back[col-1], NewSquare(col, 8)))
	}
	return pieces
}

// Pieces returns the live piece list (includes dead pieces with empty Place;
// callers that need only alive pieces should check Alive()).
func (b *Board) Pieces() []*Piece {
	return b.pieces
}

// AddPiece appends a new piece to the board.
func (b *Board) AddPiece(p *Piece) {
	b.pieces = append(b.pieces, p)
}

func (b *Board) Turn() Color {
	return b.turn
}

func (b *Board) SetTurn(c Color) {
	b.turn = c
}

// FlipTurn alternates the side to move. Called once per applied action,
// regardless of which action rule fired.
func (b *Board) FlipTurn() {
	b.turn = b.turn.Opponent()
}

func (b *Board) LastRecord() string {
	return b.lastRecord
}

func (b *Board) SetLastRecord(r string) {
	b.lastRecord = r
}

// Fork returns a deep copy of the board, safe to mutate independently. Search
// agents clone on every hypothetical branch; the controller clones before
// every live move to maintain the undo stack.
func (b *Board) Fork() *Board {
	pieces := make([]*Piece, len(b.pieces))
	for i, p := range b.pieces {
		pieces[i] = p.Clone()
	}
	return &Board{pieces: pieces, turn: b.turn, lastRecord: b.lastRecord}
}

// SquareMap is the derived map from square to (color, kind, probability). It
// does not carry piece identity; mutating rules must go through Pieces.
type SquareMap map[Square][]SquareOccupant

// SquareOccupant is one piece's presence at a square in the derived map.
type SquareOccupant struct {
	Color       Color
	Kind        PieceKind
	Probability float64
}

// SquareMap computes the derived square -> occupants map on demand.
func (b *Board) SquareMap() SquareMap {
	m := SquareMap{}
	for _, p := range b.pieces {
		if !p.Alive() {
			continue
		}
		for _, pl := range p.Place {
			m[pl.At] = append(m[pl.At], SquareOccupant{Color: p.Color, Kind: p.Kind, Probability: pl.Probability})
		}
	}
	return m
}

// At returns the occupants of a single square (usually zero or one; more than
// one only through split/merge superposition sharing).
func (b *Board) At(sq Square) []SquareOccupant {
	var ret []SquareOccupant
	for _, p := range b.pieces {
		if !p.Alive() {
			continue
		}
		if prob := p.ProbabilityAt(sq); prob > 0 {
			ret = append(ret, SquareOccupant{Color: p.Color, Kind: p.Kind, Probability: prob})
		}
	}
	return ret
}

// FindPiece returns the first alive piece, of either color, holding
// probability mass at sq, with kind restricted to kinds if non-empty.
func (b *Board) FindPiece(sq Square, kinds ...PieceKind) *Piece {
	for _, p := range b.pieces {
		if !p.Alive() {
			continue
		}
		if p.ProbabilityAt(sq) <= 0 {
			continue
		}
		if len(kinds) == 0 {
			return p
		}
		for _, k := range kinds {
			if p.Kind == k {
				return p
			}
		}
	}
	return nil
}

// FindOtherPiece returns an alive piece other than exclude holding probability
// mass at sq, if any. Used by the split action to find a target's occupant.
func (b *Board) FindOtherPiece(sq Square, exclude *Piece) *Piece {
	for _, p := range b.pieces {
		if p == exclude || !p.Alive() {
			continue
		}
		if p.ProbabilityAt(sq) > 0 {
			return p
		}
	}
	return nil
}

// King returns the color's king piece, dead or alive, or nil if the piece
// list holds none.
func (b *Board) King(c Color) *Piece {
	for _, p := range b.pieces {
		if p.Color == c && p.Kind == King {
			return p
		}
	}
	return nil
}

// Winner reports the game outcome. NoWinner while both kings retain at least
// one placement, the opposing color once a king dies, and Draw if both kings
// are gone (possible via a shared capture path collapsing simultaneously).
func (b *Board) Winner() Winner {
	white := b.King(White)
	black := b.King(Black)

	whiteAlive := white != nil && white.Alive()
	blackAlive := black != nil && black.Alive()

	switch {
	case whiteAlive && blackAlive:
		return NoWinner
	case whiteAlive:
		return WhiteWins
	case blackAlive:
		return BlackWins
	default:
		return Draw
	}
}

func (b *Board) String() string {
	return fmt.Sprintf("board{turn=%v, pieces=%d, last=%q}", b.turn, len(b.pieces), b.lastRecord)
}
