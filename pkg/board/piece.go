package board

import "math/rand"

// Placement is one (square, probability) component of a piece's distribution.
type Placement struct {
	At          Square
	Probability float64
}

// ProbabilityEpsilon is the tolerance used for every probability comparison
// in the engine; probabilities are floating point and must never be compared
// for exact equality.
const ProbabilityEpsilon = 1e-6

const measureEpsilon = ProbabilityEpsilon

// ProbabilityEqual reports whether probabilities should be considered equal.
// Probabilities are never compared exactly.
func ProbabilityEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < measureEpsilon
}

// Piece is the only entity with quantum semantics: a color+kind identity with
// a non-empty list of placements. A piece with no placements is dead.
type Piece struct {
	Color Color
	Kind  PieceKind
	Place []Placement
}

// NewPiece creates a piece with a single placement at probability 1.
func NewPiece(c Color, k PieceKind, at Square) *Piece {
	return &Piece{Color: c, Kind: k, Place: []Placement{{At: at, Probability: 1}}}
}

// Alive reports whether the piece has any remaining placement.
func (p *Piece) Alive() bool {
	return len(p.Place) > 0
}

// Superposed reports whether the piece has more than one placement, or a
// single placement with probability strictly less than one.
func (p *Piece) Superposed() bool {
	if len(p.Place) > 1 {
		return true
	}
	if len(p.Place) == 1 {
		return p.Place[0].Probability < 1-measureEpsilon
	}
	return false
}

// ProbabilityAt returns the probability mass the piece holds at sq (zero if none).
func (p *Piece) ProbabilityAt(sq Square) float64 {
	for _, pl := range p.Place {
		if pl.At == sq {
			return pl.Probability
		}
	}
	return 0
}

// Add adds probability mass at sq, merging into an existing placement there if present.
func (p *Piece) Add(sq Square, prob float64) {
	for i := range p.Place {
		if p.Place[i].At == sq {
			p.Place[i].Probability += prob
			return
		}
	}
	p.Place = append(p.Place, Placement{At: sq, Probability: prob})
}

// Remove strips prob probability mass from the placement at sq, dropping the
// placement entirely (and thus killing the piece if it was the last one) once
// its probability falls below the measurement epsilon.
func (p *Piece) Remove(sq Square, prob float64) {
	for i := range p.Place {
		if p.Place[i].At != sq {
			continue
		}
		p.Place[i].Probability -= prob
		if p.Place[i].Probability < measureEpsilon {
			p.Place = append(p.Place[:i], p.Place[i+1:]...)
		}
		return
	}
}

// Clear removes every placement, killing the piece.
func (p *Piece) Clear() {
	p.Place = nil
}

// Collapse replaces every placement with a single one at sq, probability 1.
func (p *Piece) Collapse(sq Square) {
	p.Place = []Placement{{At: sq, Probability: 1}}
}

// Measure collapses a superposed piece to exactly one placement, drawn by
// weighted sampling over its current distribution: draw r uniformly in
// [0,1), iterate placements in random order subtracting each probability
// from r, and take the first placement where r drops below epsilon. If the
// accumulated probability falls short (e.g. after a capture stripped mass
// elsewhere), the piece dies and ok is false.
func (p *Piece) Measure(rnd *rand.Rand) (sq Square, ok bool) {
	if len(p.Place) == 1 && p.Place[0].Probability >= 1-measureEpsilon {
		return p.Place[0].At, true
	}

	order := make([]int, len(p.Place))
	for i := range order {
		order[i] = i
	}
	rnd.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	r := rnd.Float64()
	for _, idx := range order {
		r -= p.Place[idx].Probability
		if r < measureEpsilon {
			p.Collapse(p.Place[idx].At)
			return p.Place[0].At, true
		}
	}

	p.Clear()
	return Square{}, false
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	place := make([]Placement, len(p.Place))
	copy(place, p.Place)
	return &Piece{Color: p.Color, Kind: p.Kind, Place: place}
}
