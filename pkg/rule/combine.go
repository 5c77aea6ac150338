package rule

import "github.com/qzchen/quantumchess/pkg/board"

type basicMove struct {
	piece    *board.Piece
	from, to board.Square
}

// Actions returns the full legal action set for the side to move: the basic
// 1-to-1 moves from the move-rule engine, augmented by the split/merge
// actions the combiner derives from them. Enumeration order is stable
// (piece list order, then placement order, then rule order) so agent
// tie-breaking is reproducible.
func Actions(b *board.Board, c board.Color) []board.Action {
	basics := basicMoves(b, c)

	var out []board.Action
	for _, m := range basics {
		out = append(out, board.NewMove(m.from, m.to))
	}
	out = append(out, splitActions(b, basics)...)
	out = append(out, mergeActions(b, basics)...)
	return out
}

func basicMoves(b *board.Board, c board.Color) []basicMove {
	var out []basicMove
	for _, p := range b.Pieces() {
		if !p.Alive() || p.Color != c {
			continue
		}
		r := ByKind[p.Kind]
		for _, pl := range p.Place {
			for _, to := range r.Next(b, c, pl.At) {
				out = append(out, basicMove{piece: p, from: pl.At, to: to})
			}
		}
	}
	return out
}

// splitActions emits (s -> (d1,d2)) for every basic move's source except
// pawns, for every pair of distinct targets reachable from that source where
// each target is empty or occupied by a same-color same-kind piece. The two
// targets are listed in (col, row) order, as merge sources are.
func splitActions(b *board.Board, basics []basicMove) []board.Action {
	type key struct {
		piece *board.Piece
		from  board.Square
	}
	groups := map[key][]board.Square{}
	var order []key
	for _, m := range basics {
		if m.piece.Kind == board.Pawn {
			continue
		}
		k := key{piece: m.piece, from: m.from}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], m.to)
	}

	var out []board.Action
	for _, k := range order {
		dests := groups[k]
		for i := 0; i < len(dests); i++ {
			for j := i + 1; j < len(dests); j++ {
				d1, d2 := dests[i], dests[j]
				if d1 == d2 {
					continue
				}
				if d2.Col < d1.Col || (d2.Col == d1.Col && d2.Row < d1.Row) {
					d1, d2 = d2, d1
				}
				if splitTargetOK(b, k.piece, d1) && splitTargetOK(b, k.piece, d2) {
					out = append(out, board.NewSplit(k.from, d1, d2))
				}
			}
		}
	}
	return out
}

func splitTargetOK(b *board.Board, moving *board.Piece, target board.Square) bool {
	occ := b.At(target)
	if len(occ) == 0 {
		return true
	}
	for _, o := range occ {
		if o.Color != moving.Color || o.Kind != moving.Kind {
			return false
		}
	}
	return true
}

// mergeActions emits ((s1,s2) -> d) for every basic target shared by two
// distinct sources of the same piece identity (the piece is superposed
// across s1 and s2), when d is empty.
func mergeActions(b *board.Board, basics []basicMove) []board.Action {
	byTarget := map[board.Square][]basicMove{}
	var order []board.Square
	for _, m := range basics {
		if _, ok := byTarget[m.to]; !ok {
			order = append(order, m.to)
		}
		byTarget[m.to] = append(byTarget[m.to], m)
	}

	seen := map[[3]board.Square]bool{}
	var out []board.Action
	for _, d := range order {
		if len(b.At(d)) != 0 {
			continue
		}
		entries := byTarget[d]
		for i := 0; i < len(entries); i++ {
			for j := i + 1; j < len(entries); j++ {
				a, c := entries[i], entries[j]
				if a.piece != c.piece || a.from == c.from {
					continue
				}
				s1, s2 := a.from, c.from
				pairKey := [2]board.Square{s1, s2}
				if s2.Col < s1.Col || (s2.Col == s1.Col && s2.Row < s1.Row) {
					pairKey = [2]board.Square{s2, s1}
				}
				seenKey := [3]board.Square{pairKey[0], pairKey[1], d}
				if seen[seenKey] {
					continue
				}
				seen[seenKey] = true
				out = append(out, board.NewMerge(pairKey[0], pairKey[1], d))
			}
		}
	}
	return out
}
