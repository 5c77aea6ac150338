package search

import (
	"context"
	"math/rand"
	"sort"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/eval"
)

// Beam keeps only the Width best-scoring children at each cut (instead of
// every position, as Minimax does), alternating whose preference ("best" = highest
// for White, lowest for Black) governs the cut. At ply 1 the whole child set
// is trimmed to the Width best for the side to move; each further ply expands
// every surviving leaf and trims its children to the Width best per parent.
// The surviving lineages form a prefix tree keyed on the first-ply action,
// and a minimax pass over that tree selects the root action.
type Beam struct {
	Eval  eval.Evaluator
	Depth int
	Width int
	Rand  *rand.Rand
}

type beamNode struct {
	act      board.Action
	board    *board.Board
	score    eval.Score
	children []*beamNode
}

func (a Beam) Run(ctx context.Context, e *action.Engine, b *board.Board) (string, error) {
	if err := checkCancelled(ctx); err != nil {
		return "", err
	}

	turn := b.Turn()
	actions := legalActions(b)
	if len(actions) == 0 {
		return "", errNoActions(turn)
	}

	roots := a.expand(e, b, actions)
	roots = trimBeam(roots, turn, a.Width)

	frontier := roots
	mover := turn
	for ply := 1; ply < a.Depth; ply++ {
		mover = mover.Opponent()

		var next []*beamNode
		for _, parent := range frontier {
			children := legalActions(parent.board)
			if len(children) == 0 {
				continue
			}
			parent.children = trimBeam(a.expand(e, parent.board, children), mover, a.Width)
			next = append(next, parent.children...)
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}

	rootActions := make([]board.Action, len(roots))
	values := make([]eval.Score, len(roots))
	for i, n := range roots {
		rootActions[i] = n.act
		values[i] = beamValue(n)
	}

	chosen := chooseAmongExtremal(rootActions, values, turn, a.Rand)
	return e.Apply(b, chosen)
}

// expand applies every candidate to a fork of b and statically scores the result.
func (a Beam) expand(e *action.Engine, b *board.Board, candidates []board.Action) []*beamNode {
	var out []*beamNode
	for _, candidate := range candidates {
		fork := b.Fork()
		forkEngine := &action.Engine{Rand: e.Rand}
		if _, err := forkEngine.Apply(fork, candidate); err != nil {
			continue
		}
		out = append(out, &beamNode{act: candidate, board: fork, score: a.Eval.Evaluate(fork)})
	}
	return out
}

// beamValue runs minimax over the pruned prefix tree: a leaf is its static
// score; an interior node takes the extremum of its children for the side to
// move in its position.
func beamValue(n *beamNode) eval.Score {
	if len(n.children) == 0 {
		return n.score
	}

	turn := n.board.Turn()
	best := beamValue(n.children[0])
	for _, c := range n.children[1:] {
		v := beamValue(c)
		if (turn == board.White && v > best) || (turn == board.Black && v < best) {
			best = v
		}
	}
	return best
}

// trimBeam keeps the width best nodes for the given side: top scores for
// White, bottom for Black.
func trimBeam(nodes []*beamNode, turn board.Color, width int) []*beamNode {
	sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].score < nodes[j].score })
	if width <= 0 || width > len(nodes) {
		width = len(nodes)
	}
	if turn == board.White {
		return nodes[len(nodes)-width:]
	}
	return nodes[:width]
}
