package board

import "strings"

// Action is a candidate or applied move: a tuple of source squares and a
// tuple of target squares. Three shapes are valid: normal (1,1), split (1,2),
// and merge (2,1).
type Action struct {
	Sources []Square
	Targets []Square
}

// NewMove builds a normal 1-source/1-target action.
func NewMove(from, to Square) Action {
	return Action{Sources: []Square{from}, Targets: []Square{to}}
}

// NewSplit builds a 1-source/2-target split action.
func NewSplit(from, to1, to2 Square) Action {
	return Action{Sources: []Square{from}, Targets: []Square{to1, to2}}
}

// NewMerge builds a 2-source/1-target merge action.
func NewMerge(from1, from2, to Square) Action {
	return Action{Sources: []Square{from1, from2}, Targets: []Square{to}}
}

// IsMove reports whether the action is a plain 1-to-1 action (its most
// specific meaning -- move, attack, meet, or castling -- is for the action
// engine to decide).
func (a Action) IsMove() bool {
	return len(a.Sources) == 1 && len(a.Targets) == 1
}

// IsSplit reports whether the action has the split shape.
func (a Action) IsSplit() bool {
	return len(a.Sources) == 1 && len(a.Targets) == 2
}

// IsMerge reports whether the action has the merge shape.
func (a Action) IsMerge() bool {
	return len(a.Sources) == 2 && len(a.Targets) == 1
}

// Equals reports whether two actions describe the same source/target squares
// in the same order.
func (a Action) Equals(o Action) bool {
	if len(a.Sources) != len(o.Sources) || len(a.Targets) != len(o.Targets) {
		return false
	}
	for i := range a.Sources {
		if a.Sources[i] != o.Sources[i] {
			return false
		}
	}
	for i := range a.Targets {
		if a.Targets[i] != o.Targets[i] {
			return false
		}
	}
	return true
}

func (a Action) String() string {
	var srcs, tgts []string
	for _, s := range a.Sources {
		srcs = append(srcs, s.String())
	}
	for _, t := range a.Targets {
		tgts = append(tgts, t.String())
	}
	return "(" + strings.Join(srcs, ",") + ")->(" + strings.Join(tgts, ",") + ")"
}
