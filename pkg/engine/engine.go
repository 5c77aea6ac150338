// Package engine implements the game controller: the mutex-guarded
// façade a CLI, a saved-game loader, or an HTTP handler drives a game
// through, wrapping the board/rule/action/eval/search/store packages behind
// one surface.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/qzchen/quantumchess/pkg/action"
	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/qerr"
	"github.com/qzchen/quantumchess/pkg/rule"
	"github.com/qzchen/quantumchess/pkg/search"
	"github.com/qzchen/quantumchess/pkg/store"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 1, 0)

// Options are the default search parameters new agents are constructed with.
type Options struct {
	MinimaxDepth   int
	AlphaBetaDepth int
	BeamDepth      int
	BeamWidth      int
	Seed           int64

	// DepthOverride, if set, replaces every depth-limited agent's configured
	// ply depth uniformly (minimax, alphabeta, and beam alike) regardless of
	// MinimaxDepth/AlphaBetaDepth/BeamDepth above.
	DepthOverride lang.Optional[int]
}

func (o Options) String() string {
	s := fmt.Sprintf("{minimax=%v, alphabeta=%v, beam=%v/%v, seed=%v",
		o.MinimaxDepth, o.AlphaBetaDepth, o.BeamDepth, o.BeamWidth, o.Seed)
	if v, ok := o.DepthOverride.V(); ok {
		s += fmt.Sprintf(", depth-override=%v", v)
	}
	return s + "}"
}

// DefaultOptions returns the stock search parameters.
func DefaultOptions() Options {
	return Options{MinimaxDepth: 1, AlphaBetaDepth: 2, BeamDepth: 4, BeamWidth: 3}
}

// Controller encapsulates one game in progress: the current board, the
// agents assigned to each color, the action engine, an undo stack, and
// persistence. All methods are safe for concurrent use; a single coarse
// mutex serializes every operation.
type Controller struct {
	name   string
	opts   Options
	store  store.Store
	action *action.Engine

	b       *board.Board
	agents  [board.NumColors]search.Agent
	stack   []*board.Board
	records []string

	mu sync.Mutex
}

// Option is a Controller creation option.
type Option func(*Controller)

// WithOptions sets the default search parameters.
func WithOptions(opts Options) Option {
	return func(c *Controller) { c.opts = opts }
}

// WithStore attaches a persistence backend; without it, Save/Load are unavailable.
func WithStore(s store.Store) Option {
	return func(c *Controller) { c.store = s }
}

// New constructs a Controller on the standard starting position, with both
// sides defaulting to the greedy agent.
func New(name string, opts ...Option) *Controller {
	c := &Controller{
		name: name,
		opts: DefaultOptions(),
	}
	for _, fn := range opts {
		fn(c)
	}
	c.action = action.NewEngine(c.opts.Seed)
	c.b = board.NewStandardBoard()

	rnd := rand.New(rand.NewSource(c.opts.Seed))
	greedy, _ := search.ByName("greedy", 0, 0, rnd)
	c.agents[board.White] = greedy
	c.agents[board.Black] = greedy

	return c
}

func (c *Controller) Name() string {
	return fmt.Sprintf("%v %v", c.name, version)
}

// ListAgentNames lists the search agents available for selection.
func (c *Controller) ListAgentNames() []string {
	return search.Names()
}

// SelectAgent assigns the named agent to play the given color.
func (c *Controller) SelectAgent(ctx context.Context, color board.Color, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	rnd := rand.New(rand.NewSource(c.opts.Seed))
	depth := depthFor(c.opts, name)
	a, ok := search.ByName(name, depth, c.opts.BeamWidth, rnd)
	if !ok {
		return qerr.IllegalAction("unknown agent %q", name)
	}

	logw.Infof(ctx, "SelectAgent %v: %v", color, name)
	c.agents[color] = a
	return nil
}

func depthFor(opts Options, name string) int {
	if v, ok := opts.DepthOverride.V(); ok {
		return v
	}
	switch name {
	case "minimax":
		return opts.MinimaxDepth
	case "alphabeta":
		return opts.AlphaBetaDepth
	case "beam":
		return opts.BeamDepth
	default:
		return 0
	}
}

// SetBoardFromPieceList replaces the current board with one built from an
// explicit piece list, White to move.
func (c *Controller) SetBoardFromPieceList(ctx context.Context, pieces []*board.Piece) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logw.Infof(ctx, "SetBoardFromPieceList: %d pieces", len(pieces))
	c.b = board.NewBoard(pieces)
	c.stack = nil
	c.records = nil
}

// SetBoardFromSavedID loads a previously saved board by ID.
func (c *Controller) SetBoardFromSavedID(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return qerr.Persistence("no store configured")
	}
	b, err := c.store.Load(id)
	if err != nil {
		return err
	}

	logw.Infof(ctx, "SetBoardFromSavedID %v: %v", id, b)
	c.b = b
	c.stack = nil
	c.records = nil
	return nil
}

// CurrentActions lists the legal actions for the side to move.
func (c *Controller) CurrentActions() []board.Action {
	c.mu.Lock()
	defer c.mu.Unlock()

	return rule.Actions(c.b, c.b.Turn())
}

// RunStep performs one turn. If a is the zero Action, the turn's assigned
// agent selects the move; otherwise a is applied directly, serving a human
// player's explicit input.
func (c *Controller) RunStep(ctx context.Context, a board.Action) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stack = append(c.stack, c.b.Fork())

	var record string
	var err error
	if a.IsMove() || a.IsSplit() || a.IsMerge() {
		record, err = c.action.Apply(c.b, a)
	} else {
		agent := c.agents[c.b.Turn()]
		if agent == nil {
			err = qerr.IllegalAction("no agent assigned for %v", c.b.Turn())
		} else {
			record, err = agent.Run(ctx, c.action, c.b)
		}
	}
	if err != nil {
		c.stack = c.stack[:len(c.stack)-1]
		return "", err
	}

	logw.Infof(ctx, "RunStep: %v", record)
	c.records = append(c.records, record)
	return record, nil
}

// Undo reverts the most recently applied step.
func (c *Controller) Undo(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.stack) == 0 {
		return qerr.IllegalAction("no step to undo")
	}

	c.b = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if len(c.records) > 0 {
		c.records = c.records[:len(c.records)-1]
	}

	logw.Infof(ctx, "Undo")
	return nil
}

// Save persists the current board under name and returns its ID.
func (c *Controller) Save(ctx context.Context, name string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.store == nil {
		return 0, qerr.Persistence("no store configured")
	}
	id, err := c.store.Save(name, c.b)
	if err != nil {
		return 0, err
	}

	logw.Infof(ctx, "Save %v: id=%v", name, id)
	return id, nil
}

// EndGame resets the controller to a fresh standard game, discarding history.
func (c *Controller) EndGame(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	logw.Infof(ctx, "EndGame")
	c.b = board.NewStandardBoard()
	c.stack = nil
	c.records = nil
}

// SquareMap returns the current board's derived square occupancy map.
func (c *Controller) SquareMap() board.SquareMap {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.b.SquareMap()
}

// CapturedPieces reports, per color, the kinds no longer present on the
// board: start from the full standard roster and remove one matching entry
// per surviving piece, falling back to removing a pawn slot when a promoted
// piece's kind (e.g. a second queen) has no remaining slot of its own.
func (c *Controller) CapturedPieces() map[board.Color][]board.PieceKind {
	c.mu.Lock()
	defer c.mu.Unlock()

	tomb := map[board.Color][]board.PieceKind{
		board.White: standardRoster(),
		board.Black: standardRoster(),
	}

	for _, p := range c.b.Pieces() {
		if !p.Alive() {
			continue
		}
		removeFromRoster(tomb[p.Color], p.Kind)
	}

	result := map[board.Color][]board.PieceKind{}
	for color, roster := range tomb {
		result[color] = compact(roster)
	}
	return result
}

func standardRoster() []board.PieceKind {
	roster := make([]board.PieceKind, 0, 16)
	for i := 0; i < 8; i++ {
		roster = append(roster, board.Pawn)
	}
	roster = append(roster, board.Rook, board.Knight, board.Bishop, board.Queen,
		board.King, board.Bishop, board.Knight, board.Rook)
	return roster
}

// removeFromRoster removes the first matching slot in place (marking it
// NoKind), falling back to a pawn slot if none of the exact kind remains.
func removeFromRoster(roster []board.PieceKind, kind board.PieceKind) {
	for i, k := range roster {
		if k == kind {
			roster[i] = board.NoKind
			return
		}
	}
	for i, k := range roster {
		if k == board.Pawn {
			roster[i] = board.NoKind
			return
		}
	}
}

func compact(roster []board.PieceKind) []board.PieceKind {
	var out []board.PieceKind
	for _, k := range roster {
		if k != board.NoKind {
			out = append(out, k)
		}
	}
	return out
}

// Winner reports the game outcome.
func (c *Controller) Winner() board.Winner {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.b.Winner()
}

// Board returns a fork of the current board, safe for the caller to inspect
// or mutate independently.
func (c *Controller) Board() *board.Board {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.b.Fork()
}
