// Package console implements an interactive line-based driver for debugging
// a Controller.
package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/qzchen/quantumchess/pkg/board"
	"github.com/qzchen/quantumchess/pkg/engine"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging a Controller. RunStep
// resolves one action and returns, so there is no in-flight search to track;
// every command completes before the next line is read.
type Driver struct {
	iox.AsyncCloser

	c *engine.Controller

	out chan<- string
}

func NewDriver(ctx context.Context, c *engine.Controller, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		c:           c,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v", d.c.Name())
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}
			d.dispatch(ctx, line)

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) dispatch(ctx context.Context, line string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "reset", "r":
		d.c.EndGame(ctx)
		d.printBoard(ctx)

	case "undo", "u":
		if err := d.c.Undo(ctx); err != nil {
			d.out <- fmt.Sprintf("undo failed: %v", err)
			return
		}
		d.printBoard(ctx)

	case "print", "p":
		d.printBoard(ctx)

	case "go", "g":
		record, err := d.c.RunStep(ctx, board.Action{})
		if err != nil {
			d.out <- fmt.Sprintf("agent move failed: %v", err)
			return
		}
		d.out <- record
		d.printBoard(ctx)

	case "move", "m":
		a, err := parseSquares(args, 1, 1)
		if err != nil {
			d.out <- err.Error()
			return
		}
		d.runStep(ctx, board.NewMove(a[0], a[1]))

	case "split":
		a, err := parseSquares(args, 1, 2)
		if err != nil {
			d.out <- err.Error()
			return
		}
		d.runStep(ctx, board.NewSplit(a[0], a[1], a[2]))

	case "merge":
		a, err := parseSquares(args, 2, 1)
		if err != nil {
			d.out <- err.Error()
			return
		}
		d.runStep(ctx, board.NewMerge(a[0], a[1], a[2]))

	case "agent":
		if len(args) != 2 {
			d.out <- "usage: agent <white|black> <name>"
			return
		}
		color, ok := board.ParseColor(args[0])
		if !ok {
			d.out <- fmt.Sprintf("unknown color: %v", args[0])
			return
		}
		if err := d.c.SelectAgent(ctx, color, args[1]); err != nil {
			d.out <- err.Error()
			return
		}
		d.out <- fmt.Sprintf("%v now played by %v", color, args[1])

	case "save":
		if len(args) != 1 {
			d.out <- "usage: save <name>"
			return
		}
		id, err := d.c.Save(ctx, args[0])
		if err != nil {
			d.out <- err.Error()
			return
		}
		d.out <- fmt.Sprintf("saved id=%v", id)

	case "load":
		if len(args) != 1 {
			d.out <- "usage: load <id>"
			return
		}
		var id int64
		if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
			d.out <- fmt.Sprintf("invalid id: %v", args[0])
			return
		}
		if err := d.c.SetBoardFromSavedID(ctx, id); err != nil {
			d.out <- err.Error()
			return
		}
		d.printBoard(ctx)

	case "quit", "exit", "q":
		d.Close()

	default:
		d.out <- fmt.Sprintf("unrecognized command: %v", cmd)
	}
}

func (d *Driver) runStep(ctx context.Context, a board.Action) {
	record, err := d.c.RunStep(ctx, a)
	if err != nil {
		d.out <- fmt.Sprintf("invalid action: %v", err)
		return
	}
	d.out <- record
	d.printBoard(ctx)

	if w := d.c.Winner(); w != board.NoWinner {
		d.out <- fmt.Sprintf("game over: %v", w)
	}
}

func parseSquares(args []string, nsrc, ntgt int) ([]board.Square, error) {
	if len(args) != nsrc+ntgt {
		return nil, fmt.Errorf("expected %v source(s) and %v target(s)", nsrc, ntgt)
	}
	out := make([]board.Square, len(args))
	for i, arg := range args {
		sq, err := board.ParseSquareStr(arg)
		if err != nil {
			return nil, err
		}
		out[i] = sq
	}
	return out, nil
}

const (
	files      = "    a   b   c   d   e   f   g   h"
	horizontal = "  ---------------------------------"
	vertical   = " | "
)

// printBoard renders occupied squares with their classical letter; an
// occupant held at probability below 1 has its probability appended, and a
// square with several occupants lists them separated by "/".
func (d *Driver) printBoard(ctx context.Context) {
	m := d.c.SquareMap()

	d.out <- ""
	d.out <- files
	d.out <- horizontal
	for row := 8; row >= 1; row-- {
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d", row) + vertical)
		for col := 1; col <= 8; col++ {
			sb.WriteString(printOccupants(m[board.NewSquare(col, row)]))
			sb.WriteString(vertical)
		}
		d.out <- sb.String()
		d.out <- horizontal
	}
	d.out <- files
	d.out <- ""
	d.out <- fmt.Sprintf("turn: %v, winner: %v", d.c.Board().Turn(), d.c.Winner())
	d.out <- ""
}

func printOccupants(occ []board.SquareOccupant) string {
	if len(occ) == 0 {
		return " "
	}
	var parts []string
	for _, o := range occ {
		letter := o.Kind.Letter()
		if letter == "" {
			letter = "P"
		}
		if o.Color == board.Black {
			letter = strings.ToLower(letter)
		}
		if o.Probability < 1-board.ProbabilityEpsilon {
			parts = append(parts, fmt.Sprintf("%v%.0f%%", letter, o.Probability*100))
		} else {
			parts = append(parts, letter)
		}
	}
	return strings.Join(parts, "/")
}
