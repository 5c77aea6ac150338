package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/qzchen/quantumchess/pkg/config"
	"github.com/qzchen/quantumchess/pkg/engine"
	"github.com/qzchen/quantumchess/pkg/engine/console"
	"github.com/qzchen/quantumchess/pkg/store"
	"github.com/seekerror/logw"
)

var (
	seed     = flag.Int64("seed", 1, "PRNG seed for measurement and agent tie-breaking")
	storeDir = flag.String("store", "", "Badger store directory (defaults to config.toml's Store.Dir)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: quantumchess [options]

QUANTUMCHESS is a quantum-variant chess engine core.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	config.Setup()

	dir := *storeDir
	if dir == "" {
		dir = config.Settings.Store.Dir
	}
	s, err := store.Open(dir)
	if err != nil {
		logw.Exitf(ctx, "Failed to open store at %v: %v", dir, err)
	}
	defer s.Close()

	opts := engine.Options{
		MinimaxDepth:   config.Settings.Agent.MinimaxDepth,
		AlphaBetaDepth: config.Settings.Agent.AlphaBetaDepth,
		BeamDepth:      config.Settings.Agent.BeamDepth,
		BeamWidth:      config.Settings.Agent.BeamWidth,
		Seed:           *seed,
	}
	c := engine.New("quantumchess", engine.WithOptions(opts), engine.WithStore(s))

	in := console.ReadCommands(ctx)
	switch <-in {
	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, c, in)
		go console.WriteReplies(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
