package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/draftforbots/cmd/draftforbots/shared"
	"github.com/lox/draftforbots/internal/simulator"
)

type SimulateCmd struct {
	Matches   int           `default:"200" help:"Number of matches to simulate"`
	Players   int           `default:"4" help:"Players per match (3-7)"`
	Hero      string        `default:"greedy" enum:"greedy,random,drop" help:"Strategy under test"`
	Opponents string        `default:"mixed" enum:"greedy,random,drop,mixed" help:"Opposition strategy"`
	Seed      int64         `default:"0" help:"Base RNG seed (0 for time-based)"`
	Timeout   time.Duration `default:"5s" help:"Per-decision timeout (0 to disable)"`
	Catalog   string        `help:"Catalog file (HCL); built-in set when empty"`
	Debug     bool          `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	cat, err := loadCatalog(c.Catalog, c.Players)
	if err != nil {
		return err
	}

	level := log.WarnLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	ctx := shared.InterruptContext()

	fmt.Printf("Starting simulation: %d matches, %d players, %s vs %s (seed: %d)\n",
		c.Matches, c.Players, c.Hero, c.Opponents, c.Seed)

	config := simulator.Config{
		Matches:   c.Matches,
		Players:   c.Players,
		Hero:      c.Hero,
		Opponents: c.Opponents,
		Seed:      c.Seed,
		Timeout:   c.Timeout,
		Catalog:   cat,
		Logger:    logger,
	}

	start := time.Now()
	stats, opponentInfo, err := simulator.New(config).Run(ctx)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	simulator.PrintSummary(stats, opponentInfo)
	fmt.Printf("\n%d matches in %v (%.1f matches/sec)\n",
		stats.Matches, duration.Round(time.Millisecond),
		float64(stats.Matches)/duration.Seconds())

	return nil
}
