package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/draftforbots/cmd/draftforbots/shared"
	"github.com/lox/draftforbots/internal/bot"
	"github.com/lox/draftforbots/internal/game"
)

type PlayCmd struct {
	Players    int      `default:"4" help:"Players at the table (3-7)"`
	Strategies []string `help:"Seat strategies (greedy, random, drop); cycled around the table"`
	Seed       int64    `default:"0" help:"Match seed (0 for time-based)"`
	Catalog    string   `help:"Catalog file (HCL); built-in set when empty"`
	Quiet      bool     `short:"q" help:"Scoreboard only, no play-by-play"`
	Debug      bool     `help:"Enable debug logging"`
	LogJSON    bool     `help:"Output JSON logs instead of console format"`
}

func (c *PlayCmd) Run() error {
	if c.Players < game.MinPlayers || c.Players > game.MaxPlayers {
		return fmt.Errorf("player count must be between %d and %d, got %d",
			game.MinPlayers, game.MaxPlayers, c.Players)
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	cat, err := loadCatalog(c.Catalog, c.Players)
	if err != nil {
		return err
	}

	engineLogger := shared.Logger(c.Debug, c.LogJSON)
	ctx := shared.InterruptContextLogged(engineLogger)

	botLevel := log.WarnLevel
	if c.Debug {
		botLevel = log.DebugLevel
	}
	botLogger := log.NewWithOptions(os.Stderr, log.Options{Level: botLevel})

	strategies := c.Strategies
	if len(strategies) == 0 {
		strategies = []string{"greedy", "random", "drop"}
	}

	rng := rand.New(rand.NewSource(c.Seed))
	seats := make([]game.Seat, c.Players)
	for i := range seats {
		strategy := strategies[i%len(strategies)]
		source, err := newBot(strategy, rng, botLogger)
		if err != nil {
			return err
		}
		seats[i] = game.Seat{
			ID:     game.PlayerID(fmt.Sprintf("%s-%d", strategy, i+1)),
			Source: source,
		}
	}

	opts := []game.MatchOption{
		game.WithSeed(c.Seed),
		game.WithLogger(engineLogger),
	}
	if !c.Quiet {
		opts = append(opts, game.WithNarrator(&consoleNarrator{out: os.Stdout}))
	}

	match := game.NewMatch(cat, seats, opts...)
	fmt.Printf("match %s (seed %d)\n", match.ID(), c.Seed)

	res, err := match.Run(ctx)
	if err != nil {
		return err
	}

	renderScoreboard(os.Stdout, res)
	return nil
}

func newBot(strategy string, rng *rand.Rand, logger *log.Logger) (game.DecisionSource, error) {
	switch strategy {
	case "greedy":
		return bot.NewGreedyBot(rng, logger), nil
	case "random":
		return bot.NewRandBot(rng, logger), nil
	case "drop":
		return bot.NewDropBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (available: greedy, random, drop)", strategy)
	}
}

// consoleNarrator prints play-by-play notices as the match unfolds.
type consoleNarrator struct {
	out io.Writer
}

func (n *consoleNarrator) Notice(e game.Event) {
	switch ev := e.(type) {
	case game.AgeStarted:
		fmt.Fprintf(n.out, "\n%s\n", ageStyle.Render(fmt.Sprintf("=== %s ===", ev.Age)))
	case game.TurnStarted:
		fmt.Fprintf(n.out, "%s\n", turnStyle.Render(fmt.Sprintf("-- turn %d --", ev.Turn)))
	case game.ExchangeMade:
		fmt.Fprintf(n.out, "  %s buys %s from the %s neighbor for %d\n",
			ev.Player, formatResources(ev.Goods), ev.Direction, ev.Cost)
	case game.CardPlayed:
		fmt.Fprintf(n.out, "  %s plays %s (%s)\n", ev.Player, cardStyle.Render(ev.Card.Name), ev.Mode)
	case game.CardDropped:
		if ev.Forced {
			fmt.Fprintf(n.out, "  %s drops a card (forced)\n", ev.Player)
		} else {
			fmt.Fprintf(n.out, "  %s drops a card for funding\n", ev.Player)
		}
	case game.StageBuilt:
		fmt.Fprintf(n.out, "  %s builds stage %d: %s\n", ev.Player, ev.Stage, cardStyle.Render(ev.Card.Name))
	case game.RuleViolated:
		fmt.Fprintf(n.out, "  %s\n", violationStyle.Render(fmt.Sprintf("%s violates the rules: %s", ev.Player, ev.Reason)))
	case game.RecyclingUsed:
		fmt.Fprintf(n.out, "  %s recycles %s from the discard pile\n", ev.Player, cardStyle.Render(ev.Card.Name))
	case game.RecyclingSkipped:
		fmt.Fprintf(n.out, "  %s lets the discard pile lie\n", ev.Player)
	case game.PoachingResolved:
		switch {
		case ev.Outcome == nil:
			fmt.Fprintf(n.out, "  %s ties %s on poaching (%d vs %d)\n", ev.Player, ev.Opponent, ev.Mine, ev.Theirs)
		case ev.Outcome.Defeated:
			fmt.Fprintf(n.out, "  %s is out-poached by %s (%d vs %d)\n", ev.Player, ev.Opponent, ev.Mine, ev.Theirs)
		default:
			fmt.Fprintf(n.out, "  %s out-poaches %s (%d vs %d)\n", ev.Player, ev.Opponent, ev.Mine, ev.Theirs)
		}
	case game.AgeEnded:
		fmt.Fprintf(n.out, "%s\n", turnStyle.Render(fmt.Sprintf("-- %s complete --", ev.Age)))
	case game.CommunityCopied:
		fmt.Fprintf(n.out, "  %s copies %s from a neighbor\n", ev.Player, cardStyle.Render(ev.Card.Name))
	case game.CommunityUnavailable:
		fmt.Fprintf(n.out, "  %s has no community card in reach to copy\n", ev.Player)
	case game.MatchEnded:
		fmt.Fprintf(n.out, "\n%s\n", winnerStyle.Render(fmt.Sprintf("%s takes the match", ev.Ranking[0])))
	}
}
