package simulator

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/draftforbots/internal/bot"
	"github.com/lox/draftforbots/internal/game"
	"github.com/lox/draftforbots/internal/statistics"
)

// Config holds configuration for running simulations
type Config struct {
	Matches   int
	Players   int
	Hero      string
	Opponents string
	Seed      int64
	Timeout   time.Duration
	Catalog   game.Catalog
	Logger    *log.Logger
}

// Simulator runs batches of drafting matches and tracks the hero seat
type Simulator struct {
	config Config
}

// heroID names the tracked seat in every simulated match.
const heroID = game.PlayerID("hero")

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	return &Simulator{config: config}
}

// Run executes the simulation and returns results
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, string, error) {
	if s.config.Players < game.MinPlayers || s.config.Players > game.MaxPlayers {
		return nil, "", fmt.Errorf("player count must be between %d and %d, got %d",
			game.MinPlayers, game.MaxPlayers, s.config.Players)
	}

	stats := &statistics.Statistics{}

	// Determine opponent info string
	opponentInfo := s.config.Opponents
	var opponentMix []string
	if s.config.Opponents == "mixed" {
		opponentMix = createMixedStrategies(s.config.Players - 1)
		opponentInfo = fmt.Sprintf("mixed(%s)", strings.Join(opponentMix, ","))
	}

	for match := 0; match < s.config.Matches; match++ {
		// Generate independent seed for this match. Seating, company deals
		// and card shuffles all derive from it, so the hero's seat rotates
		// with the seed rather than by explicit assignment.
		matchSeed := s.config.Seed + int64(match)

		result, err := s.playMatch(ctx, opponentMix, matchSeed)
		if err != nil {
			return nil, "", fmt.Errorf("match %d failed (seed %d): %w", match+1, matchSeed, err)
		}
		stats.Add(result)
	}

	// Validate statistics before returning
	if err := stats.Validate(); err != nil {
		return nil, "", fmt.Errorf("statistics validation failed: %w", err)
	}

	return stats, opponentInfo, nil
}

// playMatch simulates a single match and reports it from the hero's side
func (s *Simulator) playMatch(ctx context.Context, opponentMix []string, matchSeed int64) (statistics.MatchResult, error) {
	matchRng := rand.New(rand.NewSource(matchSeed))

	hero, err := createBot(s.config.Hero, matchRng, s.config.Logger)
	if err != nil {
		return statistics.MatchResult{}, err
	}

	seats := make([]game.Seat, 0, s.config.Players)
	seats = append(seats, game.Seat{ID: heroID, Source: s.wrap(hero)})

	// Add opponent bots to the remaining seats
	for i := 1; i < s.config.Players; i++ {
		strategy := s.config.Opponents
		if opponentMix != nil {
			strategy = opponentMix[i-1]
		}
		opponent, err := createBot(strategy, matchRng, s.config.Logger)
		if err != nil {
			return statistics.MatchResult{}, err
		}
		seats = append(seats, game.Seat{
			ID:     game.PlayerID(fmt.Sprintf("opp-%d", i)),
			Source: s.wrap(opponent),
		})
	}

	match := game.NewMatch(s.config.Catalog, seats, game.WithSeed(matchSeed))
	res, err := match.Run(ctx)
	if err != nil {
		return statistics.MatchResult{}, err
	}

	heroTotal := res.Scores.Total(heroID)
	bestOther := math.MinInt
	for _, id := range res.Seating {
		if id == heroID {
			continue
		}
		if total := res.Scores.Total(id); total > bestOther {
			bestOther = total
		}
	}

	return statistics.MatchResult{
		Score:  float64(heroTotal),
		Margin: float64(heroTotal - bestOther),
		Seed:   matchSeed,
		Seat:   slices.Index(res.Seating, heroID),
		Won:    len(res.Ranking) > 0 && res.Ranking[0] == heroID,
	}, nil
}

// wrap applies the configured decision timeout, if any
func (s *Simulator) wrap(source game.DecisionSource) game.DecisionSource {
	if s.config.Timeout <= 0 {
		return source
	}
	return game.NewTimeoutSource(source, s.config.Timeout)
}

// createMixedStrategies returns a fixed strategy cycle for consistent testing
func createMixedStrategies(n int) []string {
	base := []string{"greedy", "random", "drop"}
	mix := make([]string, n)
	for i := range mix {
		mix[i] = base[i%len(base)]
	}
	return mix
}

// createBot creates a decision source playing the named strategy
func createBot(strategy string, rng *rand.Rand, logger *log.Logger) (game.DecisionSource, error) {
	switch strategy {
	case "greedy":
		return bot.NewGreedyBot(rng, logger), nil
	case "random":
		return bot.NewRandBot(rng, logger), nil
	case "drop":
		return bot.NewDropBot(logger), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, matches, players int, opponents string, seed int64, timeout time.Duration, catalog game.Catalog, logger *log.Logger) (*statistics.Statistics, string, error) {
	config := Config{
		Matches:   matches,
		Players:   players,
		Hero:      "greedy",
		Opponents: opponents,
		Seed:      seed,
		Timeout:   timeout,
		Catalog:   catalog,
		Logger:    logger,
	}

	simulator := New(config)
	return simulator.Run(ctx)
}

// PrintSummary prints a comprehensive summary of simulation results
func PrintSummary(stats *statistics.Statistics, opponents string) {
	mean := stats.Mean()
	median := stats.Median()
	stdDev := stats.StdDev()
	stdErr := stats.StdError()
	low, high := stats.ConfidenceInterval95()
	p05 := stats.Percentile(0.05)
	p25 := stats.Percentile(0.25)
	p75 := stats.Percentile(0.75)
	p95 := stats.Percentile(0.95)

	fmt.Printf("\n=== FINAL RESULTS vs %s ===\n", opponents)
	fmt.Printf("Matches played: %d\n", stats.Matches)

	fmt.Printf("\n=== STATISTICAL RESULTS ===\n")
	fmt.Printf("Mean: %.4f points\n", mean)
	fmt.Printf("Median: %.4f points\n", median)
	fmt.Printf("Std Dev: %.4f points\n", stdDev)
	fmt.Printf("Std Error: %.4f points\n", stdErr)
	fmt.Printf("95%% CI: [%.4f, %.4f] points\n", low, high)
	fmt.Printf("Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n", p05, p25, p75, p95)

	fmt.Printf("\n=== MATCH OUTCOMES ===\n")
	fmt.Printf("Wins: %d of %d (%.1f%%)\n", stats.Wins, stats.Matches, stats.WinRate()*100)
	fmt.Printf("Mean margin over best opponent: %.2f points\n", stats.MeanMargin())

	// A fair setup spreads the hero across seats; large per-seat gaps
	// point at a seating bias rather than a strategy edge.
	fmt.Printf("\n=== SEAT ANALYSIS ===\n")
	for seat := 0; seat < statistics.MaxSeats; seat++ {
		ss := stats.SeatResults[seat]
		if ss.Matches > 0 {
			fmt.Printf("Seat %d: %d matches, %.3f points\n", seat, ss.Matches, stats.SeatMean(seat))
		}
	}
}
