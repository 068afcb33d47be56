package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/lox/draftforbots/draft"
	"github.com/lox/draftforbots/internal/matchid"
)

// Seat pairs a player with their decision source.
type Seat struct {
	ID     PlayerID
	Source DecisionSource
}

// Match wires the engine to its collaborators and runs one full game.
type Match struct {
	id       string
	catalog  Catalog
	seats    []Seat
	sources  map[PlayerID]DecisionSource
	state    *GameState
	narrator Narrator
	rate     ExchangeRate
	log      zerolog.Logger
	parallel bool
	draw     DrawFunc
}

// NewMatch creates a match over a catalog and a set of seats. A seed or
// draw source is required so every shuffle is reproducible.
//
// Example usage:
//
//	m := game.NewMatch(cat, seats, game.WithSeed(42))
//	result, err := m.Run(ctx)
func NewMatch(catalog Catalog, seats []Seat, opts ...MatchOption) *Match {
	if catalog == nil {
		panic("catalog is required")
	}
	if len(seats) < MinPlayers || len(seats) > MaxPlayers {
		panic(fmt.Sprintf("player count must be between %d and %d", MinPlayers, MaxPlayers))
	}

	cfg := &matchConfig{
		narrator: NopNarrator{},
		rate:     DefaultExchangeRate,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.draw == nil {
		panic("a seed or draw source is required")
	}

	sources := make(map[PlayerID]DecisionSource, len(seats))
	for _, s := range seats {
		if s.ID == "" {
			panic("seat without a player id")
		}
		if s.Source == nil {
			panic(fmt.Sprintf("seat %s without a decision source", s.ID))
		}
		if _, dup := sources[s.ID]; dup {
			panic(fmt.Sprintf("duplicate player id %s", s.ID))
		}
		sources[s.ID] = s.Source
	}

	id := matchid.New()
	return &Match{
		id:       id,
		catalog:  catalog,
		seats:    slices.Clone(seats),
		sources:  sources,
		narrator: cfg.narrator,
		rate:     cfg.rate,
		log:      cfg.logger.With().Str("component", "match").Str("match", id).Logger(),
		parallel: cfg.parallel,
		draw:     cfg.draw,
	}
}

// ID returns the match's minted identifier.
func (m *Match) ID() string {
	return m.id
}

// Result is the final outcome of a match.
type Result struct {
	ID       string
	Scores   Scoreboard
	Ranking  []PlayerID // best first
	Seating  []PlayerID
	Profiles map[PlayerID]draft.CompanyProfile
	Funds    map[PlayerID]int
}

// Run plays the match start to finish: setup, three drafting ages,
// post-game effects, scoring. The context cancels in-flight decision
// requests.
func (m *Match) Run(ctx context.Context) (Result, error) {
	ids := make([]PlayerID, len(m.seats))
	for i, s := range m.seats {
		ids[i] = s.ID
	}
	state, err := Setup(m.draw, ids, m.catalog.Companies())
	if err != nil {
		return Result{}, err
	}
	m.state = state
	m.log.Info().Int("players", len(ids)).Msg("match started")

	for _, age := range draft.Ages {
		if err := m.playAge(ctx, age); err != nil {
			return Result{}, err
		}
	}
	if err := m.resolveCopyCommunity(ctx); err != nil {
		return Result{}, err
	}

	board := m.state.Score()
	ranking := m.state.ranking(board)
	m.narrator.Notice(MatchEnded{Ranking: ranking})
	m.log.Info().Str("winner", string(ranking[0])).Msg("match complete")

	profiles := make(map[PlayerID]draft.CompanyProfile, len(ids))
	funds := make(map[PlayerID]int, len(ids))
	for _, id := range m.state.seating {
		p := m.state.players[id]
		profiles[id] = p.Profile
		funds[id] = p.Funds
	}
	return Result{
		ID:       m.id,
		Scores:   board,
		Ranking:  ranking,
		Seating:  slices.Clone(m.state.seating),
		Profiles: profiles,
		Funds:    funds,
	}, nil
}

// resolveCopyCommunity offers each copy effect holder the union of both
// neighbors' community cards, in seating order. Selection is mandatory:
// a declined or invalid pick falls back to the first available card.
func (m *Match) resolveCopyCommunity(ctx context.Context) error {
	for _, id := range m.state.seating {
		p := m.state.players[id]
		if !p.hasCopyCommunity() {
			continue
		}
		var pool []*draft.Card
		for _, dir := range draft.BothDirections {
			neighbor := m.state.players[p.Neighbor(dir)]
			for _, c := range neighbor.Cards {
				if c.Kind == draft.KindCommunity {
					pool = append(pool, c)
				}
			}
		}
		if len(pool) == 0 {
			m.narrator.Notice(CommunityUnavailable{Player: id})
			continue
		}
		req := CommunityRequest{
			Player:  id,
			Choices: slices.Clone(pool),
			Table:   m.state.view(draft.AgeIII, TurnsPerAge),
		}
		pick, err := m.sources[id].PickCommunity(ctx, req)
		if err != nil {
			return fmt.Errorf("community pick for %s: %w", id, err)
		}
		if pick == nil || !slices.Contains(pool, pick) {
			m.narrator.Notice(RuleViolated{Player: id, Reason: "community pick not among the offered cards"})
			pick = pool[0]
		}
		p.Cards = append(p.Cards, pick)
		m.narrator.Notice(CommunityCopied{Player: id, Card: pick})
	}
	return nil
}
