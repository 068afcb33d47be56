package game

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/lox/draftforbots/draft"
	"github.com/lox/draftforbots/internal/randutil"
)

// Helpers shared by the package tests: hand-built states, scripted decision
// sources, a generated catalog, and an event recorder.

// testCard builds a free card of the given kind.
func testCard(name string, kind draft.Kind, effects ...draft.Effect) *draft.Card {
	return &draft.Card{Name: name, Kind: kind, MinPlayers: MinPlayers, Effects: effects}
}

// producer builds a supplier with fixed output.
func producer(name string, r draft.Resource, n int) *draft.Card {
	c := testCard(name, draft.KindSupplier, draft.Fixed(draft.Of(r, n)))
	c.Age = draft.AgeI
	return c
}

// testProfile builds a company side with an inert base card and three
// stages priced in concrete.
func testProfile(name string) draft.CompanyProfile {
	stages := make([]*draft.Card, 3)
	for i := range stages {
		stages[i] = &draft.Card{
			Name: fmt.Sprintf("%s Stage %d", name, i+1),
			Kind: draft.KindStage,
			Cost: draft.Cost{Resources: draft.Of(draft.Concrete, i+1)},
			Effects: []draft.Effect{
				draft.AddVictory{Category: draft.CategoryCompany, Points: 3},
			},
		}
	}
	return draft.CompanyProfile{
		Company: name,
		Side:    "A",
		Base:    &draft.Card{Name: name + " HQ", Kind: draft.KindBase},
		Stages:  stages,
	}
}

// testState seats the given players in order with inert companies and
// starting funds. The draw source is seeded but unused unless a test deals.
func testState(ids ...PlayerID) *GameState {
	g := &GameState{
		draw:    randutil.NewDraw(1),
		players: make(map[PlayerID]*PlayerState, len(ids)),
		seating: append([]PlayerID(nil), ids...),
	}
	n := len(ids)
	for i, id := range ids {
		p := newPlayerState(id, testProfile(string(id)))
		p.Left = ids[(i-1+n)%n]
		p.Right = ids[(i+1)%n]
		g.players[id] = p
	}
	return g
}

// funcSource scripts a decision source from closures. Nil fields fall back
// to dropping the first card and declining picks.
type funcSource struct {
	decide    func(TurnRequest) (TurnDecision, error)
	recycle   func(RecycleRequest) (*draft.Card, error)
	community func(CommunityRequest) (*draft.Card, error)
}

func (s *funcSource) DecideTurn(_ context.Context, req TurnRequest) (TurnDecision, error) {
	if s.decide != nil {
		return s.decide(req)
	}
	return TurnDecision{Action: Drop, Card: req.Hand[0]}, nil
}

func (s *funcSource) PickRecycle(_ context.Context, req RecycleRequest) (*draft.Card, error) {
	if s.recycle != nil {
		return s.recycle(req)
	}
	return nil, nil
}

func (s *funcSource) PickCommunity(_ context.Context, req CommunityRequest) (*draft.Card, error) {
	if s.community != nil {
		return s.community(req)
	}
	return nil, nil
}

// dropSource always discards the first card in hand.
func dropSource() *funcSource {
	return &funcSource{}
}

// testMatch wraps an existing state in a match shell so turn and age
// phases can run without Setup or a catalog.
func testMatch(g *GameState, rec *recorder, sources map[PlayerID]DecisionSource) *Match {
	var narrator Narrator = NopNarrator{}
	if rec != nil {
		narrator = rec
	}
	return &Match{
		state:    g,
		sources:  sources,
		narrator: narrator,
		rate:     DefaultExchangeRate,
		log:      zerolog.Nop(),
	}
}

// recorder collects every narration event in order.
type recorder struct {
	events []Event
}

func (r *recorder) Notice(e Event) {
	r.events = append(r.events, e)
}

// ofType filters recorded events by type.
func (r *recorder) ofType(et EventType) []Event {
	var out []Event
	for _, e := range r.events {
		if e.EventType() == et {
			out = append(out, e)
		}
	}
	return out
}

// genCatalog is a generated content set sized to any table: unique free
// prestige cards padded per age, plus enough companies. Every card is
// playable without production, which keeps scripted sources legal.
type genCatalog struct {
	ages      map[draft.Age][]*draft.Card
	community []*draft.Card
	companies []draft.Company
}

func newGenCatalog(players int) *genCatalog {
	cat := &genCatalog{ages: make(map[draft.Age][]*draft.Card)}
	for _, age := range draft.Ages {
		count := players * HandSize
		if age == draft.AgeIII {
			count -= players + communityExtra
		}
		for i := 0; i < count; i++ {
			c := testCard(fmt.Sprintf("A%d-%02d", age, i), draft.KindPrestige,
				draft.AddVictory{Category: draft.CategoryPrestige, Points: 1})
			c.Age = age
			cat.ages[age] = append(cat.ages[age], c)
		}
	}
	for i := 0; i < players+communityExtra; i++ {
		c := testCard(fmt.Sprintf("Community-%02d", i), draft.KindCommunity,
			draft.AddVictory{Category: draft.CategoryCommunity, Points: 2})
		c.Age = draft.AgeIII
		cat.community = append(cat.community, c)
	}
	for i := 0; i < MaxPlayers; i++ {
		profile := testProfile(fmt.Sprintf("Co%d", i))
		cat.companies = append(cat.companies, draft.Company{
			Name:  profile.Company,
			SideA: profile,
			SideB: profile,
		})
	}
	return cat
}

func (c *genCatalog) AgeCards(age draft.Age) []*draft.Card { return c.ages[age] }
func (c *genCatalog) CommunityCards() []*draft.Card        { return c.community }
func (c *genCatalog) Companies() []draft.Company           { return c.companies }
