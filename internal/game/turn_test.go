package game

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/lox/draftforbots/draft"
)

func singleCardHands(g *GameState, cards map[PlayerID]*draft.Card) Hands {
	hands := make(Hands, len(cards))
	for _, id := range g.seating {
		hands[id] = []*draft.Card{cards[id]}
	}
	return hands
}

func TestPlayTurnSnapshotsBeforeResolving(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	seenFunds := -1
	sources := map[PlayerID]DecisionSource{
		"Alice": dropSource(),
		"Bob": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			seenFunds = req.Table.Seat("Alice").Funds
			return TurnDecision{Action: Drop, Card: req.Hand[0]}, nil
		}},
		"Charlie": dropSource(),
	}
	m := testMatch(g, nil, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   prestigeCard("P1"),
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	if seenFunds != StartingFunds {
		t.Errorf("snapshot showed %d funds, want pre-turn %d", seenFunds, StartingFunds)
	}
	for _, id := range g.seating {
		if got := g.players[id].Funds; got != StartingFunds+DropReward {
			t.Errorf("%s funds = %d, want %d", id, got, StartingFunds+DropReward)
		}
		if len(hands[id]) != 0 {
			t.Errorf("%s hand not consumed: %d cards", id, len(hands[id]))
		}
	}
	if g.DiscardCount() != 3 {
		t.Errorf("discard = %d, want 3", g.DiscardCount())
	}
}

func TestPlayTurnForcesDropOnViolation(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	expensive := testCard("Executive Suite", draft.KindPrestige,
		draft.AddVictory{Category: draft.CategoryPrestige, Points: 8})
	expensive.Cost = draft.Cost{Funding: 9}
	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
		}},
		"Bob":     dropSource(),
		"Charlie": dropSource(),
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   expensive,
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}

	violations := rec.ofType(EventRuleViolated)
	if len(violations) != 1 || violations[0].(RuleViolated).Player != "Alice" {
		t.Fatalf("violations = %+v, want one for Alice", violations)
	}
	var forced bool
	for _, e := range rec.ofType(EventCardDropped) {
		if d := e.(CardDropped); d.Player == "Alice" && d.Forced {
			forced = true
		}
	}
	if !forced {
		t.Error("no forced drop recorded for Alice")
	}
	alice := g.players["Alice"]
	if alice.Funds != StartingFunds+DropReward {
		t.Errorf("funds = %d, want drop reward applied", alice.Funds)
	}
	if len(alice.Cards) != 1 {
		t.Errorf("tableau grew despite rejection: %d cards", len(alice.Cards))
	}
}

func TestPlayTurnDefersSellerCredits(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	g.players["Bob"].Cards = append(g.players["Bob"].Cards, producer("Concrete Plant", draft.Concrete, 1))
	wanted := testCard("Civic Center", draft.KindPrestige,
		draft.AddVictory{Category: draft.CategoryPrestige, Points: 3})
	wanted.Cost = draft.Cost{Resources: draft.Of(draft.Concrete, 1)}

	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{
				Action:   Play,
				Card:     req.Hand[0],
				Exchange: Exchange{draft.Right: draft.Of(draft.Concrete, 1)},
			}, nil
		}},
		"Bob":     dropSource(),
		"Charlie": dropSource(),
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   wanted,
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}

	if got := g.players["Alice"].Funds; got != StartingFunds-BaseExchangePrice {
		t.Errorf("buyer funds = %d, want %d", got, StartingFunds-BaseExchangePrice)
	}
	// Bob's drop reward and his sale merge into one payout.
	if got := g.players["Bob"].Funds; got != StartingFunds+DropReward+BaseExchangePrice {
		t.Errorf("seller funds = %d, want %d", got, StartingFunds+DropReward+BaseExchangePrice)
	}
	var bobPayouts []PayoutApplied
	for _, e := range rec.ofType(EventPayoutApplied) {
		if p := e.(PayoutApplied); p.Player == "Bob" {
			bobPayouts = append(bobPayouts, p)
		}
	}
	if len(bobPayouts) != 1 || bobPayouts[0].Amount != DropReward+BaseExchangePrice {
		t.Errorf("bob payouts = %+v, want one merged credit", bobPayouts)
	}
	exchanges := rec.ofType(EventExchangeMade)
	if len(exchanges) != 1 {
		t.Fatalf("exchange events = %d, want 1", len(exchanges))
	}
	if ex := exchanges[0].(ExchangeMade); ex.Player != "Alice" || ex.Direction != draft.Right || ex.Cost != BaseExchangePrice {
		t.Errorf("exchange event = %+v", ex)
	}
}

func TestPlayTurnExchangeIgnoresSameTurnProduction(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	mill := producer("Steel Mill", draft.Steel, 1)
	wanted := testCard("Foundry Hall", draft.KindPrestige,
		draft.AddVictory{Category: draft.CategoryPrestige, Points: 3})
	wanted.Cost = draft.Cost{Resources: draft.Of(draft.Steel, 1)}

	// Alice resolves first and plays the mill; Bob tries to buy its steel
	// in the same turn. The stock he sees must be the pre-turn state.
	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
		}},
		"Bob": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{
				Action:   Play,
				Card:     req.Hand[0],
				Exchange: Exchange{draft.Left: draft.Of(draft.Steel, 1)},
			}, nil
		}},
		"Charlie": dropSource(),
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   mill,
		"Bob":     wanted,
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}

	violations := rec.ofType(EventRuleViolated)
	if len(violations) != 1 || violations[0].(RuleViolated).Player != "Bob" {
		t.Fatalf("violations = %+v, want one for Bob", violations)
	}
	bob := g.players["Bob"]
	if slices.Contains(bob.Cards, wanted) {
		t.Error("Foundry Hall built on steel that did not exist before the turn")
	}
	if bob.Funds != StartingFunds+DropReward {
		t.Errorf("Bob funds = %d, want the forced-drop reward on %d", bob.Funds, StartingFunds)
	}
	if got := g.players["Alice"].Funds; got != StartingFunds {
		t.Errorf("Alice funds = %d, credited for a sale that never happened", got)
	}
}

func TestPlayTurnPayoutsPrecedeYields(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	market := testCard("Open Market", draft.KindCommerce,
		draft.GainFunding{Amount: 1, Per: draft.PerKind(draft.ScopeSelf, draft.KindCommerce)})
	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
		}},
		"Bob":     dropSource(),
		"Charlie": dropSource(),
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   market,
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}

	// The yield counts the card itself: it is in the tableau by the time
	// yields are evaluated.
	yields := rec.ofType(EventCardYield)
	if len(yields) != 1 {
		t.Fatalf("yield events = %d, want 1", len(yields))
	}
	if y := yields[0].(CardYield); y.Player != "Alice" || y.Amount != 1 {
		t.Errorf("yield = %+v, want 1 for Alice", y)
	}
	if got := g.players["Alice"].Funds; got != StartingFunds+1 {
		t.Errorf("funds = %d, want %d", got, StartingFunds+1)
	}

	lastPayout, firstYield := -1, -1
	for i, e := range rec.events {
		switch e.EventType() {
		case EventPayoutApplied:
			lastPayout = i
		case EventCardYield:
			if firstYield < 0 {
				firstYield = i
			}
		}
	}
	if lastPayout < 0 || firstYield < lastPayout {
		t.Errorf("yield at %d before final payout at %d", firstYield, lastPayout)
	}
}

func TestPlayTurnSeventhTurnOnlyEfficiencyHolders(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	g.players["Alice"].Cards = append(g.players["Alice"].Cards,
		testCard("Helix Stage", draft.KindStage, draft.Efficiency{}))
	sources := map[PlayerID]DecisionSource{
		"Alice": dropSource(),
		"Bob": &funcSource{decide: func(TurnRequest) (TurnDecision, error) {
			t.Error("Bob asked to act on the seventh turn without Efficiency")
			return TurnDecision{}, nil
		}},
		"Charlie": &funcSource{decide: func(TurnRequest) (TurnDecision, error) {
			t.Error("Charlie asked to act on the seventh turn without Efficiency")
			return TurnDecision{}, nil
		}},
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   prestigeCard("P1"),
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, TurnsPerAge, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}

	starts := rec.ofType(EventTurnStarted)
	if len(starts) != 1 {
		t.Fatalf("turn started events = %d", len(starts))
	}
	parts := starts[0].(TurnStarted).Participants
	if len(parts) != 1 || parts[0] != "Alice" {
		t.Errorf("participants = %v, want just Alice", parts)
	}
	if len(hands["Alice"]) != 0 {
		t.Error("Alice's final card not consumed")
	}
	if len(hands["Bob"]) != 1 || len(hands["Charlie"]) != 1 {
		t.Error("bystander hands should be untouched")
	}
}

func TestPlayTurnSeventhTurnWithoutHoldersIsSilent(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	m := testMatch(g, rec, map[PlayerID]DecisionSource{
		"Alice": dropSource(), "Bob": dropSource(), "Charlie": dropSource(),
	})
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   prestigeCard("P1"),
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, TurnsPerAge, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("events = %+v, want none", rec.events)
	}
	for _, id := range g.seating {
		if len(hands[id]) != 1 {
			t.Errorf("%s hand touched", id)
		}
	}
}

func TestPlayTurnRecycling(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	buried := prestigeCard("Buried Treasure")
	g.discard = []*draft.Card{prestigeCard("Scrap"), buried}

	reclaimer := testCard("Cascade Stage", draft.KindCommerce, draft.Recycling{})
	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{
			decide: func(req TurnRequest) (TurnDecision, error) {
				return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
			},
			recycle: func(req RecycleRequest) (*draft.Card, error) {
				return req.Discard[1], nil
			},
		},
		"Bob": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
		}},
		"Charlie": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
		}},
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   reclaimer,
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}

	used := rec.ofType(EventRecyclingUsed)
	if len(used) != 1 || used[0].(RecyclingUsed).Card != buried {
		t.Fatalf("recycling events = %+v, want Buried Treasure", used)
	}
	alice := g.players["Alice"]
	found := false
	for _, c := range alice.Cards {
		if c == buried {
			found = true
		}
	}
	if !found {
		t.Error("recycled card missing from tableau")
	}
	if g.DiscardCount() != 1 {
		t.Errorf("discard = %d, want 1", g.DiscardCount())
	}
}

func TestPlayTurnRecyclingEmptyPile(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	asked := false
	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{
			decide: func(req TurnRequest) (TurnDecision, error) {
				return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
			},
			recycle: func(RecycleRequest) (*draft.Card, error) {
				asked = true
				return nil, nil
			},
		},
		"Bob": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
		}},
		"Charlie": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
		}},
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   testCard("Cascade Stage", draft.KindCommerce, draft.Recycling{}),
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	if asked {
		t.Error("source asked to pick from an empty pile")
	}
	if len(rec.ofType(EventRecyclingSkipped)) != 1 {
		t.Error("skip not narrated")
	}
}

func TestPlayTurnRecyclingDeclined(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	g.discard = []*draft.Card{prestigeCard("Scrap")}
	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
			return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
		}},
		"Bob":     dropSource(),
		"Charlie": dropSource(),
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   testCard("Cascade Stage", draft.KindCommerce, draft.Recycling{}),
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	if len(rec.ofType(EventRecyclingSkipped)) != 1 {
		t.Error("declined pick should narrate a skip")
	}
	// Scrap plus the two dropped cards.
	if g.DiscardCount() != 3 {
		t.Errorf("discard = %d, want 3", g.DiscardCount())
	}
}

func TestPlayTurnRecyclingInvalidPick(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	g.discard = []*draft.Card{prestigeCard("Scrap")}
	stray := prestigeCard("Stray")
	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{
			decide: func(req TurnRequest) (TurnDecision, error) {
				return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
			},
			recycle: func(RecycleRequest) (*draft.Card, error) {
				return stray, nil
			},
		},
		"Bob":     dropSource(),
		"Charlie": dropSource(),
	}
	m := testMatch(g, rec, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   testCard("Cascade Stage", draft.KindCommerce, draft.Recycling{}),
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	if len(rec.ofType(EventRuleViolated)) != 1 {
		t.Error("invalid pick should narrate a violation")
	}
	if len(rec.ofType(EventRecyclingSkipped)) != 1 {
		t.Error("invalid pick should skip, not abort")
	}
	for _, c := range g.players["Alice"].Cards {
		if c == stray {
			t.Error("stray card reached the tableau")
		}
	}
}

func TestPlayTurnEarlierRecyclingShrinksLaterOffer(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	g.discard = []*draft.Card{prestigeCard("Scrap A"), prestigeCard("Scrap B")}
	var offered []int
	pickFirst := func(req RecycleRequest) (*draft.Card, error) {
		offered = append(offered, len(req.Discard))
		return req.Discard[0], nil
	}
	playFirst := func(req TurnRequest) (TurnDecision, error) {
		return TurnDecision{Action: Play, Card: req.Hand[0]}, nil
	}
	sources := map[PlayerID]DecisionSource{
		"Alice":   &funcSource{decide: playFirst, recycle: pickFirst},
		"Bob":     &funcSource{decide: playFirst, recycle: pickFirst},
		"Charlie": &funcSource{decide: playFirst},
	}
	m := testMatch(g, nil, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   testCard("Cascade Stage", draft.KindCommerce, draft.Recycling{}),
		"Bob":     testCard("Reclaim Office", draft.KindCommerce, draft.Recycling{}),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	if len(offered) != 2 || offered[0] != 2 || offered[1] != 1 {
		t.Errorf("offered pile sizes = %v, want [2 1]", offered)
	}
	if g.DiscardCount() != 0 {
		t.Errorf("discard = %d, want 0", g.DiscardCount())
	}
}

func TestPlayTurnSourceErrorAborts(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	boom := errors.New("socket closed")
	sources := map[PlayerID]DecisionSource{
		"Alice": &funcSource{decide: func(TurnRequest) (TurnDecision, error) {
			return TurnDecision{}, boom
		}},
		"Bob":     dropSource(),
		"Charlie": dropSource(),
	}
	m := testMatch(g, nil, sources)
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   prestigeCard("P1"),
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	err := m.playTurn(context.Background(), draft.AgeI, 1, hands)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the source error", err)
	}
	if !strings.Contains(err.Error(), "Alice") {
		t.Errorf("err %q does not name the player", err)
	}
}

func TestPlayTurnParallelCollection(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	sources := map[PlayerID]DecisionSource{
		"Alice": dropSource(), "Bob": dropSource(), "Charlie": dropSource(),
	}
	m := testMatch(g, nil, sources)
	m.parallel = true
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   prestigeCard("P1"),
		"Bob":     prestigeCard("P2"),
		"Charlie": prestigeCard("P3"),
	})

	if err := m.playTurn(context.Background(), draft.AgeI, 1, hands); err != nil {
		t.Fatalf("playTurn: %v", err)
	}
	for _, id := range g.seating {
		if len(hands[id]) != 0 {
			t.Errorf("%s hand not consumed", id)
		}
	}
}
