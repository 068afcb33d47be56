package game

import (
	"context"
	"errors"
	"testing"

	"github.com/lox/draftforbots/draft"
)

func TestRotateHandsPassesRightInOuterAges(t *testing.T) {
	t.Parallel()
	for _, age := range []draft.Age{draft.AgeI, draft.AgeIII} {
		g := testState("Alice", "Bob", "Charlie")
		hands := singleCardHands(g, map[PlayerID]*draft.Card{
			"Alice":   prestigeCard("From Alice"),
			"Bob":     prestigeCard("From Bob"),
			"Charlie": prestigeCard("From Charlie"),
		})
		rotateHands(g, age, hands)
		// Alice takes her right neighbor's hand.
		if hands["Alice"][0].Name != "From Bob" {
			t.Errorf("%s: Alice holds %s, want From Bob", age, hands["Alice"][0].Name)
		}
		if hands["Bob"][0].Name != "From Charlie" {
			t.Errorf("%s: Bob holds %s, want From Charlie", age, hands["Bob"][0].Name)
		}
		if hands["Charlie"][0].Name != "From Alice" {
			t.Errorf("%s: Charlie holds %s, want From Alice", age, hands["Charlie"][0].Name)
		}
	}
}

func TestRotateHandsPassesLeftInMiddleAge(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	hands := singleCardHands(g, map[PlayerID]*draft.Card{
		"Alice":   prestigeCard("From Alice"),
		"Bob":     prestigeCard("From Bob"),
		"Charlie": prestigeCard("From Charlie"),
	})
	rotateHands(g, draft.AgeII, hands)
	if hands["Alice"][0].Name != "From Charlie" {
		t.Errorf("Alice holds %s, want From Charlie", hands["Alice"][0].Name)
	}
	if hands["Bob"][0].Name != "From Alice" {
		t.Errorf("Bob holds %s, want From Alice", hands["Bob"][0].Name)
	}
	if hands["Charlie"][0].Name != "From Bob" {
		t.Errorf("Charlie holds %s, want From Bob", hands["Charlie"][0].Name)
	}
}

func TestRotateHandsKeepsEveryCard(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	hands := Hands{
		"Alice":   {prestigeCard("A1"), prestigeCard("A2")},
		"Bob":     {prestigeCard("B1")},
		"Charlie": {prestigeCard("C1"), prestigeCard("C2"), prestigeCard("C3")},
	}
	before := make(map[*draft.Card]bool)
	for _, h := range hands {
		for _, c := range h {
			before[c] = true
		}
	}
	rotateHands(g, draft.AgeI, hands)
	after := 0
	for _, h := range hands {
		for _, c := range h {
			if !before[c] {
				t.Errorf("card %s appeared from nowhere", c.Name)
			}
			after++
		}
	}
	if after != len(before) {
		t.Errorf("cards = %d, want %d", after, len(before))
	}
}

func TestPlayAgeRunsSevenTurnsAndSweeps(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	m := testMatch(g, rec, map[PlayerID]DecisionSource{
		"Alice": dropSource(), "Bob": dropSource(), "Charlie": dropSource(),
	})
	m.catalog = newGenCatalog(3)

	if err := m.playAge(context.Background(), draft.AgeI); err != nil {
		t.Fatalf("playAge: %v", err)
	}

	// Six acting turns drop 18 cards; the undrafted seventh cards sweep in.
	if g.DiscardCount() != 3*HandSize {
		t.Errorf("discard = %d, want %d", g.DiscardCount(), 3*HandSize)
	}
	for _, id := range g.seating {
		p := g.players[id]
		if p.Funds != StartingFunds+6*DropReward {
			t.Errorf("%s funds = %d, want %d", id, p.Funds, StartingFunds+6*DropReward)
		}
		if len(p.Poaching) != 0 {
			t.Errorf("%s recorded poaching on an all-tie age: %v", id, p.Poaching)
		}
	}
	if got := len(rec.ofType(EventTurnStarted)); got != 6 {
		t.Errorf("acting turns = %d, want 6", got)
	}
	if got := len(rec.ofType(EventPoachingResolved)); got != 6 {
		t.Errorf("poaching comparisons = %d, want 6", got)
	}
	if len(rec.ofType(EventAgeStarted)) != 1 || len(rec.ofType(EventAgeEnded)) != 1 {
		t.Error("age bracketing events missing")
	}
}

func TestPlayAgeEfficiencyKeepsOwnSeventhCard(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	g.players["Alice"].Cards = append(g.players["Alice"].Cards,
		testCard("Helix Stage", draft.KindStage, draft.Efficiency{}))

	var afterSixth, seventh string
	aliceSource := &funcSource{decide: func(req TurnRequest) (TurnDecision, error) {
		switch req.Turn {
		case 6:
			afterSixth = req.Hand[1].Name
		case 7:
			seventh = req.Hand[0].Name
		}
		return TurnDecision{Action: Drop, Card: req.Hand[0]}, nil
	}}
	m := testMatch(g, nil, map[PlayerID]DecisionSource{
		"Alice": aliceSource, "Bob": dropSource(), "Charlie": dropSource(),
	})
	m.catalog = newGenCatalog(3)

	if err := m.playAge(context.Background(), draft.AgeI); err != nil {
		t.Fatalf("playAge: %v", err)
	}
	if afterSixth == "" || seventh == "" {
		t.Fatal("turns not observed")
	}
	// No rotation after the sixth turn, so the card left in hand is the one
	// offered on the seventh.
	if seventh != afterSixth {
		t.Errorf("seventh-turn card %s, want the sixth-turn leftover %s", seventh, afterSixth)
	}
	if g.DiscardCount() != 3*HandSize {
		t.Errorf("discard = %d, want %d", g.DiscardCount(), 3*HandSize)
	}
}

func TestPlayAgeFailsOnThinDeck(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	m := testMatch(g, nil, map[PlayerID]DecisionSource{
		"Alice": dropSource(), "Bob": dropSource(), "Charlie": dropSource(),
	})
	cat := newGenCatalog(3)
	cat.ages[draft.AgeI] = cat.ages[draft.AgeI][:5]
	m.catalog = cat

	err := m.playAge(context.Background(), draft.AgeI)
	if !errors.Is(err, ErrShortDeck) {
		t.Fatalf("err = %v, want short deck", err)
	}
}

func TestResolvePoachingComparesBothNeighbors(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	rec := &recorder{}
	m := testMatch(g, rec, nil)
	g.players["Alice"].Cards = append(g.players["Alice"].Cards,
		testCard("Security Fence", draft.KindPoaching, draft.Poaching{Strength: 1}),
		testCard("Guard Desk", draft.KindPoaching, draft.Poaching{Strength: 1}))
	g.players["Bob"].Cards = append(g.players["Bob"].Cards,
		testCard("Watch Office", draft.KindPoaching, draft.Poaching{Strength: 1}))
	g.players["Charlie"].Cards = append(g.players["Charlie"].Cards,
		testCard("Night Patrol", draft.KindPoaching, draft.Poaching{Strength: 1}))

	m.resolvePoaching(draft.AgeII)

	alice := g.players["Alice"].Poaching
	if len(alice) != 2 || alice[0].Defeated || alice[1].Defeated {
		t.Errorf("Alice outcomes = %v, want two victories", alice)
	}
	for _, o := range alice {
		if o.Age != draft.AgeII || o.Points() != 3 {
			t.Errorf("outcome = %v, want a 3-point second-age victory", o)
		}
	}
	bob := g.players["Bob"].Poaching
	if len(bob) != 1 || !bob[0].Defeated || bob[0].Points() != -1 {
		t.Errorf("Bob outcomes = %v, want a single defeat", bob)
	}
	charlie := g.players["Charlie"].Poaching
	if len(charlie) != 1 || !charlie[0].Defeated {
		t.Errorf("Charlie outcomes = %v, want a single defeat", charlie)
	}

	events := rec.ofType(EventPoachingResolved)
	if len(events) != 6 {
		t.Fatalf("events = %d, want 6", len(events))
	}
	ties := 0
	for _, e := range events {
		pr := e.(PoachingResolved)
		if pr.Outcome == nil {
			ties++
			if pr.Mine != pr.Theirs {
				t.Errorf("tie reported on %d vs %d", pr.Mine, pr.Theirs)
			}
		}
	}
	// Bob against Charlie, seen from both sides.
	if ties != 2 {
		t.Errorf("ties = %d, want 2", ties)
	}
}

func TestResolvePoachingScalesPointsByAge(t *testing.T) {
	t.Parallel()
	for _, tt := range []struct {
		age  draft.Age
		want int
	}{
		{draft.AgeI, 1},
		{draft.AgeII, 3},
		{draft.AgeIII, 5},
	} {
		o := PoachingOutcome{Age: tt.age}
		if got := o.Points(); got != tt.want {
			t.Errorf("%s victory = %d, want %d", tt.age, got, tt.want)
		}
	}
}
