package game

import (
	"strings"
	"testing"

	"github.com/lox/draftforbots/draft"
)

func TestPlanExchangePricesPerUnit(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	alice := g.players["Alice"]
	bob := g.players["Bob"] // Alice's right neighbor
	bob.Cards = append(bob.Cards, producer("Sawmill", draft.Timber, 2))
	alice.Funds = 10

	plan, err := g.planExchange(alice, Exchange{draft.Right: draft.Of(draft.Timber, 2)}, DefaultExchangeRate, g.market())
	if err != nil {
		t.Fatalf("plan rejected: %v", err)
	}
	if plan.cost != 2*BaseExchangePrice {
		t.Errorf("two units should cost %d, got %d", 2*BaseExchangePrice, plan.cost)
	}
	if plan.granted != draft.Of(draft.Timber, 2) {
		t.Errorf("granted %v", plan.granted)
	}
	if plan.credits["Bob"] != 2*BaseExchangePrice {
		t.Errorf("Bob is owed %d, want %d", plan.credits["Bob"], 2*BaseExchangePrice)
	}
	if alice.Funds != 10 {
		t.Errorf("planning must not move funds, Alice has %d", alice.Funds)
	}
	if bob.Funds != StartingFunds {
		t.Errorf("planning must not move funds, Bob has %d", bob.Funds)
	}
}

func TestPlanExchangeRejectsUnaffordable(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	alice := g.players["Alice"]
	bob := g.players["Bob"]
	bob.Cards = append(bob.Cards, producer("Sawmill", draft.Timber, 2))
	alice.Funds = 3 // two units cost 4

	_, err := g.planExchange(alice, Exchange{draft.Right: draft.Of(draft.Timber, 2)}, DefaultExchangeRate, g.market())
	if !IsRuleViolation(err) {
		t.Fatalf("expected rule violation, got %v", err)
	}
	if alice.Funds != 3 {
		t.Errorf("rejected exchange changed funds to %d", alice.Funds)
	}
}

func TestPlanExchangeRejectsUnavailableGoods(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	alice := g.players["Alice"]
	g.players["Bob"].Cards = append(g.players["Bob"].Cards, producer("Sawmill", draft.Timber, 1))
	alice.Funds = 20

	// Bob produces timber, not steel.
	_, err := g.planExchange(alice, Exchange{draft.Right: draft.Of(draft.Steel, 1)}, DefaultExchangeRate, g.market())
	if !IsRuleViolation(err) {
		t.Fatalf("expected rule violation, got %v", err)
	}
	// And one timber is fine, but not two.
	if _, err := g.planExchange(alice, Exchange{draft.Right: draft.Of(draft.Timber, 1)}, DefaultExchangeRate, g.market()); err != nil {
		t.Fatalf("single unit should be available: %v", err)
	}
	_, err = g.planExchange(alice, Exchange{draft.Right: draft.Of(draft.Timber, 2)}, DefaultExchangeRate, g.market())
	if !IsRuleViolation(err) {
		t.Fatalf("expected rule violation for the second unit, got %v", err)
	}
}

func TestPlanExchangeHonorsChoiceProduction(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	alice := g.players["Alice"]
	alice.Funds = 20
	bob := g.players["Bob"]
	choice := testCard("Quarry Works", draft.KindSupplier, draft.Choice(draft.Silicon, draft.Steel))
	bob.Cards = append(bob.Cards, choice)

	// Either good alone is available.
	for _, r := range []draft.Resource{draft.Silicon, draft.Steel} {
		if _, err := g.planExchange(alice, Exchange{draft.Right: draft.Of(r, 1)}, DefaultExchangeRate, g.market()); err != nil {
			t.Fatalf("%s should be available: %v", r, err)
		}
	}
	// Both at once exceed the single pick.
	want := draft.NewResources(draft.Silicon, draft.Steel)
	if _, err := g.planExchange(alice, Exchange{draft.Right: want}, DefaultExchangeRate, g.market()); !IsRuleViolation(err) {
		t.Fatalf("choice card supplied both options at once: %v", err)
	}
}

func TestPlanExchangeIgnoresCommerceProduction(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	alice := g.players["Alice"]
	alice.Funds = 20
	bob := g.players["Bob"]
	forum := testCard("Trade Forum", draft.KindCommerce, draft.Choice(draft.Software, draft.Design))
	bob.Cards = append(bob.Cards, forum)

	_, err := g.planExchange(alice, Exchange{draft.Right: draft.Of(draft.Software, 1)}, DefaultExchangeRate, g.market())
	if !IsRuleViolation(err) {
		t.Fatalf("commerce production should be private, got %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "cannot supply") {
		t.Errorf("unexpected reason: %v", err)
	}
}

func TestPlanExchangeCoversBothDirections(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	alice := g.players["Alice"]
	alice.Funds = 10
	g.players["Bob"].Cards = append(g.players["Bob"].Cards, producer("Sawmill", draft.Timber, 1))
	g.players["Charlie"].Cards = append(g.players["Charlie"].Cards, producer("Steel Mine", draft.Steel, 1))

	plan, err := g.planExchange(alice, Exchange{
		draft.Right: draft.Of(draft.Timber, 1),
		draft.Left:  draft.Of(draft.Steel, 1),
	}, DefaultExchangeRate, g.market())
	if err != nil {
		t.Fatalf("plan rejected: %v", err)
	}
	if plan.cost != 2*BaseExchangePrice {
		t.Errorf("cost %d, want %d", plan.cost, 2*BaseExchangePrice)
	}
	if plan.credits["Bob"] != BaseExchangePrice || plan.credits["Charlie"] != BaseExchangePrice {
		t.Errorf("credits split wrong: %v", plan.credits)
	}
	if len(plan.lines) != 2 {
		t.Errorf("expected one line per direction, got %d", len(plan.lines))
	}
}

func TestDefaultExchangeRateAppliesBestDiscount(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	alice := g.players["Alice"]
	alice.Cards = append(alice.Cards,
		testCard("Import Desk East", draft.KindCommerce,
			draft.Discount{Directions: []draft.Direction{draft.Right}, Price: 1}))

	if got := DefaultExchangeRate(alice, draft.Right, draft.Timber); got != 1 {
		t.Errorf("discounted raw unit to the right costs %d, want 1", got)
	}
	if got := DefaultExchangeRate(alice, draft.Left, draft.Timber); got != BaseExchangePrice {
		t.Errorf("undiscounted direction costs %d, want %d", got, BaseExchangePrice)
	}
	if got := DefaultExchangeRate(alice, draft.Right, draft.Media); got != BaseExchangePrice {
		t.Errorf("refined goods should not ride a raw discount, got %d", got)
	}
}

func TestExchangeFundsNeverGoNegative(t *testing.T) {
	t.Parallel()
	g := testState("Alice", "Bob", "Charlie")
	alice := g.players["Alice"]
	alice.Funds = 2
	bob := g.players["Bob"]
	bob.Cards = append(bob.Cards, producer("Sawmill", draft.Timber, 2))

	hand := []*draft.Card{testCard("Anything", draft.KindPrestige,
		draft.AddVictory{Category: draft.CategoryPrestige, Points: 1})}
	dec := TurnDecision{
		Action:   Play,
		Card:     hand[0],
		Exchange: Exchange{draft.Right: draft.Of(draft.Timber, 2)}, // costs 4
	}
	_, err := g.resolveAction(alice, hand, dec, DefaultExchangeRate, draft.AgeI, g.market())
	if !IsRuleViolation(err) {
		t.Fatalf("expected rule violation, got %v", err)
	}
	if alice.Funds != 2 {
		t.Errorf("funds moved on a rejected decision: %d", alice.Funds)
	}
}
