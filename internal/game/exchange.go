package game

import (
	"github.com/lox/draftforbots/draft"
)

// BaseExchangePrice is the undiscounted cost in funds of one traded unit.
const BaseExchangePrice = 2

// ExchangeRate prices one unit of a resource bought from the neighbor in
// the given direction. Injectable for house rules.
type ExchangeRate func(buyer *PlayerState, dir draft.Direction, r draft.Resource) int

// DefaultExchangeRate charges the base price per unit, honoring the best
// applicable trade discount the buyer holds.
func DefaultExchangeRate(buyer *PlayerState, dir draft.Direction, r draft.Resource) int {
	if price, ok := buyer.discountPrice(dir, r); ok {
		return price
	}
	return BaseExchangePrice
}

// stock is one seat's tradeable production at a point in time.
type stock struct {
	fixed   draft.Resources
	choices [][]draft.Resources
}

// market holds every seat's tradeable stock, captured before any decision
// in a turn resolves. Exchanges validate against it rather than the live
// tableau, so a card a neighbor plays this turn can never supply a
// simultaneous purchase.
type market map[PlayerID]stock

// market snapshots the tradeable production of every player.
func (g *GameState) market() market {
	mkt := make(market, len(g.players))
	for id, p := range g.players {
		fixed, choices := p.tradeable()
		mkt[id] = stock{fixed: fixed, choices: choices}
	}
	return mkt
}

// exchangePlan is a fully validated exchange, priced but not yet paid.
// Granted goods only feed this turn's construction check; credits are
// deferred to the turn's payout phase.
type exchangePlan struct {
	granted draft.Resources
	cost    int
	credits AddMap
	lines   []exchangeLine
}

type exchangeLine struct {
	dir   draft.Direction
	goods draft.Resources
	cost  int
}

// planExchange validates a requested exchange in full: each neighbor's
// stock in mkt must supply the requested goods and the buyer must cover
// the summed price across both directions. No funds move here; the caller
// debits plan.cost only once the whole decision is valid, so a rejected
// decision leaves the buyer untouched.
func (g *GameState) planExchange(p *PlayerState, ex Exchange, rate ExchangeRate, mkt market) (exchangePlan, error) {
	plan := exchangePlan{credits: AddMap{}}
	for _, dir := range draft.BothDirections {
		want := ex[dir]
		if want.IsZero() {
			continue
		}
		neighbor, err := g.Player(p.Neighbor(dir))
		if err != nil {
			return exchangePlan{}, err
		}
		st := mkt[neighbor.ID]
		if !covers(st.fixed, st.choices, want) {
			return exchangePlan{}, violation(p.ID, "%s cannot supply %s", neighbor.ID, want)
		}
		cost := 0
		for i, n := range want {
			if n > 0 {
				cost += rate(p, dir, draft.Resource(i)) * n
			}
		}
		plan.granted = plan.granted.Plus(want)
		plan.cost += cost
		plan.credits.Add(neighbor.ID, cost)
		plan.lines = append(plan.lines, exchangeLine{dir: dir, goods: want, cost: cost})
	}
	if plan.cost > p.Funds {
		return exchangePlan{}, violation(p.ID, "exchange costs %d with only %d funds", plan.cost, p.Funds)
	}
	return plan, nil
}
