// Package bot provides in-process decision sources of varying skill. Every
// bot plans with the same public information a remote player would see, so
// anything a bot submits is a decision the engine accepts.
package bot

import (
	"slices"

	"github.com/lox/draftforbots/draft"
	"github.com/lox/draftforbots/internal/game"
)

// move is one legal decision a bot may submit this turn, annotated with the
// funds it spends so strategies can weigh alternatives.
type move struct {
	decision game.TurnDecision
	spend    int
}

// playMoves enumerates the hand cards the seat can construct this turn,
// each paired with a payment path the engine is guaranteed to accept.
// Cards whose name is already in the tableau are skipped.
func playMoves(req game.TurnRequest) []move {
	seat := req.Table.Seat(req.Player)
	if seat == nil {
		return nil
	}
	var out []move
	for _, card := range req.Hand {
		if holdsName(seat, card.Name) {
			continue
		}
		ex, spend, ok := planConstruction(req.Table, seat, card)
		if !ok {
			continue
		}
		out = append(out, move{
			decision: game.TurnDecision{Action: game.Play, Card: card, Exchange: ex},
			spend:    spend,
		})
	}
	return out
}

// buildMove plans a company stage build sacrificing the given hand card.
// ok is false when every stage is built or the next one is out of reach.
func buildMove(req game.TurnRequest, sacrifice *draft.Card) (move, bool) {
	seat := req.Table.Seat(req.Player)
	if seat == nil || seat.NextStage == nil {
		return move{}, false
	}
	ex, spend, ok := planConstruction(req.Table, seat, seat.NextStage)
	if !ok {
		return move{}, false
	}
	return move{
		decision: game.TurnDecision{Action: game.BuildCompany, Card: sacrifice, Exchange: ex},
		spend:    spend,
	}, true
}

// planConstruction finds a payment path for card: the printed cost against
// the seat's own production, a held link, an unspent entitlement, or
// failing those an exchange assembled from the neighbors' fixed tradeable
// output at the undiscounted unit price. Trade discounts only ever lower
// the final bill, so the returned spend is an upper bound and a plan that
// fits the seat's funds here still fits at resolution.
func planConstruction(table game.TableView, seat *game.SeatView, card *draft.Card) (game.Exchange, int, bool) {
	fixed, choices := seat.Production()
	if card.Cost.Funding <= seat.Funds && game.CanCover(fixed, choices, card.Cost.Resources) {
		return nil, card.Cost.Funding, true
	}
	if linked(seat, card.Name) {
		return nil, 0, true
	}
	if card.Kind.Draftable() && slices.Contains(seat.UnusedOpportunities, table.Age) {
		return nil, 0, true
	}

	// Buy the gap between the printed cost and our fixed output. Choice
	// groups are left out of the gap on purpose: committing them here could
	// double-book a pick the paid check spends elsewhere.
	missing := card.Cost.Resources.Minus(fixed)
	if missing.IsZero() {
		return nil, 0, false // covered, but the funding cost is not
	}
	ex, units, ok := fillFromNeighbors(table, seat, missing)
	if !ok {
		return nil, 0, false
	}
	spend := card.Cost.Funding + units*game.BaseExchangePrice
	if spend > seat.Funds {
		return nil, 0, false
	}
	return ex, spend, true
}

// fillFromNeighbors sources every unit of missing from the two neighbors'
// fixed tradeable production, left first. Choice production is ignored:
// an option group guarantees only one of its picks, and the engine prices
// whatever is requested against the full printed cost anyway.
func fillFromNeighbors(table game.TableView, seat *game.SeatView, missing draft.Resources) (game.Exchange, int, bool) {
	supply := make([]draft.Resources, len(draft.BothDirections))
	for i, dir := range draft.BothDirections {
		neighbor := table.Seat(seat.Neighbor(dir))
		if neighbor == nil {
			return nil, 0, false
		}
		supply[i], _ = neighbor.Tradeable()
	}

	ex := game.Exchange{}
	units := 0
	for i, need := range missing {
		r := draft.Resource(i)
		for dirIdx, dir := range draft.BothDirections {
			if need == 0 {
				break
			}
			take := min(need, supply[dirIdx].Count(r))
			if take == 0 {
				continue
			}
			ex[dir] = ex[dir].Plus(draft.Of(r, take))
			need -= take
			units += take
		}
		if need > 0 {
			return nil, 0, false
		}
	}
	return ex, units, true
}

// holdsName reports whether the seat's tableau already carries a card of
// the given name.
func holdsName(seat *game.SeatView, name string) bool {
	for _, c := range seat.Cards {
		if c.Name == name {
			return true
		}
	}
	return false
}

// linked reports whether a held card grants free construction of name.
func linked(seat *game.SeatView, name string) bool {
	for _, c := range seat.Cards {
		for _, e := range c.Effects {
			u, ok := e.(draft.Unlocks)
			if !ok {
				continue
			}
			if slices.Contains(u.Names, name) {
				return true
			}
		}
	}
	return false
}
