// Package game implements the rules engine for a three-age card-drafting
// economic game.
//
// The main type is Match, which runs a full game over a Catalog of cards
// and companies and a DecisionSource per seat: dealing, simultaneous turn
// resolution, hand rotation, end-of-age poaching, post-game effects, and
// final scoring.
//
// # Basic Usage
//
// Create and run a match:
//
//	seats := []game.Seat{
//	    {ID: "alice", Source: aliceBot},
//	    {ID: "bob", Source: bobBot},
//	    {ID: "carol", Source: carolBot},
//	}
//	m := game.NewMatch(cat, seats, game.WithSeed(42))
//	result, err := m.Run(ctx)
//
// # Determinism
//
// The engine's only source of randomness is an injected draw primitive: a
// func returning a uniform integer in [0, n). Matches with equal seeds,
// seats, and catalogs replay identically, including shuffles, company side
// picks, and community selection. Resolution always iterates the seating
// cycle, never map order.
//
// # Turn Resolution
//
// Every participant's decision is collected against the same pre-turn
// snapshot before any decision resolves. Resolution validates a decision
// end to end before mutating anything, so a rejected decision leaves
// funds, tableau, and discard pile untouched; the orchestrator then forces
// a drop of the first hand card so hand sizes stay aligned. Payouts apply
// in two phases: deferred credits from exchanges and drops first, then
// each played card's immediate funding yields against the post-payout
// state.
package game
