package game

import (
	"slices"

	"github.com/lox/draftforbots/draft"
)

// Capability scans derive what a player can currently do from the cards in
// their tableau. Cards are immutable, so everything here is a pure read;
// the one piece of consumption state, used Opportunity entitlements, lives
// on the player.

// hasEfficiency reports whether the tableau grants the seventh-card play.
func (p *PlayerState) hasEfficiency() bool {
	for _, c := range p.Cards {
		for _, e := range c.Effects {
			if _, ok := e.(draft.Efficiency); ok {
				return true
			}
		}
	}
	return false
}

// hasCopyCommunity reports whether the tableau grants a community copy
// after the final age.
func (p *PlayerState) hasCopyCommunity() bool {
	for _, c := range p.Cards {
		for _, e := range c.Effects {
			if _, ok := e.(draft.CopyCommunity); ok {
				return true
			}
		}
	}
	return false
}

// opportunityFor reports whether the player holds an unconsumed free-build
// entitlement for the age.
func (p *PlayerState) opportunityFor(age draft.Age) bool {
	if p.usedOpportunities[age] {
		return false
	}
	for _, c := range p.Cards {
		for _, e := range c.Effects {
			if o, ok := e.(draft.Opportunity); ok && o.Age == age {
				return true
			}
		}
	}
	return false
}

func (p *PlayerState) consumeOpportunity(age draft.Age) {
	if p.usedOpportunities == nil {
		p.usedOpportunities = make(map[draft.Age]bool)
	}
	p.usedOpportunities[age] = true
}

// unusedOpportunities lists ages whose entitlement is printed and not yet
// consumed, in age order.
func (p *PlayerState) unusedOpportunities() []draft.Age {
	var out []draft.Age
	for _, age := range draft.Ages {
		if p.opportunityFor(age) {
			out = append(out, age)
		}
	}
	return out
}

// unlocked reports whether a held card freely unlocks the named card.
func (p *PlayerState) unlocked(name string) bool {
	for _, c := range p.Cards {
		for _, e := range c.Effects {
			if u, ok := e.(draft.Unlocks); ok && slices.Contains(u.Names, name) {
				return true
			}
		}
	}
	return false
}

// produceScan sums fixed production and collects choice option groups
// across cards, optionally filtered by kind.
func produceScan(cards []*draft.Card, include func(*draft.Card) bool) (draft.Resources, [][]draft.Resources) {
	var fixed draft.Resources
	var choices [][]draft.Resources
	for _, c := range cards {
		if include != nil && !include(c) {
			continue
		}
		for _, e := range c.Effects {
			prod, ok := e.(draft.Produce)
			if !ok {
				continue
			}
			switch len(prod.Options) {
			case 0:
			case 1:
				fixed = fixed.Plus(prod.Options[0])
			default:
				choices = append(choices, prod.Options)
			}
		}
	}
	return fixed, choices
}

// production returns everything the tableau can produce for the player's
// own construction checks.
func (p *PlayerState) production() (draft.Resources, [][]draft.Resources) {
	return produceScan(p.Cards, nil)
}

// tradeable returns the production neighbors may buy from: supplier,
// workshop, and company base output only. Commerce-driven production is
// private.
func (p *PlayerState) tradeable() (draft.Resources, [][]draft.Resources) {
	return produceScan(p.Cards, func(c *draft.Card) bool {
		switch c.Kind {
		case draft.KindSupplier, draft.KindWorkshop, draft.KindBase:
			return true
		default:
			return false
		}
	})
}

// discountPrice returns the best discounted unit price the player holds for
// buying resource r from the neighbor in dir.
func (p *PlayerState) discountPrice(dir draft.Direction, r draft.Resource) (int, bool) {
	best, found := 0, false
	for _, c := range p.Cards {
		for _, e := range c.Effects {
			d, ok := e.(draft.Discount)
			if !ok || d.Refined == r.Raw() || !slices.Contains(d.Directions, dir) {
				continue
			}
			if !found || d.Price < best {
				best, found = d.Price, true
			}
		}
	}
	return best, found
}

// poachingStrength sums strength across the tableau.
func (p *PlayerState) poachingStrength() int {
	total := 0
	for _, c := range p.Cards {
		total += c.PoachingStrength()
	}
	return total
}

// kindCount counts tableau cards of the given kind.
func (p *PlayerState) kindCount(k draft.Kind) int {
	n := 0
	for _, c := range p.Cards {
		if c.Kind == k {
			n++
		}
	}
	return n
}

// defeatCount counts recorded poaching defeats.
func (p *PlayerState) defeatCount() int {
	n := 0
	for _, o := range p.Poaching {
		if o.Defeated {
			n++
		}
	}
	return n
}

// researchTally counts research tags and wildcards across the tableau.
func (p *PlayerState) researchTally() ([draft.NumResearchTags]int, int) {
	var counts [draft.NumResearchTags]int
	wildcards := 0
	for _, c := range p.Cards {
		for _, e := range c.Effects {
			switch eff := e.(type) {
			case draft.Research:
				counts[eff.Tag]++
			case draft.Wildcard:
				wildcards++
			}
		}
	}
	return counts, wildcards
}

// scopeTargets expands a trigger scope into concrete players.
func (g *GameState) scopeTargets(p *PlayerState, s draft.Scope) []*PlayerState {
	switch s {
	case draft.ScopeSelf:
		return []*PlayerState{p}
	case draft.ScopeNeighbors:
		return []*PlayerState{g.players[p.Left], g.players[p.Right]}
	default:
		return []*PlayerState{p, g.players[p.Left], g.players[p.Right]}
	}
}

// count evaluates a trigger for the player against the live state.
func (g *GameState) count(p *PlayerState, tr draft.Trigger) int {
	if tr.Subject == draft.SubjectFlat {
		return 1
	}
	total := 0
	for _, t := range g.scopeTargets(p, tr.Scope) {
		switch tr.Subject {
		case draft.SubjectKindCards:
			total += t.kindCount(tr.Kind)
		case draft.SubjectCompanyStages:
			total += t.Stage
		case draft.SubjectPoachingDefeats:
			total += t.defeatCount()
		}
	}
	return total
}
