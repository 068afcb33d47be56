// Package catalog provides card and company content for the drafting
// engine: a built-in base set, an HCL loader for custom sets, and
// adequacy validation.
package catalog

import (
	"fmt"

	"github.com/lox/draftforbots/draft"
)

// Catalog holds a full content set: one deck per age, the communal pool,
// and the company roster. It satisfies the engine's catalog interface.
type Catalog struct {
	ages      map[draft.Age][]*draft.Card
	community []*draft.Card
	companies []draft.Company
}

// AgeCards returns every printed copy for an age, including copies gated
// behind larger tables. Callers must not modify the returned slice.
func (c *Catalog) AgeCards(age draft.Age) []*draft.Card {
	return c.ages[age]
}

// CommunityCards returns the communal pool the final age draws from.
func (c *Catalog) CommunityCards() []*draft.Card {
	return c.community
}

// Companies returns the company roster.
func (c *Catalog) Companies() []draft.Company {
	return c.companies
}

// CardCount returns the total number of printed copies across all ages
// and the communal pool.
func (c *Catalog) CardCount() int {
	n := len(c.community)
	for _, cards := range c.ages {
		n += len(cards)
	}
	return n
}

// handSize and communityExtra mirror the engine's dealing rules for
// validation.
const (
	handSize       = 7
	communityExtra = 2
)

// Validate checks that the catalog can host a table of the given size:
// each age deck must fill every hand, the communal pool must cover the
// final age's draw, and there must be a company per seat. It also checks
// structural card sanity regardless of table size.
func (c *Catalog) Validate(players int) error {
	if err := c.validateContent(); err != nil {
		return err
	}
	for _, age := range draft.Ages {
		pool := 0
		for _, card := range c.ages[age] {
			if card.MinPlayers <= players {
				pool++
			}
		}
		need := players * handSize
		if age == draft.AgeIII {
			need -= players + communityExtra
		}
		if pool < need {
			return fmt.Errorf("%s deck holds %d cards for %d players, need %d", age, pool, players, need)
		}
	}
	if len(c.community) < players+communityExtra {
		return fmt.Errorf("communal pool holds %d cards for %d players, need %d", len(c.community), players, players+communityExtra)
	}
	if len(c.companies) < players {
		return fmt.Errorf("%d companies for %d players", len(c.companies), players)
	}
	return nil
}

// validateContent checks card and company structure: names, kinds, effect
// payloads, and that every unlock target names a real card.
func (c *Catalog) validateContent() error {
	names := make(map[string]bool)
	collect := func(cards []*draft.Card) error {
		for _, card := range cards {
			if card.Name == "" {
				return fmt.Errorf("card with empty name in catalog")
			}
			names[card.Name] = true
			if err := validateEffects(card); err != nil {
				return err
			}
		}
		return nil
	}
	for _, age := range draft.Ages {
		if err := collect(c.ages[age]); err != nil {
			return err
		}
	}
	if err := collect(c.community); err != nil {
		return err
	}
	for _, card := range c.community {
		if card.Kind != draft.KindCommunity {
			return fmt.Errorf("communal card %s has kind %s", card.Name, card.Kind)
		}
	}

	for _, co := range c.companies {
		if co.Name == "" {
			return fmt.Errorf("company with empty name")
		}
		for _, profile := range []draft.CompanyProfile{co.SideA, co.SideB} {
			if profile.Base == nil || profile.Base.Kind != draft.KindBase {
				return fmt.Errorf("company %s side %s has no base card", co.Name, profile.Side)
			}
			if len(profile.Stages) == 0 {
				return fmt.Errorf("company %s side %s has no stages", co.Name, profile.Side)
			}
			for _, stage := range profile.Stages {
				if stage.Kind != draft.KindStage {
					return fmt.Errorf("company %s stage %s has kind %s", co.Name, stage.Name, stage.Kind)
				}
				names[stage.Name] = true
				if err := validateEffects(stage); err != nil {
					return err
				}
			}
		}
	}

	// Unlock targets must exist somewhere in the set, or the link is dead.
	check := func(cards []*draft.Card) error {
		for _, card := range cards {
			for _, e := range card.Effects {
				u, ok := e.(draft.Unlocks)
				if !ok {
					continue
				}
				for _, target := range u.Names {
					if !names[target] {
						return fmt.Errorf("%s unlocks unknown card %s", card.Name, target)
					}
				}
			}
		}
		return nil
	}
	for _, age := range draft.Ages {
		if err := check(c.ages[age]); err != nil {
			return err
		}
	}
	return check(c.community)
}

func validateEffects(card *draft.Card) error {
	for _, e := range card.Effects {
		switch eff := e.(type) {
		case draft.Produce:
			if len(eff.Options) == 0 {
				return fmt.Errorf("%s produces nothing", card.Name)
			}
			for _, opt := range eff.Options {
				if opt.IsZero() {
					return fmt.Errorf("%s has an empty production option", card.Name)
				}
			}
		case draft.Poaching:
			if eff.Strength <= 0 {
				return fmt.Errorf("%s has poaching strength %d", card.Name, eff.Strength)
			}
		case draft.AddVictory:
			if eff.Points == 0 {
				return fmt.Errorf("%s grants zero victory points", card.Name)
			}
		case draft.GainFunding:
			if eff.Amount <= 0 {
				return fmt.Errorf("%s grants %d funds", card.Name, eff.Amount)
			}
		case draft.Discount:
			if eff.Price < 0 || len(eff.Directions) == 0 {
				return fmt.Errorf("%s has a malformed discount", card.Name)
			}
		case draft.Opportunity:
			if eff.Age < draft.AgeI || eff.Age > draft.AgeIII {
				return fmt.Errorf("%s has an opportunity for an unknown age", card.Name)
			}
		case draft.Unlocks:
			if len(eff.Names) == 0 {
				return fmt.Errorf("%s unlocks nothing", card.Name)
			}
		}
	}
	return nil
}
