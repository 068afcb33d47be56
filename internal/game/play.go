package game

import (
	"github.com/lox/draftforbots/draft"
)

// PlayMode records which construction path admitted a card.
type PlayMode uint8

const (
	PlayPaid PlayMode = iota
	PlayFreeLink
	PlayOpportunity
	numPlayModes
)

func (m PlayMode) String() string {
	if m >= numPlayModes {
		return "Unknown"
	}
	return [...]string{"paid", "free link", "opportunity"}[m]
}

// planPlay decides which construction path admits the card, checked in
// precedence order: pay the printed cost, build free through a held link,
// or consume the age's Opportunity entitlement. budget is the funds left
// after the turn's exchange cost; extra holds the goods that exchange
// granted. Nothing is mutated.
func planPlay(p *PlayerState, card *draft.Card, extra draft.Resources, budget int, age draft.Age) (PlayMode, error) {
	for _, c := range p.Cards {
		if c.Name == card.Name {
			return 0, violation(p.ID, "%s is already in play", card.Name)
		}
	}
	fixed, choices := p.production()
	if card.Cost.Funding <= budget && covers(fixed.Plus(extra), choices, card.Cost.Resources) {
		return PlayPaid, nil
	}
	if p.unlocked(card.Name) {
		return PlayFreeLink, nil
	}
	if card.Kind.Draftable() && p.opportunityFor(age) {
		return PlayOpportunity, nil
	}
	return 0, violation(p.ID, "cannot afford %s", card.Name)
}

// commitPlay applies a planned play: pays the funding cost or consumes the
// entitlement, then moves the card into the tableau.
func commitPlay(p *PlayerState, card *draft.Card, mode PlayMode, age draft.Age) {
	switch mode {
	case PlayPaid:
		p.Funds -= card.Cost.Funding
	case PlayOpportunity:
		p.consumeOpportunity(age)
	}
	p.Cards = append(p.Cards, card)
}
