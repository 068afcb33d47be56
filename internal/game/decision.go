package game

import (
	"github.com/lox/draftforbots/draft"
)

// Action selects what a player does with their chosen card.
type Action uint8

const (
	Play Action = iota
	Drop
	BuildCompany
	numActions
)

func (a Action) String() string {
	if a >= numActions {
		return "Unknown"
	}
	return [...]string{"Play", "Drop", "BuildCompany"}[a]
}

// Exchange requests resources from neighbors for one turn, keyed by
// direction. Granted resources only count toward this turn's construction
// check; they are never banked.
type Exchange map[draft.Direction]draft.Resources

// IsZero reports whether the exchange requests nothing.
func (e Exchange) IsZero() bool {
	for _, rs := range e {
		if !rs.IsZero() {
			return false
		}
	}
	return true
}

// TurnDecision is one player's simultaneous choice for a turn: a card from
// their hand, what to do with it, and any neighbor exchange funding the
// construction. For BuildCompany the card is the one sacrificed to the
// stage.
type TurnDecision struct {
	Action   Action
	Card     *draft.Card
	Exchange Exchange
}
