package game

import (
	"fmt"
	"slices"

	"github.com/lox/draftforbots/draft"
)

// actionResult is what one resolved decision leaves behind for the turn's
// later phases.
type actionResult struct {
	hand    []*draft.Card // the hand with the chosen card removed
	payouts AddMap        // deferred exchange credits plus any drop reward
	played  *draft.Card   // card that reached the tableau; nil for drops
	mode    PlayMode      // construction path, when a card was played
	stage   int           // stage number just built, when one was
	plan    exchangePlan
}

// resolveAction validates one player's decision end to end, then mutates.
// Validation covers hand membership, the exchange against the mkt snapshot,
// and the chosen action; any rule violation rejects the decision with
// funds, tableau, and discard pile untouched. The returned hand has the
// chosen card removed.
func (g *GameState) resolveAction(p *PlayerState, hand []*draft.Card, dec TurnDecision, rate ExchangeRate, age draft.Age, mkt market) (actionResult, error) {
	if len(hand) == 0 {
		return actionResult{}, fmt.Errorf("%w: %s", ErrEmptyHand, p.ID)
	}
	idx := slices.Index(hand, dec.Card)
	if idx < 0 {
		name := "nothing"
		if dec.Card != nil {
			name = dec.Card.Name
		}
		return actionResult{}, violation(p.ID, "%s is not in hand", name)
	}

	plan, err := g.planExchange(p, dec.Exchange, rate, mkt)
	if err != nil {
		return actionResult{}, err
	}
	budget := p.Funds - plan.cost

	var target *draft.Card
	var mode PlayMode
	stage := 0
	switch dec.Action {
	case Drop:
	case Play:
		target = dec.Card
		if mode, err = planPlay(p, target, plan.granted, budget, age); err != nil {
			return actionResult{}, err
		}
	case BuildCompany:
		if p.Stage >= p.Profile.MaxStage() {
			return actionResult{}, violation(p.ID, "all %d company stages already built", p.Profile.MaxStage())
		}
		target = p.Profile.Stages[p.Stage]
		if mode, err = planPlay(p, target, plan.granted, budget, age); err != nil {
			return actionResult{}, err
		}
		stage = p.Stage + 1
	default:
		return actionResult{}, violation(p.ID, "unknown action %d", dec.Action)
	}

	// Every check has passed; commit the whole decision.
	p.Funds -= plan.cost
	res := actionResult{
		hand:    slices.Delete(slices.Clone(hand), idx, idx+1),
		payouts: plan.credits,
		mode:    mode,
		stage:   stage,
		plan:    plan,
	}
	switch dec.Action {
	case Drop:
		g.discard = append(g.discard, dec.Card)
		res.payouts.Add(p.ID, DropReward)
	case Play:
		commitPlay(p, target, mode, age)
		res.played = target
	case BuildCompany:
		commitPlay(p, target, mode, age)
		p.Stage++
		res.played = target
	}
	return res, nil
}
