package game

import (
	"context"
	"fmt"

	"github.com/lox/draftforbots/draft"
)

// noRotateTurn is the one turn after which hands stay put, leaving each
// player their final two cards for the end of the age.
const noRotateTurn = 6

// playAge runs one age end to end: deal, seven turns with rotation between
// them, sweep the leftover hands, then the poaching comparisons.
func (m *Match) playAge(ctx context.Context, age draft.Age) error {
	m.narrator.Notice(AgeStarted{Age: age})
	m.log.Info().Stringer("age", age).Msg("age started")

	hands, err := m.state.Deal(age, m.catalog)
	if err != nil {
		return err
	}
	for turn := 1; turn <= TurnsPerAge; turn++ {
		if err := m.playTurn(ctx, age, turn, hands); err != nil {
			return fmt.Errorf("%s turn %d: %w", age, turn, err)
		}
		if turn != noRotateTurn {
			rotateHands(m.state, age, hands)
		}
	}
	m.sweepHands(hands)
	m.resolvePoaching(age)
	m.narrator.Notice(AgeEnded{Age: age})
	return nil
}

// rotateHands passes every hand one seat along. In the middle age each
// player takes their left neighbor's hand; in the other two, their right
// neighbor's. The cards themselves never change, only who holds them.
func rotateHands(g *GameState, age draft.Age, hands Hands) {
	dir := draft.Right
	if age == draft.AgeII {
		dir = draft.Left
	}
	next := make(Hands, len(hands))
	for _, id := range g.seating {
		next[id] = hands[g.players[id].Neighbor(dir)]
	}
	for _, id := range g.seating {
		hands[id] = next[id]
	}
}

// sweepHands moves whatever is left in every hand to the discard pile, in
// seating order.
func (m *Match) sweepHands(hands Hands) {
	for _, id := range m.state.seating {
		m.state.discard = append(m.state.discard, hands[id]...)
		hands[id] = nil
	}
}

// resolvePoaching compares each player's total strength with both
// neighbors and records the outcomes, left then right. Ties record
// nothing.
func (m *Match) resolvePoaching(age draft.Age) {
	strengths := make(map[PlayerID]int, len(m.state.seating))
	for _, id := range m.state.seating {
		strengths[id] = m.state.players[id].poachingStrength()
	}
	for _, id := range m.state.seating {
		p := m.state.players[id]
		for _, dir := range draft.BothDirections {
			opp := p.Neighbor(dir)
			mine, theirs := strengths[id], strengths[opp]
			var outcome *PoachingOutcome
			switch {
			case mine < theirs:
				outcome = &PoachingOutcome{Age: age, Defeated: true}
			case mine > theirs:
				outcome = &PoachingOutcome{Age: age}
			}
			if outcome != nil {
				p.Poaching = append(p.Poaching, *outcome)
			}
			m.narrator.Notice(PoachingResolved{
				Player: id, Opponent: opp, Age: age,
				Mine: mine, Theirs: theirs, Outcome: outcome,
			})
		}
	}
}
