package game

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lox/draftforbots/draft"
)

// playedEntry pairs a resolved play with its owner for the turn's later
// phases.
type playedEntry struct {
	player *PlayerState
	card   *draft.Card
}

// playTurn runs one simultaneous turn: gather every participant's decision
// against the pre-turn state, resolve them in seating order, apply the two
// payout phases, then honor recycling triggers. On the final turn of an age
// only players holding Efficiency act; everyone else sits out untouched.
func (m *Match) playTurn(ctx context.Context, age draft.Age, turn int, hands Hands) error {
	participants := m.participants(turn)
	if len(participants) == 0 {
		m.log.Debug().Int("turn", turn).Msg("no participants this turn")
		return nil
	}
	m.narrator.Notice(TurnStarted{Age: age, Turn: turn, Participants: participants})
	m.log.Debug().
		Stringer("age", age).
		Int("turn", turn).
		Int("participants", len(participants)).
		Msg("collecting decisions")

	decisions, err := m.collectDecisions(ctx, age, turn, participants, hands)
	if err != nil {
		return err
	}

	// Tradeable stock is frozen here: resolutions run in seating order, but
	// a card played earlier in the loop must not supply a later exchange.
	mkt := m.state.market()

	merged := AddMap{}
	var played []playedEntry
	for _, id := range participants {
		p := m.state.players[id]
		dec := decisions[id]
		res, err := m.state.resolveAction(p, hands[id], dec, m.rate, age, mkt)
		if err != nil {
			if !IsRuleViolation(err) {
				return err
			}
			m.log.Warn().Str("player", string(id)).Err(err).Msg("decision rejected, forcing drop")
			m.narrator.Notice(RuleViolated{Player: id, Reason: err.Error()})
			forced := TurnDecision{Action: Drop, Card: hands[id][0]}
			if res, err = m.state.resolveAction(p, hands[id], forced, m.rate, age, mkt); err != nil {
				return fmt.Errorf("forced drop for %s: %w", id, err)
			}
			m.narrator.Notice(CardDropped{Player: id, Forced: true})
		} else {
			m.narrateResolution(p, dec, res)
		}
		hands[id] = res.hand
		merged.Merge(res.payouts)
		if res.played != nil {
			played = append(played, playedEntry{player: p, card: res.played})
		}
	}

	m.applyPayouts(merged)
	m.applyYields(played)
	return m.applyRecycling(ctx, age, turn, played)
}

// participants lists who acts this turn, in seating order. The seventh turn
// belongs only to players whose tableau grants Efficiency.
func (m *Match) participants(turn int) []PlayerID {
	if turn < TurnsPerAge {
		return slices.Clone(m.state.seating)
	}
	var out []PlayerID
	for _, id := range m.state.seating {
		if m.state.players[id].hasEfficiency() {
			out = append(out, id)
		}
	}
	return out
}

// collectDecisions gathers every participant's decision against the same
// pre-turn snapshot. Nothing resolves until all decisions are in, so no
// source can observe another's choice for the turn.
func (m *Match) collectDecisions(ctx context.Context, age draft.Age, turn int, participants []PlayerID, hands Hands) (map[PlayerID]TurnDecision, error) {
	table := m.state.view(age, turn)
	decisions := make(map[PlayerID]TurnDecision, len(participants))

	if !m.parallel {
		for _, id := range participants {
			req := TurnRequest{Age: age, Turn: turn, Player: id, Hand: slices.Clone(hands[id]), Table: table}
			dec, err := m.sources[id].DecideTurn(ctx, req)
			if err != nil {
				return nil, fmt.Errorf("decision source for %s: %w", id, err)
			}
			decisions[id] = dec
		}
		return decisions, nil
	}

	var mu sync.Mutex
	eg, ctx := errgroup.WithContext(ctx)
	for _, id := range participants {
		req := TurnRequest{Age: age, Turn: turn, Player: id, Hand: slices.Clone(hands[id]), Table: table}
		eg.Go(func() error {
			dec, err := m.sources[id].DecideTurn(ctx, req)
			if err != nil {
				return fmt.Errorf("decision source for %s: %w", id, err)
			}
			mu.Lock()
			decisions[id] = dec
			mu.Unlock()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return decisions, nil
}

func (m *Match) narrateResolution(p *PlayerState, dec TurnDecision, res actionResult) {
	for _, line := range res.plan.lines {
		m.narrator.Notice(ExchangeMade{Player: p.ID, Direction: line.dir, Goods: line.goods, Cost: line.cost})
	}
	switch dec.Action {
	case Drop:
		m.narrator.Notice(CardDropped{Player: p.ID})
	case Play:
		m.narrator.Notice(CardPlayed{Player: p.ID, Card: res.played, Mode: res.mode})
	case BuildCompany:
		m.narrator.Notice(StageBuilt{Player: p.ID, Stage: res.stage, Card: res.played})
	}
}

// applyPayouts credits the merged deferred payouts in seating order.
func (m *Match) applyPayouts(merged AddMap) {
	for _, id := range m.state.seating {
		amount := merged[id]
		if amount == 0 {
			continue
		}
		p := m.state.players[id]
		p.Funds += amount
		m.narrator.Notice(PayoutApplied{Player: id, Amount: amount, Funds: p.Funds})
	}
}

// applyYields pays each played card's immediate funding, evaluated against
// the post-payout state.
func (m *Match) applyYields(played []playedEntry) {
	for _, e := range played {
		for _, eff := range e.card.Effects {
			gf, ok := eff.(draft.GainFunding)
			if !ok {
				continue
			}
			amount := gf.Amount * m.state.count(e.player, gf.Per)
			if amount == 0 {
				continue
			}
			e.player.Funds += amount
			m.narrator.Notice(CardYield{Player: e.player.ID, Card: e.card, Amount: amount})
		}
	}
}

// applyRecycling offers each player whose played card carries Recycling a
// pick from the discard pile as it stands when their trigger fires.
// Earlier picks in the same turn shrink the pile for later ones.
func (m *Match) applyRecycling(ctx context.Context, age draft.Age, turn int, played []playedEntry) error {
	for _, e := range played {
		if !hasRecycling(e.card) {
			continue
		}
		p := e.player
		if len(m.state.discard) == 0 {
			m.narrator.Notice(RecyclingSkipped{Player: p.ID})
			continue
		}
		req := RecycleRequest{
			Player:  p.ID,
			Discard: slices.Clone(m.state.discard),
			Table:   m.state.view(age, turn),
		}
		pick, err := m.sources[p.ID].PickRecycle(ctx, req)
		if err != nil {
			return fmt.Errorf("recycle pick for %s: %w", p.ID, err)
		}
		if pick == nil {
			m.narrator.Notice(RecyclingSkipped{Player: p.ID})
			continue
		}
		idx := slices.Index(m.state.discard, pick)
		if idx < 0 {
			m.narrator.Notice(RuleViolated{Player: p.ID, Reason: fmt.Sprintf("%s is not in the discard pile", pick.Name)})
			m.narrator.Notice(RecyclingSkipped{Player: p.ID})
			continue
		}
		m.state.discard = slices.Delete(m.state.discard, idx, idx+1)
		p.Cards = append(p.Cards, pick)
		m.narrator.Notice(RecyclingUsed{Player: p.ID, Card: pick})
	}
	return nil
}

func hasRecycling(c *draft.Card) bool {
	for _, e := range c.Effects {
		if _, ok := e.(draft.Recycling); ok {
			return true
		}
	}
	return false
}
