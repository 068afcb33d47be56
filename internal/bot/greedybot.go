package bot

import (
	"context"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/lox/draftforbots/draft"
	"github.com/lox/draftforbots/internal/game"
)

// GreedyBot values every legal move with a one-turn heuristic and takes the
// best one. It prices funds at the scoring rate, chases research sets, and
// contests poaching only when the added strength can flip a head-to-head.
type GreedyBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewGreedyBot creates a new GreedyBot instance
func NewGreedyBot(rng *rand.Rand, logger *log.Logger) *GreedyBot {
	return &GreedyBot{rng: rng, logger: logger}
}

// Heuristic weights, in victory points. Tuned by hand against random
// opposition rather than fitted.
const (
	dropWorth        = 1.0 // the drop reward converts to one point
	fundsPerPoint    = 3.0
	stageAdvance     = 1.0 // finishing a stage opens the next one
	productionWorth  = 0.5 // one produced unit, per remaining age
	flexBonus        = 0.25
	setProgress      = 2.0 // research tag that narrows the set gap
	deterrence       = 0.3 // poaching strength that flips nothing yet
	defeatAvoided    = 1.0
	entitlementWorth = 2.0
	copyWorth        = 2.5
	recyclingWorth   = 1.0
	efficiencyWorth  = 0.5 // extra seventh-turn card, per remaining age
	discountWorth    = 0.25
	linkWorth        = 0.5
	jitter           = 0.001 // breaks ties without reordering real gaps
)

func (b *GreedyBot) DecideTurn(ctx context.Context, req game.TurnRequest) (game.TurnDecision, error) {
	seat := req.Table.Seat(req.Player)
	if seat == nil {
		return game.TurnDecision{Action: game.Drop, Card: req.Hand[0]}, nil
	}

	spare := b.worstCard(req.Table, seat, req.Hand)
	best := move{decision: game.TurnDecision{Action: game.Drop, Card: spare}}
	bestWorth := dropWorth

	for _, m := range playMoves(req) {
		worth := b.value(req.Table, seat, m.decision.Card) - float64(m.spend)/fundsPerPoint + b.rng.Float64()*jitter
		if worth > bestWorth {
			best, bestWorth = m, worth
		}
	}
	if m, ok := buildMove(req, spare); ok {
		worth := b.value(req.Table, seat, seat.NextStage) + stageAdvance - float64(m.spend)/fundsPerPoint + b.rng.Float64()*jitter
		if worth > bestWorth {
			best, bestWorth = m, worth
		}
	}

	b.logger.Debug("greedy decision",
		"player", req.Player,
		"age", req.Age,
		"turn", req.Turn,
		"action", best.decision.Action,
		"card", best.decision.Card,
		"worth", bestWorth)
	return best.decision, nil
}

func (b *GreedyBot) PickRecycle(ctx context.Context, req game.RecycleRequest) (*draft.Card, error) {
	seat := req.Table.Seat(req.Player)
	if seat == nil {
		return nil, nil
	}
	// A free card is almost always worth taking, but a name already in the
	// tableau would only double-count its effects; leave those buried.
	var best *draft.Card
	bestWorth := 0.0
	for _, c := range req.Discard {
		if holdsName(seat, c.Name) {
			continue
		}
		if worth := b.value(req.Table, seat, c); best == nil || worth > bestWorth {
			best, bestWorth = c, worth
		}
	}
	return best, nil
}

func (b *GreedyBot) PickCommunity(ctx context.Context, req game.CommunityRequest) (*draft.Card, error) {
	seat := req.Table.Seat(req.Player)
	if seat == nil || len(req.Choices) == 0 {
		return nil, nil
	}
	best := req.Choices[0]
	bestWorth := b.value(req.Table, seat, best)
	for _, c := range req.Choices[1:] {
		if worth := b.value(req.Table, seat, c); worth > bestWorth {
			best, bestWorth = c, worth
		}
	}
	return best, nil
}

// value estimates the victory points a card is worth to the seat right now.
// Counting triggers are priced at today's tally, which understates cards
// that grow with the table, and production is scaled by the ages left to
// use it.
func (b *GreedyBot) value(table game.TableView, seat *game.SeatView, card *draft.Card) float64 {
	agesLeft := float64(4 - int(table.Age)) // 3 in Age I, 1 in Age III
	total := 0.0
	for _, e := range card.Effects {
		switch eff := e.(type) {
		case draft.AddVictory:
			total += float64(eff.Points * viewCount(table, seat, eff.Per))
		case draft.GainFunding:
			total += float64(eff.Amount*viewCount(table, seat, eff.Per)) / fundsPerPoint
		case draft.Research:
			total += researchWorth(seat, eff.Tag)
		case draft.Wildcard:
			total += wildcardWorth(seat)
		case draft.Poaching:
			total += poachingWorth(table, seat, eff.Strength)
		case draft.Produce:
			units := 0
			for _, opt := range eff.Options {
				units = max(units, opt.Total())
			}
			total += float64(units) * productionWorth * agesLeft
			if len(eff.Options) > 1 {
				total += flexBonus
			}
		case draft.Opportunity:
			total += entitlementWorth
		case draft.CopyCommunity:
			total += copyWorth
		case draft.Recycling:
			total += recyclingWorth
		case draft.Efficiency:
			total += efficiencyWorth * agesLeft
		case draft.Discount:
			total += discountWorth * float64(len(eff.Directions)) * agesLeft
		case draft.Unlocks:
			total += linkWorth * float64(len(eff.Names))
		}
	}
	return total
}

// worstCard picks the hand card the seat can most easily spare. Names the
// tableau already holds are unplayable and go first.
func (b *GreedyBot) worstCard(table game.TableView, seat *game.SeatView, hand []*draft.Card) *draft.Card {
	worst := hand[0]
	worstWorth := math.Inf(1)
	for _, c := range hand {
		worth := b.value(table, seat, c)
		if holdsName(seat, c.Name) {
			worth = -1
		}
		if worth < worstWorth {
			worst, worstWorth = c, worth
		}
	}
	return worst
}

// researchWorth prices one more copy of a tag: the squared-count marginal
// plus a set bonus when the tag is currently the scarcest.
func researchWorth(seat *game.SeatView, tag draft.ResearchTag) float64 {
	counts := researchCounts(seat)
	worth := float64(2*counts[tag] + 1)
	if counts[tag] == minCount(counts) {
		worth += setProgress
	}
	return worth
}

// wildcardWorth prices a wildcard as the best tag it could land on.
func wildcardWorth(seat *game.SeatView) float64 {
	best := 0.0
	for tag := 0; tag < draft.NumResearchTags; tag++ {
		if w := researchWorth(seat, draft.ResearchTag(tag)); w > best {
			best = w
		}
	}
	return best
}

func researchCounts(seat *game.SeatView) [draft.NumResearchTags]int {
	var counts [draft.NumResearchTags]int
	for _, c := range seat.Cards {
		for _, e := range c.Effects {
			if r, ok := e.(draft.Research); ok {
				counts[r.Tag]++
			}
		}
	}
	return counts
}

func minCount(counts [draft.NumResearchTags]int) int {
	m := counts[0]
	for _, n := range counts[1:] {
		if n < m {
			m = n
		}
	}
	return m
}

// poachingWorth prices added strength against both coming head-to-heads.
func poachingWorth(table game.TableView, seat *game.SeatView, strength int) float64 {
	mine := tableauStrength(seat.Cards)
	prize := float64(game.PoachingOutcome{Age: table.Age}.Points())
	worth := deterrence * float64(strength)
	for _, dir := range draft.BothDirections {
		n := table.Seat(seat.Neighbor(dir))
		if n == nil {
			continue
		}
		theirs := tableauStrength(n.Cards)
		switch {
		case mine <= theirs && mine+strength > theirs:
			worth += prize
		case mine < theirs && mine+strength == theirs:
			worth += defeatAvoided
		}
	}
	return worth
}

func tableauStrength(cards []*draft.Card) int {
	total := 0
	for _, c := range cards {
		total += c.PoachingStrength()
	}
	return total
}

// viewCount evaluates a counting trigger against the public snapshot,
// mirroring the tally the engine runs at payout and scoring time.
func viewCount(table game.TableView, seat *game.SeatView, per draft.Trigger) int {
	if per.Subject == draft.SubjectFlat {
		return 1
	}
	total := 0
	for _, s := range scopeSeats(table, seat, per.Scope) {
		if s == nil {
			continue
		}
		switch per.Subject {
		case draft.SubjectKindCards:
			for _, c := range s.Cards {
				if c.Kind == per.Kind {
					total++
				}
			}
		case draft.SubjectCompanyStages:
			total += s.Stage
		case draft.SubjectPoachingDefeats:
			for _, o := range s.Poaching {
				if o.Defeated {
					total++
				}
			}
		}
	}
	return total
}

func scopeSeats(table game.TableView, seat *game.SeatView, scope draft.Scope) []*game.SeatView {
	var out []*game.SeatView
	if scope == draft.ScopeSelf || scope == draft.ScopeSelfAndNeighbors {
		out = append(out, seat)
	}
	if scope == draft.ScopeNeighbors || scope == draft.ScopeSelfAndNeighbors {
		out = append(out, table.Seat(seat.Left), table.Seat(seat.Right))
	}
	return out
}
