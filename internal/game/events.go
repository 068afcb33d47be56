package game

import (
	"github.com/lox/draftforbots/draft"
)

// EventType identifies a narration event.
type EventType string

const (
	EventAgeStarted           EventType = "age_started"
	EventAgeEnded             EventType = "age_ended"
	EventTurnStarted          EventType = "turn_started"
	EventExchangeMade         EventType = "exchange_made"
	EventCardPlayed           EventType = "card_played"
	EventCardDropped          EventType = "card_dropped"
	EventStageBuilt           EventType = "stage_built"
	EventPayoutApplied        EventType = "payout_applied"
	EventCardYield            EventType = "card_yield"
	EventRuleViolated         EventType = "rule_violated"
	EventRecyclingUsed        EventType = "recycling_used"
	EventRecyclingSkipped     EventType = "recycling_skipped"
	EventPoachingResolved     EventType = "poaching_resolved"
	EventCommunityCopied      EventType = "community_copied"
	EventCommunityUnavailable EventType = "community_unavailable"
	EventMatchEnded           EventType = "match_ended"
)

func (et EventType) String() string {
	return string(et)
}

// Event is a single notice pushed to the narration sink. Narration is
// one-way: the engine never reads anything back.
type Event interface {
	EventType() EventType
}

// Narrator receives human-relevant notices as a match unfolds. Implementors
// must not retain or mutate slices carried by events.
type Narrator interface {
	Notice(Event)
}

// NopNarrator swallows every notice.
type NopNarrator struct{}

func (NopNarrator) Notice(Event) {}

// MultiNarrator fans notices out to several sinks in order.
type MultiNarrator []Narrator

func (m MultiNarrator) Notice(e Event) {
	for _, n := range m {
		n.Notice(e)
	}
}

// AgeStarted announces a new age and its drafting direction.
type AgeStarted struct {
	Age draft.Age
}

func (AgeStarted) EventType() EventType { return EventAgeStarted }

// AgeEnded announces the end of an age, after poaching has resolved.
type AgeEnded struct {
	Age draft.Age
}

func (AgeEnded) EventType() EventType { return EventAgeEnded }

// TurnStarted announces a turn and who is acting in it.
type TurnStarted struct {
	Age          draft.Age
	Turn         int
	Participants []PlayerID
}

func (TurnStarted) EventType() EventType { return EventTurnStarted }

// ExchangeMade reports one direction of a resolved exchange.
type ExchangeMade struct {
	Player    PlayerID
	Direction draft.Direction
	Goods     draft.Resources
	Cost      int
}

func (ExchangeMade) EventType() EventType { return EventExchangeMade }

// CardPlayed reports a card reaching a tableau and how it was admitted.
type CardPlayed struct {
	Player PlayerID
	Card   *draft.Card
	Mode   PlayMode
}

func (CardPlayed) EventType() EventType { return EventCardPlayed }

// CardDropped reports a discard for funds. The card itself stays hidden,
// matching what the other seats can see.
type CardDropped struct {
	Player PlayerID
	Forced bool
}

func (CardDropped) EventType() EventType { return EventCardDropped }

// StageBuilt reports a company stage being constructed.
type StageBuilt struct {
	Player PlayerID
	Stage  int
	Card   *draft.Card
}

func (StageBuilt) EventType() EventType { return EventStageBuilt }

// PayoutApplied reports deferred funds landing on a player.
type PayoutApplied struct {
	Player PlayerID
	Amount int
	Funds  int // balance after the payout
}

func (PayoutApplied) EventType() EventType { return EventPayoutApplied }

// CardYield reports a played card's immediate funding yield.
type CardYield struct {
	Player PlayerID
	Card   *draft.Card
	Amount int
}

func (CardYield) EventType() EventType { return EventCardYield }

// RuleViolated reports a rejected decision and the forced drop that
// replaces it.
type RuleViolated struct {
	Player PlayerID
	Reason string
}

func (RuleViolated) EventType() EventType { return EventRuleViolated }

// RecyclingUsed reports a card replayed from the discard pile.
type RecyclingUsed struct {
	Player PlayerID
	Card   *draft.Card
}

func (RecyclingUsed) EventType() EventType { return EventRecyclingUsed }

// RecyclingSkipped reports a recycling trigger that had nothing to take or
// was declined.
type RecyclingSkipped struct {
	Player PlayerID
}

func (RecyclingSkipped) EventType() EventType { return EventRecyclingSkipped }

// PoachingResolved reports one end-of-age comparison.
type PoachingResolved struct {
	Player   PlayerID
	Opponent PlayerID
	Age      draft.Age
	Mine     int
	Theirs   int
	Outcome  *PoachingOutcome // nil on a tie
}

func (PoachingResolved) EventType() EventType { return EventPoachingResolved }

// CommunityCopied reports a community card copied from a neighbor.
type CommunityCopied struct {
	Player PlayerID
	Card   *draft.Card
}

func (CommunityCopied) EventType() EventType { return EventCommunityCopied }

// CommunityUnavailable reports a copy effect with no community cards in
// reach.
type CommunityUnavailable struct {
	Player PlayerID
}

func (CommunityUnavailable) EventType() EventType { return EventCommunityUnavailable }

// MatchEnded carries the final ranking, best first.
type MatchEnded struct {
	Ranking []PlayerID
}

func (MatchEnded) EventType() EventType { return EventMatchEnded }
