package game

import (
	"fmt"

	"github.com/lox/draftforbots/draft"
)

// Table limits and fixed rewards.
const (
	MinPlayers    = 3
	MaxPlayers    = 7
	HandSize      = 7 // cards dealt to each player every age
	TurnsPerAge   = 7
	StartingFunds = 3
	DropReward    = 3 // funds paid for dropping a card
)

// PlayerID identifies a seated player.
type PlayerID string

// PoachingOutcome records one end-of-age comparison against a neighbor.
type PoachingOutcome struct {
	Age      draft.Age
	Defeated bool
}

// Points returns the outcome's scoreboard value: -1 for a defeat, otherwise
// the age-scaled victory value.
func (o PoachingOutcome) Points() int {
	if o.Defeated {
		return -1
	}
	switch o.Age {
	case draft.AgeI:
		return 1
	case draft.AgeII:
		return 3
	default:
		return 5
	}
}

// PlayerState is everything a single player owns between turns. Cards holds
// the tableau in play order: the company base card first, then every drafted
// card and constructed stage card.
type PlayerState struct {
	ID       PlayerID
	Profile  draft.CompanyProfile
	Stage    int // constructed stages, 0..Profile.MaxStage()
	Funds    int
	Cards    []*draft.Card
	Left     PlayerID
	Right    PlayerID
	Poaching []PoachingOutcome

	usedOpportunities map[draft.Age]bool
}

// newPlayerState builds a player with starting funds and the profile's base
// card already in play.
func newPlayerState(id PlayerID, profile draft.CompanyProfile) *PlayerState {
	return &PlayerState{
		ID:                id,
		Profile:           profile,
		Funds:             StartingFunds,
		Cards:             []*draft.Card{profile.Base},
		usedOpportunities: make(map[draft.Age]bool),
	}
}

// Neighbor returns the player seated in the given direction.
func (p *PlayerState) Neighbor(dir draft.Direction) PlayerID {
	if dir == draft.Left {
		return p.Left
	}
	return p.Right
}

// Hands maps each player to their current drafting hand. Hands live only
// for the duration of an age; the engine threads them through turns and
// rotations and sweeps the remainder into the discard pile.
type Hands map[PlayerID][]*draft.Card

// GameState is the complete shared state of a match between turns.
type GameState struct {
	draw    DrawFunc
	players map[PlayerID]*PlayerState
	seating []PlayerID
	discard []*draft.Card
}

// Player looks up a player by ID. A missing player is a structural error,
// never a rule violation.
func (g *GameState) Player(id PlayerID) (*PlayerState, error) {
	p, ok := g.players[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, id)
	}
	return p, nil
}

// Seating returns the seating cycle in canonical order. The slice is
// shared; callers must not modify it.
func (g *GameState) Seating() []PlayerID {
	return g.seating
}

// DiscardCount returns the size of the shared discard pile.
func (g *GameState) DiscardCount() int {
	return len(g.discard)
}

// AddMap accumulates deferred fund payouts keyed by recipient. Entries are
// commutative: merging maps sums per player, so resolution order cannot
// change the totals.
type AddMap map[PlayerID]int

// Add records a deferred payout.
func (m AddMap) Add(id PlayerID, amount int) {
	m[id] += amount
}

// Merge folds other into m, summing per player.
func (m AddMap) Merge(other AddMap) {
	for id, amount := range other {
		m[id] += amount
	}
}
