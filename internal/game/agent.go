package game

import (
	"context"
	"slices"

	"github.com/lox/draftforbots/draft"
)

// TurnRequest asks a decision source for one simultaneous turn choice.
type TurnRequest struct {
	Age    draft.Age
	Turn   int
	Player PlayerID
	Hand   []*draft.Card
	Table  TableView
}

// RecycleRequest offers the discard pile after a recycling trigger.
type RecycleRequest struct {
	Player  PlayerID
	Discard []*draft.Card
	Table   TableView
}

// CommunityRequest offers neighboring community cards to a copy effect.
type CommunityRequest struct {
	Player  PlayerID
	Choices []*draft.Card
	Table   TableView
}

// DecisionSource produces a player's choices. Implementations range from
// in-process bots to whatever transport an embedding application bridges
// in; the engine only ever sees this interface. A source returning an
// error aborts the match. Deadline policy belongs to wrappers such as
// TimeoutSource.
type DecisionSource interface {
	DecideTurn(ctx context.Context, req TurnRequest) (TurnDecision, error)

	// PickRecycle chooses a discard to replay. Returning nil declines.
	PickRecycle(ctx context.Context, req RecycleRequest) (*draft.Card, error)

	// PickCommunity chooses one of the offered community cards to copy.
	PickCommunity(ctx context.Context, req CommunityRequest) (*draft.Card, error)
}

// TableView is a read-only snapshot of public match state offered to
// decision sources. Hands other than the requester's stay hidden; the
// discard pile shows only its size.
type TableView struct {
	Age          draft.Age
	Turn         int
	DiscardCount int
	Seats        []SeatView // seating order
}

// Seat returns the requested seat's view, or nil if the player is unknown.
func (v TableView) Seat(id PlayerID) *SeatView {
	for i := range v.Seats {
		if v.Seats[i].ID == id {
			return &v.Seats[i]
		}
	}
	return nil
}

// SeatView is the public face of one player: their company, funds, tableau,
// and poaching record. Company boards sit face up, so the next stage card
// and any unconsumed entitlements are public too.
type SeatView struct {
	ID                  PlayerID
	Company             string
	Side                string
	Stage               int
	MaxStage            int
	NextStage           *draft.Card // nil once every stage is built
	Funds               int
	Cards               []*draft.Card
	Poaching            []PoachingOutcome
	UnusedOpportunities []draft.Age
	Left                PlayerID
	Right               PlayerID
}

// Neighbor returns the seat's neighbor in the given direction.
func (s *SeatView) Neighbor(dir draft.Direction) PlayerID {
	if dir == draft.Left {
		return s.Left
	}
	return s.Right
}

// Production sums the seat's visible production: fixed output plus one
// option group per choice card. Useful to sources planning a construction.
func (s *SeatView) Production() (draft.Resources, [][]draft.Resources) {
	return produceScan(s.Cards, nil)
}

// Tradeable sums the production a neighbor is allowed to buy from this
// seat.
func (s *SeatView) Tradeable() (draft.Resources, [][]draft.Resources) {
	return produceScan(s.Cards, func(c *draft.Card) bool {
		switch c.Kind {
		case draft.KindSupplier, draft.KindWorkshop, draft.KindBase:
			return true
		default:
			return false
		}
	})
}

// CanCover reports whether fixed production plus at most one pick per
// choice group supplies need. Exposed so decision sources can plan with the
// same arithmetic the engine enforces.
func CanCover(fixed draft.Resources, choices [][]draft.Resources, need draft.Resources) bool {
	return covers(fixed, choices, need)
}

// view builds the public snapshot handed out with decision requests.
func (g *GameState) view(age draft.Age, turn int) TableView {
	seats := make([]SeatView, 0, len(g.seating))
	for _, id := range g.seating {
		p := g.players[id]
		var next *draft.Card
		if p.Stage < p.Profile.MaxStage() {
			next = p.Profile.Stages[p.Stage]
		}
		seats = append(seats, SeatView{
			ID:                  id,
			Company:             p.Profile.Company,
			Side:                p.Profile.Side,
			Stage:               p.Stage,
			MaxStage:            p.Profile.MaxStage(),
			NextStage:           next,
			Funds:               p.Funds,
			Cards:               slices.Clone(p.Cards),
			Poaching:            slices.Clone(p.Poaching),
			UnusedOpportunities: p.unusedOpportunities(),
			Left:                p.Left,
			Right:               p.Right,
		})
	}
	return TableView{
		Age:          age,
		Turn:         turn,
		DiscardCount: len(g.discard),
		Seats:        seats,
	}
}
