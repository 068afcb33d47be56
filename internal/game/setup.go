package game

import (
	"fmt"

	"github.com/lox/draftforbots/draft"
)

// Setup opens a match: shuffle the company roster, shuffle the seating
// cycle, then give every player a company side picked by a two-way draw,
// the side's base card already in play, and starting funds. The discard
// pile starts empty.
func Setup(draw DrawFunc, ids []PlayerID, companies []draft.Company) (*GameState, error) {
	if len(companies) < len(ids) {
		return nil, fmt.Errorf("%w: %d companies for %d players", ErrNotEnoughCompanies, len(companies), len(ids))
	}
	seen := make(map[PlayerID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("duplicate player id %s", id)
		}
		seen[id] = true
	}

	roster := shuffle(draw, companies)
	seating := shuffle(draw, ids)

	g := &GameState{
		draw:    draw,
		players: make(map[PlayerID]*PlayerState, len(seating)),
		seating: seating,
	}
	n := len(seating)
	for i, id := range seating {
		p := newPlayerState(id, roster[i].Side(draw(2)))
		p.Left = seating[(i-1+n)%n]
		p.Right = seating[(i+1)%n]
		g.players[id] = p
	}
	return g, nil
}
