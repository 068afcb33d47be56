package game

import (
	"fmt"
	"slices"

	"github.com/lox/draftforbots/draft"
)

// communityExtra is how many community cards beyond the player count join
// the final age's pool.
const communityExtra = 2

// Deal builds one age's pool and deals a seven-card hand to every player in
// seating order. Copies gated behind a larger table stay out, the final age
// mixes in a random playerCount+2 slice of the communal pool, and leftover
// cards are simply never dealt.
func (g *GameState) Deal(age draft.Age, cat Catalog) (Hands, error) {
	players := len(g.seating)

	var pool []*draft.Card
	for _, c := range cat.AgeCards(age) {
		if c.MinPlayers <= players {
			pool = append(pool, c)
		}
	}
	if age == draft.AgeIII {
		communal := shuffle(g.draw, cat.CommunityCards())
		want := players + communityExtra
		if len(communal) < want {
			return nil, fmt.Errorf("%w: %d community cards, need %d", ErrShortDeck, len(communal), want)
		}
		pool = append(pool, communal[:want]...)
	}
	if len(pool) < players*HandSize {
		return nil, fmt.Errorf("%w: %s pool holds %d cards for %d players", ErrShortDeck, age, len(pool), players)
	}

	pool = shuffle(g.draw, pool)
	hands := make(Hands, players)
	for i, id := range g.seating {
		hands[id] = slices.Clone(pool[i*HandSize : (i+1)*HandSize])
	}
	return hands, nil
}
