package game

import (
	"slices"

	"github.com/lox/draftforbots/draft"
)

const (
	// FundsPerPoint converts banked funds into victory points, rounded
	// down.
	FundsPerPoint = 3

	researchSetBonus = 7
)

// Scoreboard is the per-category point tally for each player. Every
// category is present, zero included, so renderers can iterate
// draft.Categories directly.
type Scoreboard map[PlayerID]map[draft.Category]int

// Total sums one player's categories.
func (s Scoreboard) Total(id PlayerID) int {
	total := 0
	for _, pts := range s[id] {
		total += pts
	}
	return total
}

// Score tallies the final board for every player: poaching outcomes,
// banked funds, research sets, and each victory effect on the tableau
// evaluated against the end state.
func (g *GameState) Score() Scoreboard {
	board := make(Scoreboard, len(g.seating))
	for _, id := range g.seating {
		p := g.players[id]
		cat := make(map[draft.Category]int, len(draft.Categories))
		for _, c := range draft.Categories {
			cat[c] = 0
		}
		for _, o := range p.Poaching {
			cat[draft.CategoryPoaching] += o.Points()
		}
		cat[draft.CategoryFunding] = p.Funds / FundsPerPoint
		for _, c := range p.Cards {
			for _, e := range c.Effects {
				if av, ok := e.(draft.AddVictory); ok {
					cat[av.Category] += av.Points * g.count(p, av.Per)
				}
			}
		}
		counts, wildcards := p.researchTally()
		cat[draft.CategoryResearch] += researchScore(counts, wildcards)
		board[id] = cat
	}
	return board
}

// researchScore values a tag tally: the square of each tag's count plus a
// bonus per complete set, with wildcards assigned wherever they score
// best.
func researchScore(counts [draft.NumResearchTags]int, wildcards int) int {
	if wildcards == 0 {
		return tagScore(counts)
	}
	best := 0
	for i := range counts {
		c := counts
		c[i]++
		if s := researchScore(c, wildcards-1); s > best {
			best = s
		}
	}
	return best
}

func tagScore(counts [draft.NumResearchTags]int) int {
	total, sets := 0, counts[0]
	for _, c := range counts {
		total += c * c
		if c < sets {
			sets = c
		}
	}
	return total + researchSetBonus*sets
}

// ranking orders players best first: total points, then remaining funds,
// then seating order for stability.
func (g *GameState) ranking(board Scoreboard) []PlayerID {
	out := slices.Clone(g.seating)
	slices.SortStableFunc(out, func(a, b PlayerID) int {
		if d := board.Total(b) - board.Total(a); d != 0 {
			return d
		}
		return g.players[b].Funds - g.players[a].Funds
	})
	return out
}
