package game

import (
	"github.com/lox/draftforbots/draft"
)

// covers reports whether fixed production plus at most one pick from each
// choice group can supply need. Choice groups come from cards producing one
// of several resources; a card's options are mutually exclusive within a
// single check but reusable across checks, since production is never
// consumed.
func covers(fixed draft.Resources, choices [][]draft.Resources, need draft.Resources) bool {
	return coverSearch(need.Minus(fixed), choices)
}

func coverSearch(need draft.Resources, choices [][]draft.Resources) bool {
	if need.IsZero() {
		return true
	}
	if len(choices) == 0 {
		return false
	}
	// Minus clamps at zero, so an option that contributes nothing recurses
	// with need unchanged and stands in for skipping the group.
	for _, opt := range choices[0] {
		if coverSearch(need.Minus(opt), choices[1:]) {
			return true
		}
	}
	return false
}
