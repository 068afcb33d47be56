package game

import (
	"github.com/lox/draftforbots/draft"
)

// Catalog supplies the card and company content for a match. The engine
// filters, shuffles, and deals; the provider only enumerates what is
// printed.
type Catalog interface {
	// AgeCards returns every printed copy for an age, including copies
	// gated behind larger table sizes.
	AgeCards(age draft.Age) []*draft.Card

	// CommunityCards returns the communal pool the final age draws from.
	CommunityCards() []*draft.Card

	// Companies returns the company boards available for assignment.
	Companies() []draft.Company
}
