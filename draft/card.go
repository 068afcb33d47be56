package draft

// Age identifies one of the three drafting ages. The zero value marks cards
// that never enter an age deck, such as company base and stage cards.
type Age uint8

const (
	AgeI Age = iota + 1
	AgeII
	AgeIII
)

// Ages lists the three ages in play order.
var Ages = []Age{AgeI, AgeII, AgeIII}

func (a Age) String() string {
	switch a {
	case AgeI:
		return "Age I"
	case AgeII:
		return "Age II"
	case AgeIII:
		return "Age III"
	default:
		return "Unknown"
	}
}

// Kind classifies a card by the capability family it belongs to.
type Kind uint8

const (
	KindSupplier Kind = iota // raw material production
	KindWorkshop             // refined goods production
	KindPrestige             // flat victory points
	KindCommerce             // trade and funding engines
	KindResearch             // research tags
	KindPoaching             // poaching strength
	KindCommunity            // communal cards dealt in the final age
	KindBase                 // company stage-0 resource card
	KindStage                // company stage card
	numKinds
)

// Draftable reports whether cards of this kind appear in age decks. Base and
// stage cards belong to company boards and are never drafted.
func (k Kind) Draftable() bool {
	return k < KindBase
}

func (k Kind) String() string {
	if k >= numKinds {
		return "Unknown"
	}
	return [...]string{
		"Supplier", "Workshop", "Prestige", "Commerce",
		"Research", "Poaching", "Community", "Base", "Stage",
	}[k]
}

// Direction points at one of a player's two neighbors around the table.
type Direction uint8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// BothDirections lists the two neighbor directions.
var BothDirections = []Direction{Left, Right}

// Cost is the price of constructing a card.
type Cost struct {
	Funding   int
	Resources Resources
}

// Free reports whether the cost is empty.
func (c Cost) Free() bool {
	return c.Funding == 0 && c.Resources.IsZero()
}

// Card is a single printed card. Cards are immutable once built and tracked
// by pointer throughout play, so duplicate names stay distinct copies.
type Card struct {
	Name       string
	Age        Age
	Kind       Kind
	MinPlayers int // smallest table size whose deck includes this copy
	Cost       Cost
	Effects    []Effect
}

func (c *Card) String() string {
	return c.Name
}

// Produces returns the card's production options. A card with fixed
// production has a single option; a choice card has one option per pick.
// Cards without production return nil.
func (c *Card) Produces() []Resources {
	for _, e := range c.Effects {
		if p, ok := e.(Produce); ok {
			return p.Options
		}
	}
	return nil
}

// PoachingStrength sums the card's poaching effects.
func (c *Card) PoachingStrength() int {
	total := 0
	for _, e := range c.Effects {
		if p, ok := e.(Poaching); ok {
			total += p.Strength
		}
	}
	return total
}
