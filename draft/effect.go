package draft

// Effect is one rules effect printed on a card. The set of implementations
// is closed; the engine dispatches by switching over the concrete types.
type Effect interface {
	isEffect()
}

// Category groups victory points on the final scoreboard.
type Category uint8

const (
	CategoryPoaching Category = iota
	CategoryFunding
	CategoryResearch
	CategoryPrestige
	CategoryCommerce
	CategoryCompany
	CategoryCommunity
	numCategories
)

// Categories lists the scoreboard groups in display order.
var Categories = []Category{
	CategoryPoaching, CategoryFunding, CategoryResearch,
	CategoryPrestige, CategoryCommerce, CategoryCompany, CategoryCommunity,
}

func (c Category) String() string {
	if c >= numCategories {
		return "Unknown"
	}
	return [...]string{
		"Poaching", "Funding", "Research",
		"Prestige", "Commerce", "Company", "Community",
	}[c]
}

// ResearchTag identifies a research discipline.
type ResearchTag uint8

const (
	Engineering ResearchTag = iota
	Biotech
	Analytics
	numResearchTags
)

// NumResearchTags is the number of distinct research tags.
const NumResearchTags = int(numResearchTags)

func (t ResearchTag) String() string {
	if t >= numResearchTags {
		return "Unknown"
	}
	return [...]string{"Engineering", "Biotech", "Analytics"}[t]
}

// Scope selects whose tableaus a trigger counts over.
type Scope uint8

const (
	ScopeSelf Scope = iota
	ScopeNeighbors
	ScopeSelfAndNeighbors
)

// Subject selects what a trigger counts.
type Subject uint8

const (
	SubjectFlat Subject = iota // fixed count of one, no scan
	SubjectKindCards           // cards of a given kind
	SubjectCompanyStages       // constructed company stages
	SubjectPoachingDefeats     // poaching defeat outcomes
)

// Trigger describes what a counting effect counts and where. The zero value
// is flat: pay the amount once.
type Trigger struct {
	Scope   Scope
	Subject Subject
	Kind    Kind // counted kind when Subject is SubjectKindCards
}

// PerKind counts cards of the given kind across scope.
func PerKind(scope Scope, kind Kind) Trigger {
	return Trigger{Scope: scope, Subject: SubjectKindCards, Kind: kind}
}

// PerStage counts constructed company stages across scope.
func PerStage(scope Scope) Trigger {
	return Trigger{Scope: scope, Subject: SubjectCompanyStages}
}

// PerDefeat counts poaching defeat outcomes across scope.
func PerDefeat(scope Scope) Trigger {
	return Trigger{Scope: scope, Subject: SubjectPoachingDefeats}
}

// GainFunding grants funds when the carrying card is played, scaled by what
// Per counts at that moment.
type GainFunding struct {
	Amount int
	Per    Trigger
}

// AddVictory grants victory points in the given category at scoring time,
// scaled by what Per counts at game end.
type AddVictory struct {
	Category Category
	Points   int
	Per      Trigger
}

// Research contributes one tag toward research set scoring.
type Research struct {
	Tag ResearchTag
}

// Wildcard stands in for any single research tag, assigned at scoring time
// to whichever tag scores best.
type Wildcard struct{}

// Opportunity lets the holder construct one card of any recognized kind for
// free during the given age. Consumed on use.
type Opportunity struct {
	Age Age
}

// CopyCommunity copies one community card from a neighboring tableau after
// the final age.
type CopyCommunity struct{}

// Recycling lets the holder replay one card from the discard pile for free
// on the turn the carrying card is played.
type Recycling struct{}

// Poaching adds head-to-head strength for end-of-age comparisons.
type Poaching struct {
	Strength int
}

// Efficiency lets the holder play the final otherwise-undrafted card of each
// age instead of discarding it.
type Efficiency struct{}

// Produce yields resources for construction checks and neighbor trades.
// Multiple options mean the holder commits to one per check.
type Produce struct {
	Options []Resources
}

// Fixed builds a production effect with a single option.
func Fixed(rs Resources) Produce {
	return Produce{Options: []Resources{rs}}
}

// Choice builds a production effect offering one unit of each listed
// resource as alternatives.
func Choice(rs ...Resource) Produce {
	opts := make([]Resources, len(rs))
	for i, r := range rs {
		opts[i] = Of(r, 1)
	}
	return Produce{Options: opts}
}

// Discount lowers the unit price of resources bought from the named
// neighbors, for raw materials or refined goods as a class.
type Discount struct {
	Directions []Direction
	Refined    bool // discounts refined goods instead of raw materials
	Price      int  // discounted unit price in funds
}

// Unlocks grants free construction of the named cards while this card is
// held.
type Unlocks struct {
	Names []string
}

func (GainFunding) isEffect()   {}
func (AddVictory) isEffect()    {}
func (Research) isEffect()      {}
func (Wildcard) isEffect()      {}
func (Opportunity) isEffect()   {}
func (CopyCommunity) isEffect() {}
func (Recycling) isEffect()     {}
func (Poaching) isEffect()      {}
func (Efficiency) isEffect()    {}
func (Produce) isEffect()       {}
func (Discount) isEffect()      {}
func (Unlocks) isEffect()       {}
